/*Package rceplot renders the diagnostic figures of an RCE model run with gonum/plot.

There are seven figures, each addressed by its file name: three time series
(precipitation and evaporation, surface temperatures, top-of-atmosphere fluxes)
and four equilibrium profiles against pressure (temperature, relative humidity,
cloud water, cloud fraction), all with the pressure axis increasing downward.

Figures are either saved as PNG files or shown with an external viewer. The
choice is made by a ModeResolver, so tests (and callers) can force either one.
*/
package rceplot
