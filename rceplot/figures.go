package rceplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ankurk017/RCE-1D-Emanuel/output"
)

// File names of the seven diagnostic figures.
const (
	PrecipEvap    = "time_precip_evap.png"
	SSTAirTemp    = "time_sst_ta.png"
	TOAFluxes     = "time_toa_fluxes.png"
	Temperature   = "profile_temperature.png"
	RelHumidity   = "profile_rh.png"
	CloudWater    = "profile_cloud_water.png"
	CloudFraction = "profile_cloud_fraction.png"
)

// Names lists the figure file names in the order Figures returns them.
var Names = []string{PrecipEvap, SSTAirTemp, TOAFluxes, Temperature, RelHumidity, CloudWater, CloudFraction}

// Series is one line of a figure.
type Series struct {
	Label  string
	X, Y   []float64
	Dashed bool
}

// Figure describes one diagnostic plot.
type Figure struct {
	Name    string //file name, also used to address the figure
	Title   string
	XLabel  string
	YLabel  string
	Series  []Series
	InvertY bool //pressure increases downward
	Legend  bool
}

// Figures returns the seven diagnostic figures for run, in the order of Names.
func Figures(run *output.Run) []Figure {
	day := run.TimeColumn(func(r output.TimeSeriesRecord) float64 { return r.Day })
	tcol := func(f func(output.TimeSeriesRecord) float64) []float64 { return run.TimeColumn(f) }
	pcol := func(f func(output.ProfileRecord) float64) []float64 { return run.ProfileColumn(f) }
	p := pcol(func(r output.ProfileRecord) float64 { return r.Pressure })

	rh := pcol(func(r output.ProfileRecord) float64 { return r.RelHumidity })
	floats.Scale(100, rh)

	timeFig := func(name, title, ylabel string, a, b Series) Figure {
		a.X, b.X = day, day
		b.Dashed = true
		return Figure{Name: name, Title: title, XLabel: "Time (days)", YLabel: ylabel, Series: []Series{a, b}, Legend: true}
	}
	profFig := func(name, title, xlabel, label string, x []float64) Figure {
		return Figure{Name: name, Title: title, XLabel: xlabel, YLabel: "Pressure (hPa)", Series: []Series{{Label: label, X: x, Y: p}}, InvertY: true}
	}
	return []Figure{
		timeFig(PrecipEvap, "Precipitation and evaporation", "mm/day",
			Series{Label: "Precip (mm/day)", Y: tcol(func(r output.TimeSeriesRecord) float64 { return r.Precip })},
			Series{Label: "Evap (mm/day)", Y: tcol(func(r output.TimeSeriesRecord) float64 { return r.Evap })}),
		timeFig(SSTAirTemp, "Surface temperatures", "C",
			Series{Label: "SST (C)", Y: tcol(func(r output.TimeSeriesRecord) float64 { return r.SST })},
			Series{Label: "Ta lowest level (C)", Y: tcol(func(r output.TimeSeriesRecord) float64 { return r.AirTemp })}),
		timeFig(TOAFluxes, "Top-of-atmosphere fluxes", "W/m^2",
			Series{Label: "TOA SW (W/m^2)", Y: tcol(func(r output.TimeSeriesRecord) float64 { return r.TOAShortwave })},
			Series{Label: "TOA LW (W/m^2)", Y: tcol(func(r output.TimeSeriesRecord) float64 { return r.TOALongwave })}),
		profFig(Temperature, "Equilibrium temperature profile", "Temperature (C)", "T (C)",
			pcol(func(r output.ProfileRecord) float64 { return r.Temperature })),
		profFig(RelHumidity, "Equilibrium relative humidity profile", "Relative humidity (%)", "RH (%)", rh),
		profFig(CloudWater, "Equilibrium cloud water profile", "Cloud condensed water (g/kg)", "Cloud water (g/kg)",
			pcol(func(r output.ProfileRecord) float64 { return r.CloudWater })),
		profFig(CloudFraction, "Equilibrium cloud fraction profile", "Cloud fraction", "Cloud fraction",
			pcol(func(r output.ProfileRecord) float64 { return r.CloudFraction })),
	}
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	g := plotter.NewGrid()
	g.Vertical.Color = gridColor
	g.Horizontal.Color = gridColor
	p.Add(g)
	return p
}

// Plot builds the gonum plot for F.
func (F Figure) Plot() (*plot.Plot, error) {
	p := basicPlot(F.Title, F.XLabel, F.YLabel)
	for i, s := range F.Series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("figure %s: series %q has %d x values and %d y values", F.Name, s.Label, len(s.X), len(s.Y))
		}
		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j].X = s.X[j]
			xys[j].Y = s.Y[j]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("figure %s: %w", F.Name, err)
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = seriesColor(i, len(F.Series))
		if s.Dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(l)
		if F.Legend {
			p.Legend.Add(s.Label, l)
		}
	}
	if F.Legend {
		p.Legend.Top = true
	}
	if F.InvertY {
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	}
	return p, nil
}
