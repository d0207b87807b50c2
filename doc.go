/*
 * doc.go, part of rce1d.
 *
 * Copyright 2026 The RCE-1D-Emanuel authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package rce is the root package of the rce1d tools. It holds the error types shared
by all the packages that read the inputs and outputs of the Emanuel single-column
radiative-convective equilibrium (RCE) model.



	**rce1d Capabilities**


    Reads the fixed-column numeric outputs of the model (time.out, profile.out),
	plain or compressed with zstd or gzip.

    Extracts the 42 scalar parameters of a params_ver2.in configuration by
	line position, and writes an aligned description table plus an archival
	copy of the configuration.

    Renders the seven standard diagnostic figures (time series and equilibrium
	profiles) as PNG files, or shows them in a viewer.


The subpackages are:

	schema:    the static line/column tables of the model's file formats.
	fixedfmt:  loading of whitespace/line delimited text.
	params:    parameter extraction and description.
	output:    time series and profile records.
	rceplot:   the diagnostic figures.

The commands rceplot and rceparams, under cmd/, wire these together.

*/
package rce
