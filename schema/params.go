package schema

import (
	"fmt"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
)

// Meta is the hand-authored description of one value line of the configuration.
type Meta struct {
	Name        string
	Description string
	Units       string
}

// Descriptor is a Meta bound to the 1-based line of the configuration file
// that holds its value.
type Descriptor struct {
	Name           string
	Description    string
	Units          string
	SourcePosition int
}

// Table holds the parameter metadata and the source line of each parameter
// as two independent, ordered lists. Meta[i] describes the value at line Positions[i].
type Table struct {
	Meta      []Meta
	Positions []int
}

// Descriptors zips the metadata with the source positions. It fails with
// *rce.SchemaMismatchError if the lists have different lengths or the positions
// are not positive and strictly increasing.
func (t Table) Descriptors() ([]Descriptor, error) {
	if len(t.Meta) != len(t.Positions) {
		return nil, rce.NewSchemaMismatchError(fmt.Sprintf("%d parameter descriptions but %d source lines", len(t.Meta), len(t.Positions)), "Table.Descriptors")
	}
	ret := make([]Descriptor, len(t.Meta))
	prev := 0
	for i, m := range t.Meta {
		p := t.Positions[i]
		if p <= prev {
			return nil, rce.NewSchemaMismatchError(fmt.Sprintf("source line %d of %s is not after line %d", p, m.Name, prev), "Table.Descriptors")
		}
		prev = p
		ret[i] = Descriptor{Name: m.Name, Description: m.Description, Units: m.Units, SourcePosition: p}
	}
	return ret, nil
}

// MaxPosition returns the last line of the configuration that carries a value.
func (t Table) MaxPosition() int {
	max := 0
	for _, p := range t.Positions {
		if p > max {
			max = p
		}
	}
	return max
}

//Value lines of params_ver2.in. Blank and header lines are skipped by the model
//and carry no value.
var paramLines = []int{
	4, 5, 6, 7, 8, //integration
	11, 12, 13, 14, 15, 16, 17, 18, 19, //radiation/calendar
	20, 21, 22, 23, 24, 25,
	28, 29, 30, 31, 32, 33, 34, 35, //greenhouse gases + multipliers
	38, 39, //convection
	42, 43, 44, 45, //surface fluxes
	48, 49, 50, 51, 52, 53, //omega
	56, 57, //WTG
}

var paramMeta = []Meta{
	{"RESTART", "Restart from previous run? (y: use sounding.out; n: use sounding.in)", "y/n"},
	{"ENDTIME", "End time of integration", "days"},
	{"DT", "Time step", "minutes"},
	{"AVTIME", "Averaging time for final profiles", "days"},
	{"PRINFREQ", "Output sampling interval for time series", "hours"},
	{"RADINT", "Interactive radiation?", "y/n"},
	{"ICLDS", "Interactive clouds?", "y/n"},
	{"TSINT", "Interactive surface temperature (ocean)? n = fixed SST", "y/n"},
	{"RADFREQ", "Frequency of radiation calls", "hours"},
	{"SCON", "Solar constant", "W m^-2"},
	{"RLAT", "Latitude", "degrees"},
	{"MONTH", "Starting month", "1-12"},
	{"IDAY", "Starting day", "1-31"},
	{"HOUR", "Starting hour", "0-23"},
	{"TDEP", "Time-dependent radiation?", "y/n"},
	{"DDEP", "Date-dependent radiation?", "y/n"},
	{"DARAD", "Diurnal-average radiation?", "y/n"},
	{"ANRAD", "Annual-average radiation?", "y/n"},
	{"CALB", "Calculate ocean albedo?", "y/n"},
	{"ALB", "Fixed surface albedo (if CALB=n)", "0-1"},
	{"CO2", "CO2 concentration", "ppm"},
	{"CH4", "CH4 concentration", "ppm"},
	{"N2O", "N2O concentration", "ppb"},
	{"CFC11", "CFC-11 concentration", "ppt"},
	{"CFC12", "CFC-12 concentration", "ppt"},
	{"H2OI", "Interactive water vapor?", "y/n"},
	{"H2OM", "Radiation H2O multiplier", "-"},
	{"O3M", "Radiation O3 multiplier", "-"},
	{"DCONV", "Dry adiabatic adjustment?", "y/n"},
	{"MCONV", "Moist convection scheme?", "y/n"},
	{"FLUXSWITCH", "Turbulent surface fluxes on/off", "y/n"},
	{"BETA", "Fraction of surface covered by water", "0-1"},
	{"DEPTH", "Mixed-layer depth", "m"},
	{"VS0", "Surface wind speed", "m s^-1"},
	{"WCUBE", "Use cubic profile of omega?", "y/n"},
	{"WMAX", "Extreme value of omega (negative = upward)", "hPa hour^-1"},
	{"PERIOD", "Period of omega variation", "days"},
	{"PWZERO", "Pressure where omega = 0 (top)", "hPa"},
	{"PWBOTTOM", "Pressure where omega = 0 (bottom)", "hPa"},
	{"PWMAX", "Pressure where omega reaches extreme", "hPa"},
	{"WTG", "Apply weak-temperature-gradient approximation?", "y/n"},
	{"PFIX", "Pressure above which sounding fixed", "hPa"},
}

// Params is the parameter table of the params_ver2.in format.
var Params = Table{Meta: paramMeta, Positions: paramLines}
