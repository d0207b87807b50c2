package schema

// Anchor says where a column offset is counted from.
type Anchor int

const (
	FromStart Anchor = iota //Offset is a 0-based index
	FromEnd                 //Offset 1 is the last column, 2 the second-to-last...
)

// Column is a named physical quantity stored at a fixed position of every row
// of a numeric output file.
type Column struct {
	Name   string
	Units  string
	Anchor Anchor
	Offset int
}

// Width returns the minimum row width that contains c.
func (c Column) Width() int {
	if c.Anchor == FromEnd {
		return c.Offset
	}
	return c.Offset + 1
}

// Columns is an ordered column mapping for one output file.
type Columns []Column

//MinWidth is the smallest number of fields a row needs for every column in C
//to be addressable. Start- and end-anchored columns are allowed to overlap.
func (C Columns) MinWidth() int {
	w := 0
	for _, c := range C {
		if c.Width() > w {
			w = c.Width()
		}
	}
	return w
}

// Names of the mapped quantities.
const (
	Day              = "day"
	Precip           = "precip"
	Evap             = "evap"
	AirTemp          = "ta0"
	SST              = "sst"
	TOAShortwave     = "toa_sw"
	TOALongwave      = "toa_lw"
	Pressure         = "pressure"
	Temperature      = "temperature"
	SpecificHumidity = "q"
	RelHumidity      = "rh"
	CloudFraction    = "cloud_fraction"
	CloudWater       = "cloud_water"
)

// TimeSeries maps the columns of time.out. Columns 5 and 6 exist in the file
// but are not used.
var TimeSeries = Columns{
	{Day, "days", FromStart, 0},
	{Precip, "mm/day", FromStart, 1},
	{Evap, "mm/day", FromStart, 2},
	{AirTemp, "C", FromStart, 3},
	{SST, "C", FromStart, 4},
	{TOAShortwave, "W/m^2", FromStart, 7},
	{TOALongwave, "W/m^2", FromStart, 8},
}

// Profile maps the columns of profile.out. The number of middle columns varies
// between model versions, but the last two are always cloud fraction and cloud
// water, so those are addressed from the end of the row.
var Profile = Columns{
	{Pressure, "hPa", FromStart, 0},
	{Temperature, "C", FromStart, 1},
	{SpecificHumidity, "g/kg", FromStart, 2},
	{RelHumidity, "0-1", FromStart, 4},
	{CloudFraction, "0-1", FromEnd, 2},
	{CloudWater, "g/kg", FromEnd, 1},
}

// Lookup returns the column called name, and false if there is none.
func (C Columns) Lookup(name string) (Column, bool) {
	for _, c := range C {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
