package output

// TimeSeriesRecord is one row of time.out.
type TimeSeriesRecord struct {
	Day          float64 //elapsed time, days
	Precip       float64 //mm/day
	Evap         float64 //mm/day
	AirTemp      float64 //near-surface air temperature, C
	SST          float64 //C
	TOAShortwave float64 //W/m^2
	TOALongwave  float64 //W/m^2
}

// ProfileRecord is one level of profile.out.
type ProfileRecord struct {
	Pressure         float64 //hPa
	Temperature      float64 //C
	SpecificHumidity float64 //g/kg
	RelHumidity      float64 //fraction, 0-1
	CloudFraction    float64 //0-1
	CloudWater       float64 //cloud condensed water, g/kg
}

// RelHumidityPercent returns the relative humidity in percent.
func (P ProfileRecord) RelHumidityPercent() float64 {
	return P.RelHumidity * 100
}

// Run holds the outputs of one model run, in file order.
type Run struct {
	Dir     string
	Time    []TimeSeriesRecord
	Profile []ProfileRecord
}

//TimeColumn returns the values of one field of the time series, in order.
func (R *Run) TimeColumn(field func(TimeSeriesRecord) float64) []float64 {
	ret := make([]float64, len(R.Time))
	for i, v := range R.Time {
		ret[i] = field(v)
	}
	return ret
}

//ProfileColumn returns the values of one field of the profile, in order.
func (R *Run) ProfileColumn(field func(ProfileRecord) float64) []float64 {
	ret := make([]float64, len(R.Profile))
	for i, v := range R.Profile {
		ret[i] = field(v)
	}
	return ret
}
