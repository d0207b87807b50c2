package output

import (
	"fmt"
	"path/filepath"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
	"github.com/ankurk017/RCE-1D-Emanuel/fixedfmt"
	"github.com/ankurk017/RCE-1D-Emanuel/schema"
)

// Names of the model output files in a run directory.
const (
	TimeFile    = "time.out"
	ProfileFile = "profile.out"
)

// Load reads TimeFile and ProfileFile from the run directory dir. Compressed
// variants (time.out.zst, time.out.gz...) are used when the plain file is absent.
// The time series is read first.
func Load(dir string) (*Run, error) {
	tpath, err := fixedfmt.Resolve(filepath.Join(dir, TimeFile))
	if err != nil {
		return nil, rce.Decorate(err, "Load")
	}
	ppath, err := fixedfmt.Resolve(filepath.Join(dir, ProfileFile))
	if err != nil {
		return nil, rce.Decorate(err, "Load")
	}
	R := &Run{Dir: dir}
	if R.Time, err = LoadTimeSeries(tpath); err != nil {
		return nil, rce.Decorate(err, "Load")
	}
	if R.Profile, err = LoadProfile(ppath); err != nil {
		return nil, rce.Decorate(err, "Load")
	}
	return R, nil
}

// LoadTimeSeries reads a time.out file.
func LoadTimeSeries(path string) ([]TimeSeriesRecord, error) {
	T, err := readMapped(path, schema.TimeSeries)
	if err != nil {
		return nil, rce.Decorate(err, "LoadTimeSeries")
	}
	c := columns(schema.TimeSeries)
	ret := make([]TimeSeriesRecord, T.Len())
	for i, r := range T.Rows {
		ret[i] = TimeSeriesRecord{
			Day:          pick(r, c[schema.Day]),
			Precip:       pick(r, c[schema.Precip]),
			Evap:         pick(r, c[schema.Evap]),
			AirTemp:      pick(r, c[schema.AirTemp]),
			SST:          pick(r, c[schema.SST]),
			TOAShortwave: pick(r, c[schema.TOAShortwave]),
			TOALongwave:  pick(r, c[schema.TOALongwave]),
		}
	}
	return ret, nil
}

// LoadProfile reads a profile.out file. Only the named columns are used; the
// middle columns, whose number varies, are ignored.
func LoadProfile(path string) ([]ProfileRecord, error) {
	T, err := readMapped(path, schema.Profile)
	if err != nil {
		return nil, rce.Decorate(err, "LoadProfile")
	}
	c := columns(schema.Profile)
	ret := make([]ProfileRecord, T.Len())
	for i, r := range T.Rows {
		ret[i] = ProfileRecord{
			Pressure:         pick(r, c[schema.Pressure]),
			Temperature:      pick(r, c[schema.Temperature]),
			SpecificHumidity: pick(r, c[schema.SpecificHumidity]),
			RelHumidity:      pick(r, c[schema.RelHumidity]),
			CloudFraction:    pick(r, c[schema.CloudFraction]),
			CloudWater:       pick(r, c[schema.CloudWater]),
		}
	}
	return ret, nil
}

func readMapped(path string, cols schema.Columns) (*fixedfmt.Table, error) {
	T, err := fixedfmt.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if w, min := T.Width(), cols.MinWidth(); w < min {
		return nil, rce.NewMalformedFormatError(path, 0, fmt.Sprintf("%d columns, at least %d needed", w, min), "readMapped")
	}
	return T, nil
}

func columns(cols schema.Columns) map[string]schema.Column {
	ret := make(map[string]schema.Column, len(cols))
	for _, c := range cols {
		ret[c.Name] = c
	}
	return ret
}

//pick reads column c from r using c's addressing mode.
func pick(r fixedfmt.Row, c schema.Column) float64 {
	if c.Anchor == schema.FromEnd {
		return r.FromEnd(c.Offset)
	}
	return r.At(c.Offset)
}
