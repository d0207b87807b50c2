package params

import (
	"strings"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
	"github.com/ankurk017/RCE-1D-Emanuel/fixedfmt"
	"github.com/ankurk017/RCE-1D-Emanuel/schema"
)

// Parameter is the raw text found at a descriptor's source line. Values are
// not converted or checked; they are shown as they appear in the file.
type Parameter struct {
	Descriptor schema.Descriptor
	Value      string
}

// Extraction is the result of reading one configuration file.
type Extraction struct {
	Source string
	Params []Parameter
}

// Extract reads the configuration file path and returns one Parameter per
// descriptor of t, in t's order. A descriptor whose line is past the end of the
// file gets an empty value, so a truncated file still yields a full table.
// t is validated on every call.
func Extract(path string, t schema.Table) (*Extraction, error) {
	desc, err := t.Descriptors()
	if err != nil {
		return nil, rce.Decorate(err, "Extract")
	}
	lines, err := fixedfmt.ReadLines(path)
	if err != nil {
		return nil, rce.Decorate(err, "Extract")
	}
	ex := &Extraction{Source: path, Params: make([]Parameter, len(desc))}
	for i, d := range desc {
		var v string
		if d.SourcePosition <= len(lines) {
			v = strings.TrimSpace(lines[d.SourcePosition-1])
		}
		ex.Params[i] = Parameter{Descriptor: d, Value: v}
	}
	return ex, nil
}

// Value returns the value of the parameter called name, and false if there is no
// such parameter.
func (E *Extraction) Value(name string) (string, bool) {
	for _, p := range E.Params {
		if p.Descriptor.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
