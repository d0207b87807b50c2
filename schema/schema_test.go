package schema

import (
	"errors"
	"testing"

	rce "github.com/ankurk017/RCE-1D-Emanuel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsDescriptors(t *testing.T) {
	d, err := Params.Descriptors()
	require.NoError(t, err)
	require.Len(t, d, len(paramLines))
	assert.Len(t, d, 42)

	seen := make(map[int]bool)
	for i, v := range d {
		assert.False(t, seen[v.SourcePosition], "line %d used twice", v.SourcePosition)
		seen[v.SourcePosition] = true
		assert.Equal(t, paramMeta[i].Name, v.Name)
	}
	assert.Equal(t, "RESTART", d[0].Name)
	assert.Equal(t, 4, d[0].SourcePosition)
	assert.Equal(t, "PFIX", d[len(d)-1].Name)
	assert.Equal(t, 57, d[len(d)-1].SourcePosition)
	assert.Equal(t, 57, Params.MaxPosition())
}

func TestDescriptorsMismatch(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{"short positions", Table{Meta: paramMeta, Positions: paramLines[:len(paramLines)-1]}},
		{"repeated line", Table{Meta: paramMeta[:2], Positions: []int{4, 4}}},
		{"zero line", Table{Meta: paramMeta[:1], Positions: []int{0}}},
		{"decreasing", Table{Meta: paramMeta[:2], Positions: []int{5, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.table.Descriptors()
			var target *rce.SchemaMismatchError
			require.True(t, errors.As(err, &target), "got %v", err)
		})
	}
}

func TestColumnsMinWidth(t *testing.T) {
	assert.Equal(t, 9, TimeSeries.MinWidth())
	assert.Equal(t, 5, Profile.MinWidth())

	c, ok := Profile.Lookup(CloudFraction)
	require.True(t, ok)
	assert.Equal(t, FromEnd, c.Anchor)
	assert.Equal(t, 2, c.Offset)

	_, ok = TimeSeries.Lookup("nonexistent")
	assert.False(t, ok)
}
