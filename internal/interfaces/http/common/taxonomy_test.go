package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRegion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "North", want: "North"},
		{in: "north", want: "North"},
		{in: " WEST ", want: "West"},
		{in: "hq", want: "HQ"},
		{in: "Central", want: ""},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalRegion(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeRegionList(t *testing.T) {
	got, err := NormalizeRegionList([]string{"north", "", " South ", "NORTH"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"North", "South"}, got)

	_, err = NormalizeRegionList([]string{"North", "Central"})
	assert.Error(t, err)
}
