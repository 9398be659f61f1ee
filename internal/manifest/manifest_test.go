package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMtime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole seconds", time.Unix(1700000000, 0), "1700000000.000000"},
		{"microseconds", time.Unix(1700000000, 123456000), "1700000000.123456"},
		{"nanoseconds truncated", time.Unix(1700000000, 123456789), "1700000000.123456"},
		{"epoch", time.Unix(0, 0), "0.000000"},
		{"before epoch", time.Unix(-1, 750000000), "-0.250000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMtime(tt.in))
		})
	}
}

func TestParseMtime(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1700000000.123456", 1700000000123456},
		{"1.500000", 1500000},
		{"0.000000", 0},
		{"-0.250000", -250000},
		{"3.5", 3500000},
		{"7", 7000000},
		{"garbage", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseMtime(tt.in), tt.in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	in := time.Unix(1700000000, 987654000)
	assert.Equal(t, in.UnixMicro(), ParseMtime(FormatMtime(in)))
}

func TestClearTransient(t *testing.T) {
	m := Manifest{
		"v/a": {Hash: "aa", Exist: true},
		"v/b": {Hash: "bb"},
	}

	m.ClearTransient()

	for vp, rec := range m {
		assert.False(t, rec.Exist, vp)
	}
}
