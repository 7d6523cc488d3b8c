package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYears(t *testing.T) {
	tests := []struct {
		in   string
		want YearRange
	}{
		{"2010-2015", YearRange{2010, 2015}},
		{"2016-present", YearRange{2016, 9999}},
		{"2016 - Present", YearRange{2016, 9999}},
		{"2005", YearRange{2005, 2005}},
		{"1998 2002 2006", YearRange{1998, 2002}},
		{"", YearRange{}},
		{"unknown", YearRange{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYears(tt.in))
		})
	}
}
