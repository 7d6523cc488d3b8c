package specs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/autoatlas/autoatlas/pkg/constants"
)

var fourDigits = regexp.MustCompile(`\d{4}`)

// YearRange is a parsed production span. Zero means unknown.
type YearRange struct {
	Start int
	End   int
}

// ParseYears reads the first two four-digit numbers of a free-text range.
// A missing end year defaults to the start year and "present" maps to 9999.
func ParseYears(value string) YearRange {
	var yr YearRange
	numbers := fourDigits.FindAllString(value, 2)
	if len(numbers) > 0 {
		yr.Start, _ = strconv.Atoi(numbers[0])
		yr.End = yr.Start
	}
	if len(numbers) > 1 {
		yr.End, _ = strconv.Atoi(numbers[1])
	}
	if strings.Contains(strings.ToLower(value), "present") {
		yr.End = constants.PresentYear
	}
	return yr
}
