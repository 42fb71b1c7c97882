package epoch

import (
	"strings"

	"github.com/chrisconley/chronon/parsing"
)

// MonthName is a calendar month, January being 1.
type MonthName uint8

const (
	January MonthName = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [13]string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

func (m MonthName) String() string {
	if m < January || m > December {
		return "Unknown"
	}
	return monthNames[m]
}

// Short returns the three letter abbreviation.
func (m MonthName) Short() string { return m.String()[:3] }

// ParseMonthName accepts full or abbreviated English names, ignoring case.
func ParseMonthName(s string) (MonthName, error) {
	for i := January; i <= December; i++ {
		name := monthNames[i]
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return i, nil
		}
	}
	return 0, parsing.TokenError(parsing.UnknownMonthName, s)
}

// MonthName returns the month on the display clock.
func (e Epoch) MonthName() MonthName {
	return MonthName(e.ToGregorian(e.scale).Month)
}
