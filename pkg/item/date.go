package item

import "fmt"

// DateLen is the character length of the YYYY-MM-DD form.
const DateLen = 10

// Date is a calendar-validated report date in YYYY-MM-DD form. The zero
// value is "no date"; every non-zero Date was built by ParseDate and is
// guaranteed valid, so string comparison of two Dates orders them
// chronologically.
type Date struct {
	s string
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ParseDate validates s against the YYYY-MM-DD calendar rule and returns it
// as a Date. The day range is checked against the month, with February 29
// accepted only in leap years.
func ParseDate(s string) (Date, error) {
	if len(s) != DateLen || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("item: invalid date %q (want YYYY-MM-DD)", s)
	}
	for _, i := range [8]int{0, 1, 2, 3, 5, 6, 8, 9} {
		if s[i] < '0' || s[i] > '9' {
			return Date{}, fmt.Errorf("item: invalid date %q (non-digit at position %d)", s, i)
		}
	}

	year := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("item: invalid date %q (month must be 01-12)", s)
	}
	max := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	if day < 1 || day > max {
		return Date{}, fmt.Errorf("item: invalid date %q (day out of range for month)", s)
	}
	return Date{s: s}, nil
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// String returns the YYYY-MM-DD form, or "" for the zero value.
func (d Date) String() string { return d.s }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.s == "" }

// Before reports whether d is chronologically earlier than other. Valid
// because the zero-padded form compares big-endian by component.
func (d Date) Before(other Date) bool { return d.s < other.s }
