package civiltime

/*
cal.go implements the calendar rules abstraction: a closed set of
calendar variants exposing field bounds, leap determination, day
indexing and epoch-offset conversion.
*/

/*
CalendarVariant selects one member of the closed calendar set. The
variant population is fixed; dispatch occurs by exhaustive switch
rather than open interface satisfaction.
*/
type CalendarVariant uint8

const (
	// Gregorian selects proleptic Gregorian rules anchored at 1900,
	// with historical leap second lookups applied from 1972 onward.
	Gregorian CalendarVariant = iota

	// UTCFast selects Gregorian rules over a fixed [1970,9999] epoch
	// with leap seconds declared unsupported. Epoch math under this
	// variant never consults the leap second table.
	UTCFast
)

/*
String returns the string name of the receiver variant.
*/
func (r CalendarVariant) String() (s string) {
	switch r {
	case Gregorian:
		s = `Gregorian`
	case UTCFast:
		s = `UTCFast`
	default:
		s = `<unknown calendar>`
	}
	return
}

/*
Calendar encapsulates the immutable constant block of a single
calendar variant: epoch bounds, per-field minima and maxima, and the
days-per-month lookup table. Field values are read-only following
construction via [NewCalendar].

MaxSecondTypical reflects the ordinary final second of a minute (59),
while MaxSecondPossible admits 60 for leap second insertion minutes.
*/
type Calendar struct {
	MinYear, MaxYear     uint16
	MinMonth, MaxMonth   uint8
	MinDay, MaxDay       uint8
	MinHour, MaxHour     uint8
	MinMinute, MaxMinute uint8
	MinSecond            uint8
	MaxSecondTypical     uint8
	MaxSecondPossible    uint8
	MinSub, MaxSub       uint16 // milli/micro/nano share one bound

	variant   CalendarVariant
	leapAware bool
	dim       [12]uint8
}

/*
monthDaysBefore is the cumulative non-leap day count preceding each
month, January first.
*/
var monthDaysBefore = [12]uint16{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/*
NewCalendar returns an instance of [Calendar] bearing the constant
block of the input [CalendarVariant]. Unknown variants yield the
[Gregorian] block.
*/
func NewCalendar(v CalendarVariant) Calendar {
	cal := Calendar{
		MinYear:           1900,
		MaxYear:           9999,
		MinMonth:          1,
		MaxMonth:          12,
		MinDay:            1,
		MaxDay:            31,
		MinHour:           0,
		MaxHour:           23,
		MinMinute:         0,
		MaxMinute:         59,
		MinSecond:         0,
		MaxSecondTypical:  59,
		MaxSecondPossible: 60,
		MinSub:            0,
		MaxSub:            999,
		variant:           Gregorian,
		leapAware:         true,
		dim:               monthDays,
	}

	if v == UTCFast {
		cal.MinYear = 1970
		cal.variant = UTCFast
		cal.leapAware = false
	}

	return cal
}

/*
Variant returns the [CalendarVariant] which produced the receiver.
*/
func (r Calendar) Variant() CalendarVariant { return r.variant }

/*
LeapAware returns a Boolean value indicative of whether the receiver
consults the leap second table during epoch conversion.
*/
func (r Calendar) LeapAware() bool { return r.leapAware }

/*
IsLeapYear returns a Boolean value indicative of whether the input
year is a Gregorian leap year.
*/
func (r Calendar) IsLeapYear(year uint16) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
MaxDaysInMonth returns the number of days within the input month of
the input year, with February extended by one day in leap years.

Out-of-range months clamp to the nearest table entry rather than
failing; validation belongs to the caller.
*/
func (r Calendar) MaxDaysInMonth(year uint16, month uint8) uint8 {
	if month < r.MinMonth {
		month = r.MinMonth
	} else if month > r.MaxMonth {
		month = r.MaxMonth
	}

	d := r.dim[month-1]
	if month == 2 && r.IsLeapYear(year) {
		d++
	}
	return d
}

/*
DayOfYear returns the one-based ordinal of the input date within its
year.
*/
func (r Calendar) DayOfYear(year uint16, month, day uint8) uint16 {
	doy := monthDaysBefore[month-1] + uint16(day)
	if month > 2 && r.IsLeapYear(year) {
		doy++
	}
	return doy
}

/*
DayOfMonth is the inverse of [Calendar.DayOfYear]: it resolves a
one-based ordinal day of the input year into its month and day.
*/
func (r Calendar) DayOfMonth(year uint16, doy uint16) (month, day uint8) {
	leap := uint16(0)
	if r.IsLeapYear(year) {
		leap = 1
	}

	month = r.MaxMonth
	for m := uint8(1); m < 12; m++ {
		before := monthDaysBefore[m]
		if m+1 > 2 {
			before += leap
		}
		if doy <= before {
			month = m
			break
		}
	}

	before := monthDaysBefore[month-1]
	if month > 2 {
		before += leap
	}
	day = uint8(doy - before)
	return
}

/*
dayCountBeforeYear returns 365y + y/4 - y/100 + y/400, the closed-form
Gregorian day count through the end of year y.
*/
func dayCountBeforeYear(y uint32) uint32 {
	return 365*y + y/4 - y/100 + y/400
}

/*
DayOfWeek returns the weekday ordinal of the input date, 0=Monday
through 6=Sunday. The fixed six-day alignment constant sets
1970-01-01 to Thursday (3).
*/
func (r Calendar) DayOfWeek(year uint16, month, day uint8) uint8 {
	total := dayCountBeforeYear(uint32(year)-1) + uint32(r.DayOfYear(year, month, day))
	return uint8((total + 6) % 7)
}

/*
leapDaysSinceEpoch returns the count of February 29ths between the
calendar's MinYear (inclusive) and the input year (exclusive).
*/
func (r Calendar) leapDaysSinceEpoch(year uint16) uint32 {
	if year <= r.MinYear {
		return 0
	}
	return dayCountBeforeYear(uint32(year)-1) - 365*(uint32(year)-1) -
		(dayCountBeforeYear(uint32(r.MinYear)-1) - 365*(uint32(r.MinYear)-1))
}

/*
DaysSinceEpoch returns the count of whole days between the calendar
epoch origin (MinYear January 1st) and the input date.
*/
func (r Calendar) DaysSinceEpoch(year uint16, month, day uint8) uint32 {
	return uint32(year-r.MinYear)*365 +
		r.leapDaysSinceEpoch(year) +
		uint32(r.DayOfYear(year, month, day)) - 1
}

/*
LeapSecsSinceEpoch returns the cumulative count of leap seconds
inserted at or before the input date. Leap-unaware variants and years
preceding 1972 always yield zero.
*/
func (r Calendar) LeapSecsSinceEpoch(year uint16, month, day uint8) uint32 {
	if !r.leapAware || year < 1972 {
		return 0
	}

	key := leapKey(year, month, day)
	table := leapTable()

	lo, hi := 0, len(table)
	for lo < hi {
		mid := (lo + hi) / 2
		if table[mid] <= key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return uint32(lo)
}

/*
IsLeapSec returns a Boolean value indicative of whether the input
instant falls within a leap second insertion minute: the final minute
of a date recorded in the leap second table.
*/
func (r Calendar) IsLeapSec(year uint16, month, day, hour, minute uint8) bool {
	if !r.leapAware || year < 1972 {
		return false
	}
	if hour != r.MaxHour || minute != r.MaxMinute {
		return false
	}

	key := leapKey(year, month, day)
	for _, ent := range leapTable() {
		if ent == key {
			return true
		} else if ent > key {
			break
		}
	}
	return false
}

/*
MaxSecond returns the final second ordinal of the input minute: 59
ordinarily, or 60 when the minute hosts a leap second insertion.
*/
func (r Calendar) MaxSecond(year uint16, month, day, hour, minute uint8) uint8 {
	if r.IsLeapSec(year, month, day, hour, minute) {
		return r.MaxSecondPossible
	}
	return r.MaxSecondTypical
}

/*
SecondsSinceEpoch returns the count of seconds between the calendar
epoch origin and the input instant, inclusive of cumulative leap
seconds for leap-aware variants.
*/
func (r Calendar) SecondsSinceEpoch(year uint16, month, day, hour, minute, second uint8) uint64 {
	return uint64(r.DaysSinceEpoch(year, month, day))*86400 +
		uint64(hour)*3600 +
		uint64(minute)*60 +
		uint64(second) +
		uint64(r.LeapSecsSinceEpoch(year, month, day))
}

/*
MSecondsSinceEpoch extends [Calendar.SecondsSinceEpoch] to millisecond
resolution.
*/
func (r Calendar) MSecondsSinceEpoch(year uint16, month, day, hour, minute, second uint8, milli uint16) uint64 {
	return r.SecondsSinceEpoch(year, month, day, hour, minute, second)*1000 +
		uint64(milli)
}

/*
NSecondsSinceEpoch extends [Calendar.MSecondsSinceEpoch] to nanosecond
resolution.

A uint64 nanosecond counter spans roughly 584 years. Instants more
than that interval beyond the calendar epoch origin are outside the
representable window and produce wrapped, meaningless counts; callers
needing wide spans must re-anchor the epoch first (see
[CivilDateTime.DeltaNS]).
*/
func (r Calendar) NSecondsSinceEpoch(year uint16, month, day, hour, minute, second uint8, milli, micro, nano uint16) uint64 {
	return r.SecondsSinceEpoch(year, month, day, hour, minute, second)*1_000_000_000 +
		uint64(milli)*1_000_000 +
		uint64(micro)*1_000 +
		uint64(nano)
}

/*
DayName returns the English weekday name of the input ordinal as
returned by [Calendar.DayOfWeek].
*/
func DayName(dow uint8) string {
	if dow > 6 {
		return `<unknown day>`
	}
	return dayNames[dow]
}

var dayNames = [7]string{
	`Monday`, `Tuesday`, `Wednesday`,
	`Thursday`, `Friday`, `Saturday`,
	`Sunday`,
}
