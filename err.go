package civiltime

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "sync"

/*
calendar errors.
*/
var (
	errorYearOutOfRange  = calendarErr{mkerr("year lies outside the calendar epoch")}
	errorMonthOutOfRange = calendarErr{mkerr("month lies outside the calendar bounds")}
	errorDayOutOfRange   = calendarErr{mkerr("day exceeds the days-in-month bound")}
	errorClockOutOfRange = calendarErr{mkerr("clock field lies outside the calendar bounds")}
	errorSubSecOverflow  = calendarErr{mkerr("sub-second field exceeds the calendar bound")}
)

/*
zone errors.
*/
var (
	errorZoneHourRange   = zoneErr{mkerr("offset hours must not exceed 23")}
	errorZoneMinuteRange = zoneErr{mkerr("offset minutes must not exceed 59")}
	errorZoneSign        = zoneErr{mkerr("offset sign must be +1 or -1")}
)

/*
parse errors, surfaced only by the bulletin loader; the ISO-8601
slicing core signals failure through an absent [ParseResult].
*/
var (
	errorEmptyBulletin  = parseErr{mkerr("leap second bulletin contains no entries")}
	errorBulletinOrder  = parseErr{mkerr("leap second bulletin entries are not sorted")}
	errorBulletinLoaded = parseErr{mkerr("leap second table already in use; load before first lookup")}
)

/*
types which implement the error interface.
*/
type (
	calendarErr struct{ e error }
	codecErr    struct{ e error }
	parseErr    struct{ e error }
	zoneErr     struct{ e error }
)

func calendarErrorf(m ...any) error { return calendarErr{mkerrf(m...)} }
func codecErrorf(m ...any) error    { return codecErr{mkerrf(m...)} }
func parseErrorf(m ...any) error    { return parseErr{mkerrf(m...)} }
func zoneErrorf(m ...any) error     { return zoneErr{mkerrf(m...)} }

func (r calendarErr) Error() string { return `CALENDAR ERROR: ` + r.e.Error() }
func (r codecErr) Error() string    { return `CODEC ERROR: ` + r.e.Error() }
func (r parseErr) Error() string    { return `PARSE ERROR: ` + r.e.Error() }
func (r zoneErr) Error() string     { return `ZONE ERROR: ` + r.e.Error() }

func errorBadTypeForConstructor(ctType string, inputType any) (err error) {
	var inName string = "<nil>" // sensible default
	if inputType != nil {
		inName = refTypeName(inputType)
	}
	return calendarErrorf("Invalid input type for ",
		ctType, " constructor: ", inName)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case IsoFormat:
			b.WriteString(v.String())
		case CalendarVariant:
			b.WriteString(v.String())
		case int:
			b.WriteString(itoa(v))
		case uint64:
			b.WriteString(fmtUint(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
