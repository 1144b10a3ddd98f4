package civiltime

/*
iso.go implements the ISO-8601 text codec over a closed enumeration
of format variants. Parsing proceeds by fixed-offset substring
slicing per format; there is no general grammar.
*/

/*
IsoFormat enumerates the supported ISO-8601 renditions. The set is
closed; dispatch occurs by exhaustive switch.
*/
type IsoFormat uint8

const (
	IsoDateBasic           IsoFormat = iota // YYYYMMDD
	IsoDateExtended                         // YYYY-MM-DD
	IsoTimeBasic                            // HHMMSS
	IsoTimeExtended                         // HH:MM:SS
	IsoDateTimeBasic                        // YYYYMMDDTHHMMSS
	IsoDateTimeExtended                     // YYYY-MM-DDTHH:MM:SS
	IsoDateTimeBasicTZD                     // YYYYMMDDTHHMMSS±HHMM
	IsoDateTimeExtendedTZD                  // YYYY-MM-DDTHH:MM:SS±HH:MM
)

/*
String returns the pattern name of the receiver format.
*/
func (r IsoFormat) String() (s string) {
	switch r {
	case IsoDateBasic:
		s = `YYYYMMDD`
	case IsoDateExtended:
		s = `YYYY-MM-DD`
	case IsoTimeBasic:
		s = `HHMMSS`
	case IsoTimeExtended:
		s = `HH:MM:SS`
	case IsoDateTimeBasic:
		s = `YYYYMMDDTHHMMSS`
	case IsoDateTimeExtended:
		s = `YYYY-MM-DDTHH:MM:SS`
	case IsoDateTimeBasicTZD:
		s = `YYYYMMDDTHHMMSSTZD`
	case IsoDateTimeExtendedTZD:
		s = `YYYY-MM-DDTHH:MM:SSTZD`
	default:
		s = `<unknown format>`
	}
	return
}

func (r IsoFormat) hasDate() bool {
	return r != IsoTimeBasic && r != IsoTimeExtended
}

func (r IsoFormat) hasTime() bool {
	return r != IsoDateBasic && r != IsoDateExtended
}

func (r IsoFormat) hasTZD() bool {
	return r == IsoDateTimeBasicTZD || r == IsoDateTimeExtendedTZD
}

func (r IsoFormat) extended() bool {
	switch r {
	case IsoDateExtended, IsoTimeExtended,
		IsoDateTimeExtended, IsoDateTimeExtendedTZD:
		return true
	}
	return false
}

/*
Format returns the receiver format's rendition of dt. Each field is
zero-padded to its fixed width, the year clamped to four digits; the
offset designator appears only under TZD-suffixed formats.
*/
func (r IsoFormat) Format(dt CivilDateTime) string {
	debugCodec(r, dt)
	var b digitBuf

	if r.hasDate() {
		b.putFixed(int(dt.Year), 4)
		if r.extended() {
			b.put('-')
		}
		b.putFixed(int(dt.Month), 2)
		if r.extended() {
			b.put('-')
		}
		b.putFixed(int(dt.Day), 2)
	}

	if r.hasDate() && r.hasTime() {
		b.put('T')
	}

	if r.hasTime() {
		b.putFixed(int(dt.Hour), 2)
		if r.extended() {
			b.put(':')
		}
		b.putFixed(int(dt.Minute), 2)
		if r.extended() {
			b.put(':')
		}
		b.putFixed(int(dt.Second), 2)
	}

	out := b.string()
	if r.hasTZD() {
		out += dt.Zone.designator(r.extended())
	}
	return out
}

/*
bodyLen returns the fixed byte length of the receiver format
excluding any offset designator.
*/
func (r IsoFormat) bodyLen() (n int) {
	if r.hasDate() {
		n += 8
		if r.extended() {
			n += 2
		}
	}
	if r.hasDate() && r.hasTime() {
		n++
	}
	if r.hasTime() {
		n += 6
		if r.extended() {
			n += 2
		}
	}
	return
}

/*
Parse interprets s under the receiver format, substituting the
calendar minima of the input variant for any date or time fields the
format omits. Malformed input yields an absent [ParseResult]; the
slicing core never returns an error.
*/
func (r IsoFormat) Parse(s string, v CalendarVariant) ParseResult[CivilDateTime] {
	debugCodec(r, s)
	cal := NewCalendar(v)
	dt := CivilDateTime{
		Year:  cal.MinYear,
		Month: cal.MinMonth,
		Day:   cal.MinDay,
		Zone:  UTC,
		Cal:   cal,
	}

	body := s
	if r.hasTZD() {
		n := r.bodyLen()
		if len(s) <= n {
			return absentPR[CivilDateTime]()
		}
		body = s[:n]
		res := parseDesignator(s[n:])
		off, ok := res.Value()
		if !ok {
			return absentPR[CivilDateTime]()
		}
		dt.Zone = off
	}

	if len(body) != r.bodyLen() {
		return absentPR[CivilDateTime]()
	}

	at := 0
	if r.hasDate() {
		year, ok := deci4(body[0], body[1], body[2], body[3])
		if !ok {
			return absentPR[CivilDateTime]()
		}
		at = 4

		if r.extended() {
			if body[at] != '-' || body[at+3] != '-' {
				return absentPR[CivilDateTime]()
			}
			mo, ok1 := deci2(body[at+1], body[at+2])
			dd, ok2 := deci2(body[at+4], body[at+5])
			if !ok1 || !ok2 {
				return absentPR[CivilDateTime]()
			}
			dt.Month, dt.Day = uint8(mo), uint8(dd)
			at += 6
		} else {
			mo, ok1 := deci2(body[at], body[at+1])
			dd, ok2 := deci2(body[at+2], body[at+3])
			if !ok1 || !ok2 {
				return absentPR[CivilDateTime]()
			}
			dt.Month, dt.Day = uint8(mo), uint8(dd)
			at += 4
		}
		dt.Year = uint16(year)
	}

	if r.hasDate() && r.hasTime() {
		if body[at] != 'T' {
			return absentPR[CivilDateTime]()
		}
		at++
	}

	if r.hasTime() {
		if r.extended() {
			if body[at+2] != ':' || body[at+5] != ':' {
				return absentPR[CivilDateTime]()
			}
			hh, ok1 := deci2(body[at], body[at+1])
			mm, ok2 := deci2(body[at+3], body[at+4])
			ss, ok3 := deci2(body[at+6], body[at+7])
			if !ok1 || !ok2 || !ok3 {
				return absentPR[CivilDateTime]()
			}
			dt.Hour, dt.Minute, dt.Second = uint8(hh), uint8(mm), uint8(ss)
		} else {
			hh, ok1 := deci2(body[at], body[at+1])
			mm, ok2 := deci2(body[at+2], body[at+3])
			ss, ok3 := deci2(body[at+4], body[at+5])
			if !ok1 || !ok2 || !ok3 {
				return absentPR[CivilDateTime]()
			}
			dt.Hour, dt.Minute, dt.Second = uint8(hh), uint8(mm), uint8(ss)
		}
	}

	return somePR(dt)
}
