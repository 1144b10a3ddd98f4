package civiltime

/*
civil.go implements the general nanosecond-resolution civil value
type, including the cascading field arithmetic, UTC normalization and
timezone-aware comparison.
*/

import "time"

/*
CivilDateTime combines the nine civil fields with a [Calendar]
selection and an [Offset]. Instances are plain values; every mutator
returns a settled copy and no state is ever shared.

Field values lie within their calendar bounds after every public
mutator returns; intermediate carry steps may transiently exceed
them. The arithmetic core performs no validation whatsoever (see
[NewCivilDateTime] for the validated layer).
*/
type CivilDateTime struct {
	Year                             uint16
	Month, Day, Hour, Minute, Second uint8
	Milli, Micro, Nano               uint16
	Zone                             Offset
	Cal                              Calendar
}

/*
Delta carries the per-field operands of [CivilDateTime.Add] and
[CivilDateTime.Sub]. Values are non-negative counts; direction is
chosen by the method, never by the sign of a field.
*/
type Delta struct {
	Years, Months, Days     int
	Hours, Minutes, Seconds int
	Millis, Micros, Nanos   int
}

/*
NewCivilDateTime returns a validated instance of [CivilDateTime]
alongside an error. The arithmetic core never validates; this
constructor is the opt-in boundary at which range enforcement and any
user-supplied [Constraint] instances apply.
*/
func NewCivilDateTime(v CalendarVariant, year, month, day, hour, minute, second int, constraints ...Constraint[CivilDateTime]) (CivilDateTime, error) {
	cal := NewCalendar(v)
	dt := CivilDateTime{
		Year:   uint16(year),
		Month:  uint8(month),
		Day:    uint8(day),
		Hour:   uint8(hour),
		Minute: uint8(minute),
		Second: uint8(second),
		Zone:   UTC,
		Cal:    cal,
	}

	var err error
	switch {
	case year < int(cal.MinYear) || year > int(cal.MaxYear):
		err = errorYearOutOfRange
	case month < int(cal.MinMonth) || month > int(cal.MaxMonth):
		err = errorMonthOutOfRange
	case day < int(cal.MinDay) || day > int(cal.MaxDaysInMonth(dt.Year, dt.Month)):
		err = errorDayOutOfRange
	case hour < 0 || hour > int(cal.MaxHour),
		minute < 0 || minute > int(cal.MaxMinute),
		second < 0 || second > int(cal.MaxSecond(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute)):
		err = errorClockOutOfRange
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[CivilDateTime] = constraints
		err = group.Constrain(dt)
	}

	return dt, err
}

/*
WithSubSecond returns the receiver bearing the input millisecond,
microsecond and nanosecond fields, validated against the calendar
sub-second bound.
*/
func (r CivilDateTime) WithSubSecond(milli, micro, nano int) (CivilDateTime, error) {
	max := int(r.Cal.MaxSub)
	if milli < 0 || milli > max || micro < 0 || micro > max || nano < 0 || nano > max {
		return r, errorSubSecOverflow
	}
	r.Milli, r.Micro, r.Nano = uint16(milli), uint16(micro), uint16(nano)
	return r, nil
}

/*
WithZone returns the receiver bearing the input [Offset]. No field
adjustment occurs; see [CivilDateTime.FromUTC] for converting
conversion.
*/
func (r CivilDateTime) WithZone(off Offset) CivilDateTime {
	r.Zone = off
	return r
}

/*
wrapYearHigh folds years beyond MaxYear back into the epoch: the
overflow remainder re-enters at MinYear.
*/
func wrapYearHigh(cal Calendar, y int) int {
	for y > int(cal.MaxYear) {
		y = int(cal.MinYear) + (y - int(cal.MaxYear) - 1)
	}
	return y
}

/*
wrapYearLow is the borrow-side inverse of wrapYearHigh.
*/
func wrapYearLow(cal Calendar, y int) int {
	for y < int(cal.MinYear) {
		y = int(cal.MaxYear) - (int(cal.MinYear) - y - 1)
	}
	return y
}

/*
Add returns the receiver advanced by the input [Delta].

Carries cascade most-significant-first: the year settles before the
month, the month before the day, and so on down to the nanosecond.
Each field bound is recomputed from the already-settled higher
fields, so a day carry out of February consults the settled year for
leap determination and a second carry consults the settled minute for
leap second insertion. This path never fails and never validates.
*/
func (r CivilDateTime) Add(d Delta) CivilDateTime {
	debugEnter(r, d)
	cal := r.Cal

	y := wrapYearHigh(cal, int(r.Year)+d.Years)

	mo := int(r.Month) + d.Months
	for mo > int(cal.MaxMonth) {
		mo -= int(cal.MaxMonth)
		y = wrapYearHigh(cal, y+1)
	}

	dd := int(r.Day) + d.Days
	settleDays := func() {
		for {
			dim := int(cal.MaxDaysInMonth(uint16(y), uint8(mo)))
			if dd <= dim {
				break
			}
			debugCarry(`day`, dd, dim)
			dd -= dim
			mo++
			if mo > int(cal.MaxMonth) {
				mo = int(cal.MinMonth)
				y = wrapYearHigh(cal, y+1)
			}
		}
	}
	settleDays()

	hr := int(r.Hour) + d.Hours
	if hr > int(cal.MaxHour) {
		dd += hr / 24
		hr %= 24
		settleDays()
	}

	mi := int(r.Minute) + d.Minutes
	if mi > int(cal.MaxMinute) {
		hr += mi / 60
		mi %= 60
		if hr > int(cal.MaxHour) {
			dd += hr / 24
			hr %= 24
			settleDays()
		}
	}

	se := int(r.Second) + d.Seconds
	settleSeconds := func() {
		for {
			maxS := int(cal.MaxSecond(uint16(y), uint8(mo), uint8(dd), uint8(hr), uint8(mi)))
			if se <= maxS {
				break
			}
			debugCarry(`second`, se, maxS)
			se -= maxS + 1
			mi++
			if mi > int(cal.MaxMinute) {
				mi = int(cal.MinMinute)
				hr++
				if hr > int(cal.MaxHour) {
					hr = int(cal.MinHour)
					dd++
					settleDays()
				}
			}
		}
	}
	settleSeconds()

	sub := int(cal.MaxSub) + 1
	ms := int(r.Milli) + d.Millis
	if ms > int(cal.MaxSub) {
		se += ms / sub
		ms %= sub
		settleSeconds()
	}

	us := int(r.Micro) + d.Micros
	if us > int(cal.MaxSub) {
		ms += us / sub
		us %= sub
		if ms > int(cal.MaxSub) {
			se += ms / sub
			ms %= sub
			settleSeconds()
		}
	}

	ns := int(r.Nano) + d.Nanos
	if ns > int(cal.MaxSub) {
		us += ns / sub
		ns %= sub
		if us > int(cal.MaxSub) {
			ms += us / sub
			us %= sub
			if ms > int(cal.MaxSub) {
				se += ms / sub
				ms %= sub
				settleSeconds()
			}
		}
	}

	out := r
	out.Year = uint16(y)
	out.Month = uint8(mo)
	out.Day = uint8(dd)
	out.Hour = uint8(hr)
	out.Minute = uint8(mi)
	out.Second = uint8(se)
	out.Milli = uint16(ms)
	out.Micro = uint16(us)
	out.Nano = uint16(ns)
	debugExit(out)
	return out
}

/*
Sub returns the receiver regressed by the input [Delta].

Borrows cascade least-significant-first: the nanosecond settles
before the microsecond, propagating upward through to the year. A day
underflow recomputes the days-in-month bound for the decremented
month before borrowing. After all fields settle, a final Add of the
zero delta re-runs the forward settling pass to correct any residual
day/month inconsistency left by the borrow chain.
*/
func (r CivilDateTime) Sub(d Delta) CivilDateTime {
	debugEnter(r, d)
	cal := r.Cal

	y, mo, dd := int(r.Year), int(r.Month), int(r.Day)
	hr, mi, se := int(r.Hour), int(r.Minute), int(r.Second)
	ms, us, ns := int(r.Milli), int(r.Micro), int(r.Nano)
	sub := int(cal.MaxSub) + 1

	borrowMonth := func() {
		mo--
		if mo < int(cal.MinMonth) {
			mo = int(cal.MaxMonth)
			y = wrapYearLow(cal, y-1)
		}
	}
	borrowDay := func() {
		dd--
		for dd < int(cal.MinDay) {
			borrowMonth()
			dd += int(cal.MaxDaysInMonth(uint16(y), uint8(mo)))
		}
	}

	ns -= d.Nanos
	for ns < int(cal.MinSub) {
		ns += sub
		us--
	}

	us -= d.Micros
	for us < int(cal.MinSub) {
		us += sub
		ms--
	}

	ms -= d.Millis
	for ms < int(cal.MinSub) {
		ms += sub
		se--
	}

	se -= d.Seconds
	for se < int(cal.MinSecond) {
		debugCarry(`second`, se, 0)
		mi--
		if mi < int(cal.MinMinute) {
			mi = int(cal.MaxMinute)
			hr--
			if hr < int(cal.MinHour) {
				hr = int(cal.MaxHour)
				borrowDay()
			}
		}
		se += int(cal.MaxSecond(uint16(y), uint8(mo), uint8(dd), uint8(hr), uint8(mi))) + 1
	}

	mi -= d.Minutes
	for mi < int(cal.MinMinute) {
		mi += 60
		hr--
	}

	hr -= d.Hours
	for hr < int(cal.MinHour) {
		hr += 24
		borrowDay()
	}

	dd -= d.Days
	for dd < int(cal.MinDay) {
		debugCarry(`day`, dd, 0)
		borrowMonth()
		dd += int(cal.MaxDaysInMonth(uint16(y), uint8(mo)))
	}

	mo -= d.Months
	for mo < int(cal.MinMonth) {
		mo += int(cal.MaxMonth)
		y = wrapYearLow(cal, y-1)
	}

	y = wrapYearLow(cal, y-d.Years)

	out := r
	out.Year = uint16(y)
	out.Month = uint8(mo)
	out.Day = uint8(dd)
	out.Hour = uint8(hr)
	out.Minute = uint8(mi)
	out.Second = uint8(se)
	out.Milli = uint16(ms)
	out.Micro = uint16(us)
	out.Nano = uint16(ns)

	// forward self-correction pass over the settled fields
	out = out.Add(Delta{})
	debugExit(out)
	return out
}

/*
ToUTC returns the receiver normalized to UTC by applying its own
offset in reverse. Instances already in UTC return unchanged.
*/
func (r CivilDateTime) ToUTC() CivilDateTime {
	if r.Zone.IsUTC {
		return r
	}
	debugZone(r.Zone, `to UTC`)

	d := Delta{Hours: int(r.Zone.Hour), Minutes: int(r.Zone.Minute)}
	var out CivilDateTime
	if r.Zone.Sign >= 0 {
		out = r.Sub(d)
	} else {
		out = r.Add(d)
	}
	out.Zone = UTC
	return out
}

/*
FromUTC returns the receiver, presumed to be in UTC, converted into
the input offset. The target zone's cumulative leap seconds are
applied before the new offset attaches, so FromUTC is not the exact
additive inverse of [CivilDateTime.ToUTC] whenever that count is
nonzero.
*/
func (r CivilDateTime) FromUTC(tz Offset) CivilDateTime {
	if tz.IsUTC {
		out := r
		out.Zone = UTC
		return out
	}
	debugZone(tz, `from UTC`)

	d := Delta{Hours: int(tz.Hour), Minutes: int(tz.Minute)}
	var out CivilDateTime
	if tz.Sign >= 0 {
		out = r.Add(d)
	} else {
		out = r.Sub(d)
	}

	out = out.Add(Delta{Seconds: int(out.Cal.LeapSecsSinceEpoch(out.Year, out.Month, out.Day))})
	out.Zone = tz
	return out
}

func (r CivilDateTime) hashFields() HashFields {
	return HashFields{
		Year:   r.Year,
		Month:  r.Month,
		Day:    r.Day,
		Hour:   r.Hour,
		Minute: r.Minute,
		Second: r.Second,
		Milli:  r.Milli,
		Micro:  r.Micro,
	}
}

/*
Hash64 returns the 64-bit packed hash of the receiver's fields under
its calendar variant. The nanosecond field is below 64-bit layout
resolution and does not participate.
*/
func (r CivilDateTime) Hash64() uint64 {
	return EncodeHash[uint64](r.Cal.Variant(), r.hashFields())
}

/*
Equal returns a Boolean value indicative of hash equality between the
receiver and o. Operands bearing differing offsets are UTC-normalized
prior to comparison; two civil values naming the same absolute
instant through different offsets therefore compare equal.
*/
func (r CivilDateTime) Equal(o CivilDateTime) bool {
	if !r.Zone.Equal(o.Zone) {
		return r.ToUTC().Hash64() == o.ToUTC().Hash64()
	}
	return r.Hash64() == o.Hash64()
}

/*
Compare returns -1, 0 or 1 per the chronological order of the
receiver and o, normalizing offsets in the manner of
[CivilDateTime.Equal]. Field order within the hash layout is
most-significant-first, so numeric hash order is chronological
order.
*/
func (r CivilDateTime) Compare(o CivilDateTime) int {
	a, b := r, o
	if !a.Zone.Equal(b.Zone) {
		a, b = a.ToUTC(), b.ToUTC()
	}

	ha, hb := a.Hash64(), b.Hash64()
	switch {
	case ha < hb:
		return -1
	case ha > hb:
		return 1
	}
	return 0
}

/*
fieldCompare orders a and b by raw field value, year through
nanosecond, without offset normalization.
*/
func fieldCompare(a, b CivilDateTime) int {
	av := [9]uint32{uint32(a.Year), uint32(a.Month), uint32(a.Day), uint32(a.Hour),
		uint32(a.Minute), uint32(a.Second), uint32(a.Milli), uint32(a.Micro), uint32(a.Nano)}
	bv := [9]uint32{uint32(b.Year), uint32(b.Month), uint32(b.Day), uint32(b.Hour),
		uint32(b.Minute), uint32(b.Second), uint32(b.Milli), uint32(b.Micro), uint32(b.Nano)}

	for i := range av {
		switch {
		case av[i] < bv[i]:
			return -1
		case av[i] > bv[i]:
			return 1
		}
	}
	return 0
}

/*
deltaYearWindow bounds the year gap a uint64 nanosecond counter can
express (~584 years, held back to 580 for slack below the wrap).
*/
const deltaYearWindow = 580

/*
DeltaResult carries the outcome of [CivilDateTime.DeltaS] and
[CivilDateTime.DeltaNS]. Sign is +1 when the receiver is at or after
the operand, else -1. OverflowYears is nonzero only when the true
year gap exceeded the representable nanosecond window; the counters
then cover the residual gap after OverflowYears whole years were set
aside.
*/
type DeltaResult struct {
	Sign          int8
	Seconds       uint64
	Nanos         uint64
	OverflowYears uint16
}

func (r CivilDateTime) deltaPrep(o CivilDateTime) (late, early CivilDateTime, sign int8) {
	late, early, sign = r, o, 1
	if !late.Zone.Equal(early.Zone) {
		late, early = late.ToUTC(), early.ToUTC()
	}
	if fieldCompare(late, early) < 0 {
		late, early = early, late
		sign = -1
	}
	return
}

/*
DeltaS returns the whole-second separation of the receiver and o,
normalizing offsets when they differ and re-anchoring both operands
to a synthetic calendar at the earlier year.
*/
func (r CivilDateTime) DeltaS(o CivilDateTime) DeltaResult {
	late, early, sign := r.deltaPrep(o)

	synth := late.Cal
	synth.MinYear = early.Year

	s := synth.SecondsSinceEpoch(late.Year, late.Month, late.Day, late.Hour, late.Minute, late.Second) -
		synth.SecondsSinceEpoch(early.Year, early.Month, early.Day, early.Hour, early.Minute, early.Second)
	return DeltaResult{Sign: sign, Seconds: s}
}

/*
DeltaNS returns the nanosecond separation of the receiver and o in
the manner of [CivilDateTime.DeltaS]. When the true year gap exceeds
the ~580-year nanosecond window, whole years beyond the window are
returned through OverflowYears rather than wrapped.
*/
func (r CivilDateTime) DeltaNS(o CivilDateTime) DeltaResult {
	late, early, sign := r.deltaPrep(o)

	synth := late.Cal
	synth.MinYear = early.Year

	var over uint16
	if gap := late.Year - early.Year; gap > deltaYearWindow {
		over = gap - deltaYearWindow
		late.Year -= over
	}

	n := synth.NSecondsSinceEpoch(late.Year, late.Month, late.Day, late.Hour, late.Minute, late.Second, late.Milli, late.Micro, late.Nano) -
		synth.NSecondsSinceEpoch(early.Year, early.Month, early.Day, early.Hour, early.Minute, early.Second, early.Milli, early.Micro, early.Nano)
	return DeltaResult{Sign: sign, Nanos: n, OverflowYears: over}
}

/*
DayOfWeek returns the weekday ordinal of the receiver date, 0=Monday
through 6=Sunday.
*/
func (r CivilDateTime) DayOfWeek() uint8 {
	return r.Cal.DayOfWeek(r.Year, r.Month, r.Day)
}

/*
Cast returns the receiver instance cast as an instance of
[time.Time]. Leap second fields (second=60) are beyond [time.Time]
range and will normalize per stdlib rules.
*/
func (r CivilDateTime) Cast() time.Time {
	secs := (int(r.Zone.Hour)*3600 + int(r.Zone.Minute)*60) * int(r.Zone.Sign)
	loc := time.UTC
	if !r.Zone.IsUTC && secs != 0 {
		loc = time.FixedZone(r.Zone.String(), secs)
	}

	nanos := int(r.Milli)*1_000_000 + int(r.Micro)*1_000 + int(r.Nano)
	return time.Date(int(r.Year), time.Month(r.Month), int(r.Day),
		int(r.Hour), int(r.Minute), int(r.Second), nanos, loc)
}

/*
String returns the extended ISO-8601 rendition of the receiver with
its offset designator appended.
*/
func (r CivilDateTime) String() string {
	return IsoDateTimeExtendedTZD.Format(r)
}
