package civiltime

/*
tz.go implements the signed civil offset type and the lookup
collaborator through which DST-aware zones are resolved.
*/

/*
Offset implements a signed hour/minute civil offset from UTC. The
zero-valued instance is not meaningful; use [UTC] or [NewOffset].
*/
type Offset struct {
	Sign   int8 // +1 or -1
	Hour   uint8
	Minute uint8
	IsUTC  bool
}

/*
UTC is the canonical zero offset.
*/
var UTC = Offset{Sign: 1, IsUTC: true}

/*
NewOffset returns a validated instance of [Offset] alongside an error
following an attempt to interpret x, which may be an int hour count,
an [Offset], or an ISO-8601 designator string such as "+05:30",
"-0700" or "Z".
*/
func NewOffset(x any, constraints ...Constraint[Offset]) (Offset, error) {
	var off Offset
	var err error

	switch tv := x.(type) {
	case int:
		off = Offset{Sign: 1, Hour: uint8(tv)}
		if tv < 0 {
			off = Offset{Sign: -1, Hour: uint8(-tv)}
		}
	case Offset:
		off = tv
	case string:
		res := parseDesignator(tv)
		if off2, ok := res.Value(); ok {
			off = off2
		} else {
			err = zoneErrorf("malformed offset designator ", tv)
		}
	default:
		err = errorBadTypeForConstructor("Offset", x)
	}

	if err == nil {
		err = off.valid()
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Offset] = constraints
		err = group.Constrain(off)
	}

	return off, err
}

func (r Offset) valid() (err error) {
	switch {
	case r.Sign != 1 && r.Sign != -1:
		err = errorZoneSign
	case r.Hour > 23:
		err = errorZoneHourRange
	case r.Minute > 59:
		err = errorZoneMinuteRange
	}
	return
}

/*
String returns the ISO-8601 extended designator form of the receiver,
"Z" for UTC.
*/
func (r Offset) String() string {
	return r.designator(true)
}

func (r Offset) designator(extended bool) string {
	if r.IsUTC {
		return `Z`
	}

	var b digitBuf
	if r.Sign < 0 {
		b.put('-')
	} else {
		b.put('+')
	}
	b.putFixed(int(r.Hour), 2)
	if extended {
		b.put(':')
	}
	b.putFixed(int(r.Minute), 2)
	return b.string()
}

/*
Equal returns a Boolean value indicative of whether the receiver and
o resolve to the same absolute offset. All renditions of zero offset
compare equal to [UTC].
*/
func (r Offset) Equal(o Offset) bool {
	if r.Hour == 0 && r.Minute == 0 && o.Hour == 0 && o.Minute == 0 {
		return true
	}
	return r.Sign == o.Sign && r.Hour == o.Hour &&
		r.Minute == o.Minute && r.IsUTC == o.IsUTC
}

/*
parseDesignator interprets "Z", "±HH:MM" or "±HHMM". Failure is
signaled by an absent result.
*/
func parseDesignator(s string) ParseResult[Offset] {
	debugParse(s)
	if s == `Z` {
		return somePR(UTC)
	}

	var sign int8
	switch {
	case hasPfx(s, `+`):
		sign = 1
	case hasPfx(s, `-`):
		sign = -1
	default:
		return absentPR[Offset]()
	}

	var hh, mm int
	var ok1, ok2 bool
	switch len(s) {
	case 6: // ±HH:MM
		if s[3] != ':' {
			return absentPR[Offset]()
		}
		hh, ok1 = deci2(s[1], s[2])
		mm, ok2 = deci2(s[4], s[5])
	case 5: // ±HHMM
		hh, ok1 = deci2(s[1], s[2])
		mm, ok2 = deci2(s[3], s[4])
	default:
		return absentPR[Offset]()
	}

	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return absentPR[Offset]()
	}

	return somePR(Offset{Sign: sign, Hour: uint8(hh), Minute: uint8(mm)})
}

/*
OffsetResolver is qualified through any type able to resolve the
civil offset in force at a given instant. DST-aware zones vary their
answer with the input; fixed zones do not.
*/
type OffsetResolver interface {
	OffsetAt(year uint16, month, day, hour, minute uint8) Offset
}

/*
FixedZone implements the trivial [OffsetResolver] for zones whose
offset never varies.
*/
type FixedZone struct {
	Off Offset
}

/*
OffsetAt returns the fixed offset of the receiver regardless of the
input instant.
*/
func (r FixedZone) OffsetAt(_ uint16, _, _, _, _ uint8) Offset { return r.Off }
