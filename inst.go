package civiltime

/*
inst.go implements the four fixed-width instant types, each pairing a
linear epoch-offset counter with a packed field hash at a defined
resolution: [Instant8] and [Instant16] count hours, [Instant32]
counts minutes, [Instant64] counts milliseconds.

The two representations deliberately desynchronize. Arithmetic
([Instant32.Add] et al) adjusts offset only, leaving the hash as a
construction-time snapshot; Replace adjusts hash only, leaving offset
untouched. Comparison operators consult offset, while field getters
and the ISO-8601 rendition consult the (possibly stale) hash. Only
the FromHash constructors re-synchronize the pair. Downstream callers
depend on this split for performance; it is contract, not defect.
*/

/*
Span carries the operands of fixed-width instant arithmetic. Values
convert to the instant's native unit through fixed multipliers (a
365-day year, a 24-hour day); no leap awareness exists at this layer.
*/
type Span struct {
	Years, Days, Hours, Minutes, Seconds, Millis int
}

const (
	unitHourMS   uint64 = 3_600_000
	unitMinuteMS uint64 = 60_000
	unitMilliMS  uint64 = 1
)

/*
spanTicks converts s to a count of native units of unitMS
milliseconds, truncating any remainder below the unit.
*/
func spanTicks[U HashInt](s Span, unitMS uint64) U {
	ms := ((((uint64(s.Years)*365+uint64(s.Days))*24+uint64(s.Hours))*60+
		uint64(s.Minutes))*60+uint64(s.Seconds))*1000 + uint64(s.Millis)
	return U(ms / unitMS)
}

/*
instTicks derives an epoch-offset tick count for the input fields
under the input calendar at unitMS resolution.
*/
func instTicks[U HashInt](cal Calendar, f HashFields, unitMS uint64) U {
	ms := cal.MSecondsSinceEpoch(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Milli)
	return U(ms / unitMS)
}

/*
Instant8 is the narrowest fixed-width instant: an hour-resolution
counter whose 8-bit hash carries day and (truncated) hour only.
*/
type Instant8 struct {
	offset  uint8
	hash    uint8
	variant CalendarVariant
}

/*
Instant16 is an hour-resolution instant whose 16-bit hash carries
day, hour and minute.
*/
type Instant16 struct {
	offset  uint16
	hash    uint16
	variant CalendarVariant
}

/*
Instant32 is a minute-resolution instant whose 32-bit hash carries
year through minute.
*/
type Instant32 struct {
	offset  uint32
	hash    uint32
	variant CalendarVariant
}

/*
Instant64 is a millisecond-resolution instant whose 64-bit hash
carries year through microsecond.
*/
type Instant64 struct {
	offset  uint64
	hash    uint64
	variant CalendarVariant
}

/*
NewInstant8 returns an instance of [Instant8] anchored at the input
fields, computing offset and hash independently.
*/
func NewInstant8(v CalendarVariant, day, hour int) Instant8 {
	cal := NewCalendar(v)
	f := HashFields{Year: cal.MinYear, Month: cal.MinMonth, Day: uint8(day), Hour: uint8(hour)}
	return Instant8{
		offset:  instTicks[uint8](cal, f, unitHourMS),
		hash:    EncodeHash[uint8](v, f),
		variant: v,
	}
}

/*
NewInstant16 returns an instance of [Instant16] anchored at the input
fields, computing offset and hash independently.
*/
func NewInstant16(v CalendarVariant, day, hour, minute int) Instant16 {
	cal := NewCalendar(v)
	f := HashFields{Year: cal.MinYear, Month: cal.MinMonth,
		Day: uint8(day), Hour: uint8(hour), Minute: uint8(minute)}
	return Instant16{
		offset:  instTicks[uint16](cal, f, unitHourMS),
		hash:    EncodeHash[uint16](v, f),
		variant: v,
	}
}

/*
NewInstant32 returns an instance of [Instant32] anchored at the input
fields, computing offset and hash independently.
*/
func NewInstant32(v CalendarVariant, year, month, day, hour, minute int) Instant32 {
	cal := NewCalendar(v)
	f := HashFields{Year: uint16(year), Month: uint8(month),
		Day: uint8(day), Hour: uint8(hour), Minute: uint8(minute)}
	return Instant32{
		offset:  instTicks[uint32](cal, f, unitMinuteMS),
		hash:    EncodeHash[uint32](v, f),
		variant: v,
	}
}

/*
NewInstant64 returns an instance of [Instant64] anchored at the input
fields, computing offset and hash independently.
*/
func NewInstant64(v CalendarVariant, year, month, day, hour, minute, second, milli int) Instant64 {
	cal := NewCalendar(v)
	f := HashFields{Year: uint16(year), Month: uint8(month),
		Day: uint8(day), Hour: uint8(hour), Minute: uint8(minute),
		Second: uint8(second), Milli: uint16(milli)}
	return Instant64{
		offset:  instTicks[uint64](cal, f, unitMilliMS),
		hash:    EncodeHash[uint64](v, f),
		variant: v,
	}
}

/*
Instant8FromHash reconstructs both representations of an [Instant8]
from a packed hash, re-synchronizing offset with hash.
*/
func Instant8FromHash(v CalendarVariant, hash uint8) Instant8 {
	f := DecodeHash(v, hash)
	return Instant8{
		offset:  instTicks[uint8](NewCalendar(v), f, unitHourMS),
		hash:    hash,
		variant: v,
	}
}

/*
Instant16FromHash reconstructs both representations of an [Instant16]
from a packed hash, re-synchronizing offset with hash.
*/
func Instant16FromHash(v CalendarVariant, hash uint16) Instant16 {
	f := DecodeHash(v, hash)
	return Instant16{
		offset:  instTicks[uint16](NewCalendar(v), f, unitHourMS),
		hash:    hash,
		variant: v,
	}
}

/*
Instant32FromHash reconstructs both representations of an [Instant32]
from a packed hash, re-synchronizing offset with hash.
*/
func Instant32FromHash(v CalendarVariant, hash uint32) Instant32 {
	f := DecodeHash(v, hash)
	return Instant32{
		offset:  instTicks[uint32](NewCalendar(v), f, unitMinuteMS),
		hash:    hash,
		variant: v,
	}
}

/*
Instant64FromHash reconstructs both representations of an [Instant64]
from a packed hash, re-synchronizing offset with hash.
*/
func Instant64FromHash(v CalendarVariant, hash uint64) Instant64 {
	f := DecodeHash(v, hash)
	return Instant64{
		offset:  instTicks[uint64](NewCalendar(v), f, unitMilliMS),
		hash:    hash,
		variant: v,
	}
}

/*
Ticks returns the receiver's native-unit epoch offset counter.
*/
func (r Instant8) Ticks() uint8   { return r.offset }
func (r Instant16) Ticks() uint16 { return r.offset }
func (r Instant32) Ticks() uint32 { return r.offset }
func (r Instant64) Ticks() uint64 { return r.offset }

/*
Hash returns the receiver's packed field hash as last synchronized.
*/
func (r Instant8) Hash() uint8   { return r.hash }
func (r Instant16) Hash() uint16 { return r.hash }
func (r Instant32) Hash() uint32 { return r.hash }
func (r Instant64) Hash() uint64 { return r.hash }

/*
Add returns the receiver advanced by s. Only the offset counter
moves; the hash retains its prior snapshot and hash-derived getters
become stale until re-synchronized via a FromHash constructor.
*/
func (r Instant8) Add(s Span) Instant8 {
	r.offset += spanTicks[uint8](s, unitHourMS)
	return r
}

func (r Instant16) Add(s Span) Instant16 {
	r.offset += spanTicks[uint16](s, unitHourMS)
	return r
}

func (r Instant32) Add(s Span) Instant32 {
	r.offset += spanTicks[uint32](s, unitMinuteMS)
	return r
}

func (r Instant64) Add(s Span) Instant64 {
	r.offset += spanTicks[uint64](s, unitMilliMS)
	return r
}

/*
Sub returns the receiver regressed by s, adjusting offset only in
the manner of Add.
*/
func (r Instant8) Sub(s Span) Instant8 {
	r.offset -= spanTicks[uint8](s, unitHourMS)
	return r
}

func (r Instant16) Sub(s Span) Instant16 {
	r.offset -= spanTicks[uint16](s, unitHourMS)
	return r
}

func (r Instant32) Sub(s Span) Instant32 {
	r.offset -= spanTicks[uint32](s, unitMinuteMS)
	return r
}

func (r Instant64) Sub(s Span) Instant64 {
	r.offset -= spanTicks[uint64](s, unitMilliMS)
	return r
}

/*
Replace returns the receiver with one hash field re-encoded to the
input value. Only the hash moves; the offset counter retains its
prior value, diverging the two representations in the opposite
direction from Add.
*/
func (r Instant8) Replace(field HashField, value uint16) Instant8 {
	r.hash = ReplaceHashField(r.variant, r.hash, field, value)
	return r
}

func (r Instant16) Replace(field HashField, value uint16) Instant16 {
	r.hash = ReplaceHashField(r.variant, r.hash, field, value)
	return r
}

func (r Instant32) Replace(field HashField, value uint16) Instant32 {
	r.hash = ReplaceHashField(r.variant, r.hash, field, value)
	return r
}

func (r Instant64) Replace(field HashField, value uint16) Instant64 {
	r.hash = ReplaceHashField(r.variant, r.hash, field, value)
	return r
}

/*
Fields returns the field tuple decoded from the receiver hash, which
may be stale with respect to offset arithmetic.
*/
func (r Instant8) Fields() HashFields  { return DecodeHash(r.variant, r.hash) }
func (r Instant16) Fields() HashFields { return DecodeHash(r.variant, r.hash) }
func (r Instant32) Fields() HashFields { return DecodeHash(r.variant, r.hash) }
func (r Instant64) Fields() HashFields { return DecodeHash(r.variant, r.hash) }

/*
Compare returns -1, 0 or 1 per offset counter order. Comparison never
consults the hash.
*/
func (r Instant8) Compare(o Instant8) int   { return cmpTicks(r.offset, o.offset) }
func (r Instant16) Compare(o Instant16) int { return cmpTicks(r.offset, o.offset) }
func (r Instant32) Compare(o Instant32) int { return cmpTicks(r.offset, o.offset) }
func (r Instant64) Compare(o Instant64) int { return cmpTicks(r.offset, o.offset) }

/*
Less returns a Boolean value indicative of offset counter order.
*/
func (r Instant8) Less(o Instant8) bool   { return r.offset < o.offset }
func (r Instant16) Less(o Instant16) bool { return r.offset < o.offset }
func (r Instant32) Less(o Instant32) bool { return r.offset < o.offset }
func (r Instant64) Less(o Instant64) bool { return r.offset < o.offset }

/*
Equal returns a Boolean value indicative of offset counter equality;
staleness of the hash does not influence the result.
*/
func (r Instant8) Equal(o Instant8) bool   { return r.offset == o.offset }
func (r Instant16) Equal(o Instant16) bool { return r.offset == o.offset }
func (r Instant32) Equal(o Instant32) bool { return r.offset == o.offset }
func (r Instant64) Equal(o Instant64) bool { return r.offset == o.offset }

func cmpTicks[U HashInt](a, b U) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

/*
civilFromFields assembles a [CivilDateTime] over the decoded hash
fields for text serialization.
*/
func civilFromFields(v CalendarVariant, f HashFields) CivilDateTime {
	return CivilDateTime{
		Year:   f.Year,
		Month:  f.Month,
		Day:    f.Day,
		Hour:   f.Hour,
		Minute: f.Minute,
		Second: f.Second,
		Milli:  f.Milli,
		Micro:  f.Micro,
		Zone:   UTC,
		Cal:    NewCalendar(v),
	}
}

/*
ToISO renders the receiver under the input format. The rendition
reads the decoded hash, never the offset counter: following
arithmetic it reflects the stale snapshot until a FromHash
constructor re-synchronizes the pair.
*/
func (r Instant8) ToISO(f IsoFormat) string  { return f.Format(civilFromFields(r.variant, r.Fields())) }
func (r Instant16) ToISO(f IsoFormat) string { return f.Format(civilFromFields(r.variant, r.Fields())) }
func (r Instant32) ToISO(f IsoFormat) string { return f.Format(civilFromFields(r.variant, r.Fields())) }
func (r Instant64) ToISO(f IsoFormat) string { return f.Format(civilFromFields(r.variant, r.Fields())) }

/*
Instant32FromISO parses s under the input format into an [Instant32]
with both representations synchronized. Failure is signaled by an
absent result.
*/
func Instant32FromISO(f IsoFormat, s string, v CalendarVariant) ParseResult[Instant32] {
	res := f.Parse(s, v)
	dt, ok := res.Value()
	if !ok {
		return absentPR[Instant32]()
	}
	return somePR(NewInstant32(v, int(dt.Year), int(dt.Month), int(dt.Day), int(dt.Hour), int(dt.Minute)))
}

/*
Instant64FromISO parses s under the input format into an [Instant64]
with both representations synchronized. Failure is signaled by an
absent result.
*/
func Instant64FromISO(f IsoFormat, s string, v CalendarVariant) ParseResult[Instant64] {
	res := f.Parse(s, v)
	dt, ok := res.Value()
	if !ok {
		return absentPR[Instant64]()
	}
	return somePR(NewInstant64(v, int(dt.Year), int(dt.Month), int(dt.Day),
		int(dt.Hour), int(dt.Minute), int(dt.Second), int(dt.Milli)))
}
