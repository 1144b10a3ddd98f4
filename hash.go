package civiltime

/*
hash.go implements the bidirectional mapping between a date/time
field tuple and a fixed-width unsigned integer, parameterized by
target width and calendar variant.

Hash integers are a persisted interchange form. The slot tables below
are bit-stable: altering any shift or width breaks every stored hash.
*/

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

/*
HashInt is qualified by the unsigned integer types eligible to carry
a packed field hash.
*/
type HashInt interface {
	constraints.Unsigned
}

/*
HashField identifies one date/time field within a hash layout.
*/
type HashField uint8

const (
	FieldYear HashField = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMilli
	FieldMicro
)

/*
String returns the string name of the receiver field.
*/
func (r HashField) String() (s string) {
	switch r {
	case FieldYear:
		s = `year`
	case FieldMonth:
		s = `month`
	case FieldDay:
		s = `day`
	case FieldHour:
		s = `hour`
	case FieldMinute:
		s = `minute`
	case FieldSecond:
		s = `second`
	case FieldMilli:
		s = `millisecond`
	case FieldMicro:
		s = `microsecond`
	default:
		s = `<unknown field>`
	}
	return
}

/*
HashFields carries the full field tuple operated upon by
[EncodeHash] and [DecodeHash]. Fields a given width cannot represent
are ignored on encode and restored to the calendar minimum on decode.
*/
type HashFields struct {
	Year                             uint16
	Month, Day, Hour, Minute, Second uint8
	Milli, Micro                     uint16
}

/*
hashSlot binds one field to its shift position and bit width within a
layout. Slots are ordered most-significant-first so that numeric hash
order tracks chronological order.
*/
type hashSlot struct {
	field HashField
	shift uint8
	bits  uint8
}

func (r hashSlot) mask() uint64 { return 1<<r.bits - 1 }

/*
Layout tables per width. Slots exactly tile their integer width;
narrower widths carry a strict subset of fields. Field values wider
than their slot truncate silently on encode.
*/
var (
	layout8 = []hashSlot{
		{FieldDay, 3, 5},
		{FieldHour, 0, 3},
	}
	layout16 = []hashSlot{
		{FieldDay, 11, 5},
		{FieldHour, 6, 5},
		{FieldMinute, 0, 6},
	}
	layout32 = []hashSlot{
		{FieldYear, 20, 12},
		{FieldMonth, 16, 4},
		{FieldDay, 11, 5},
		{FieldHour, 6, 5},
		{FieldMinute, 0, 6},
	}
	layout64 = []hashSlot{
		{FieldYear, 48, 16},
		{FieldMonth, 44, 4},
		{FieldDay, 38, 6},
		{FieldHour, 32, 6},
		{FieldMinute, 26, 6},
		{FieldSecond, 20, 6},
		{FieldMilli, 10, 10},
		{FieldMicro, 0, 10},
	}
)

/*
hashLayout returns the slot table for the input variant and width.
Both members of the closed variant set currently share one table per
width; the variant parameter preserves the dispatch point which keeps
stored hashes calendar-scoped.
*/
func hashLayout(v CalendarVariant, width int) (slots []hashSlot) {
	switch v {
	case Gregorian, UTCFast:
		switch width {
		case 8:
			slots = layout8
		case 16:
			slots = layout16
		case 32:
			slots = layout32
		default:
			slots = layout64
		}
	}
	return
}

func hashWidth[U HashInt]() int {
	var u U
	return int(unsafe.Sizeof(u)) * 8
}

/*
EncodeHash packs the input field tuple into a U-width hash under the
input variant's layout. Fields the width does not represent are
omitted; field values exceeding their slot width truncate silently.
*/
func EncodeHash[U HashInt](v CalendarVariant, f HashFields) U {
	var out U
	for _, slot := range hashLayout(v, hashWidth[U]()) {
		out |= U((hashFieldValue(f, slot.field) & slot.mask()) << uint64(slot.shift))
	}
	return out
}

/*
DecodeHash unpacks a U-width hash into its field tuple under the
input variant's layout. Fields the width does not represent read as
the variant calendar's minimum.
*/
func DecodeHash[U HashInt](v CalendarVariant, hash U) HashFields {
	cal := NewCalendar(v)
	f := HashFields{
		Year:  cal.MinYear,
		Month: cal.MinMonth,
		Day:   cal.MinDay,
	}

	for _, slot := range hashLayout(v, hashWidth[U]()) {
		setHashFieldValue(&f, slot.field, (uint64(hash)>>uint64(slot.shift))&slot.mask())
	}
	return f
}

/*
ReplaceHashField returns the input hash with the bits of one field
masked out and re-encoded from the input value. Hashes of widths
which do not represent the field are returned unchanged.
*/
func ReplaceHashField[U HashInt](v CalendarVariant, hash U, field HashField, value uint16) U {
	for _, slot := range hashLayout(v, hashWidth[U]()) {
		if slot.field == field {
			cleared := uint64(hash) &^ (slot.mask() << uint64(slot.shift))
			return U(cleared | (uint64(value)&slot.mask())<<uint64(slot.shift))
		}
	}
	return hash
}

func hashFieldValue(f HashFields, field HashField) (v uint64) {
	switch field {
	case FieldYear:
		v = uint64(f.Year)
	case FieldMonth:
		v = uint64(f.Month)
	case FieldDay:
		v = uint64(f.Day)
	case FieldHour:
		v = uint64(f.Hour)
	case FieldMinute:
		v = uint64(f.Minute)
	case FieldSecond:
		v = uint64(f.Second)
	case FieldMilli:
		v = uint64(f.Milli)
	case FieldMicro:
		v = uint64(f.Micro)
	}
	return
}

func setHashFieldValue(f *HashFields, field HashField, v uint64) {
	switch field {
	case FieldYear:
		f.Year = uint16(v)
	case FieldMonth:
		f.Month = uint8(v)
	case FieldDay:
		f.Day = uint8(v)
	case FieldHour:
		f.Hour = uint8(v)
	case FieldMinute:
		f.Minute = uint8(v)
	case FieldSecond:
		f.Second = uint8(v)
	case FieldMilli:
		f.Milli = uint16(v)
	case FieldMicro:
		f.Micro = uint16(v)
	}
}
