package civiltime

/*
evt.go contains EventType constants which are (only) used for
debugging when this package was built or run with the
"-tags civil_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags civil_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter EventType = 1 << iota //  1: Called-function begin
	EventExit                        //  2: Called function exit
	EventCarry                       //  4: Field carry/borrow propagation
	EventCodec                       //  8: Hash and ISO-8601 codec ops
	EventZone                        // 16: UTC conversion and offset resolution
	EventParse                       // 32: Bulletin and designator parsing
	_                                // 64: unassigned
)
