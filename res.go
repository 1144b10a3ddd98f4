package civiltime

/*
res.go contains the ParseResult optional wrapper through which the
ISO-8601 slicing core signals parse failure without errors.
*/

/*
ParseResult encapsulates the outcome of a parsing operation which is
forbidden from raising errors on its hot path. An absent instance
indicates the input could not be interpreted; callers must check
[ParseResult.Present] (or the boolean return of [ParseResult.Value])
before use.
*/
type ParseResult[T any] struct {
	value T
	ok    bool
}

/*
somePR returns a present [ParseResult] bearing v.
*/
func somePR[T any](v T) ParseResult[T] { return ParseResult[T]{value: v, ok: true} }

/*
absentPR returns an absent [ParseResult].
*/
func absentPR[T any]() ParseResult[T] { return ParseResult[T]{} }

/*
Present returns a Boolean value indicative of whether the receiver
bears a parsed value.
*/
func (r ParseResult[T]) Present() bool { return r.ok }

/*
Value returns the parsed value alongside a presence Boolean. When the
Boolean is false, the value is the zero value of T and must not be
used.
*/
func (r ParseResult[T]) Value() (T, bool) { return r.value, r.ok }

/*
Or returns the parsed value, or alt when the receiver is absent.
*/
func (r ParseResult[T]) Or(alt T) T {
	if !r.ok {
		return alt
	}
	return r.value
}
