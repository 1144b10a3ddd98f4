package civiltime

/*
constr.go contains constraint and constraint group components which
allow opt-in validation to be layered over the non-validating
arithmetic core.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to
enforce the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are added (and, thus, evaluated) in the order in which they
are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint wraps the provided get/check closure pair into a
[Constraint] applicable to any derived type T.
*/
func LiftConstraint[T, E any](get func(T) E, check Constraint[E]) Constraint[T] {
	return func(x T) error {
		return check(get(x))
	}
}

/*
RangeConstraint returns a [Constraint] enforcing lo ≤ x ≤ hi upon any
ordered numeric through the supplied accessor.
*/
func RangeConstraint[T any, N constraints.Integer](get func(T) N, lo, hi N, oob error) Constraint[T] {
	return func(x T) (err error) {
		if n := get(x); n < lo || hi < n {
			err = oob
		}
		return
	}
}
