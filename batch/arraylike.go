// Package batch implements the broadcasting batch engine: scalar-or-array
// inputs resolved to a common iteration length, and an adaptive
// sequential / cache-tiled / chunked-parallel execution strategy.
package batch

// ArrayLike is a tagged union over a scalar and a borrowed float64 slice.
// Array values are never copied; a length-1 array behaves like a scalar
// under broadcasting and a length-0 array makes any broadcast result empty.
type ArrayLike struct {
	values []float64
	scalar float64
	isArr  bool
}

func Scalar(v float64) ArrayLike {
	return ArrayLike{scalar: v}
}

// Array wraps vs without copying. The caller keeps ownership and must not
// mutate vs while a batch over it is running.
func Array(vs []float64) ArrayLike {
	return ArrayLike{values: vs, isArr: true}
}

func (a ArrayLike) Len() int {
	if !a.isArr {
		return 1
	}
	return len(a.values)
}

// At reads the broadcast value at index i: scalars and length-1 arrays
// repeat their sole element for every i.
func (a ArrayLike) At(i int) float64 {
	if !a.isArr {
		return a.scalar
	}
	if len(a.values) == 1 {
		return a.values[0]
	}
	return a.values[i]
}
