package batch

import (
	"github.com/quantralabs/quantra/models"
)

// Iterator exposes zero-copy, index-based access over a set of ArrayLike
// inputs resolved to one common length. No broadcast buffers are
// materialized; length-1 inputs are repeated on read.
type Iterator struct {
	inputs []ArrayLike
	n      int
}

// Broadcast resolves the common iteration length: the maximum of all input
// lengths greater than one. Two inputs with differing lengths both greater
// than one cannot be reconciled and abort with a ShapeMismatchError before
// any element is processed. Any length-0 input makes the result empty.
func Broadcast(inputs ...ArrayLike) (*Iterator, error) {
	n := 1
	empty := false
	for _, in := range inputs {
		switch l := in.Len(); {
		case l == 0:
			empty = true
		case l == 1:
			// broadcasts against anything
		case n == 1:
			n = l
		case l != n:
			return nil, &models.ShapeMismatchError{Length: n, Conflicting: l}
		}
	}
	if empty {
		n = 0
	}
	return &Iterator{inputs: inputs, n: n}, nil
}

func (it *Iterator) Len() int {
	return it.n
}

// At reads input j at broadcast index i.
func (it *Iterator) At(j, i int) float64 {
	return it.inputs[j].At(i)
}

// Inputs returns how many inputs the iterator broadcasts over.
func (it *Iterator) Inputs() int {
	return len(it.inputs)
}
