// Package linalg implements the sparse linear-algebra containers the
// arithmetization pipeline builds its constraint systems out of: a
// SparseVector mapping index -> non-zero field.Elem, and a SparseMatrix of
// equal-width SparseVector rows. Both are grounded on
// _examples/original_source/src/snarks/sparse_vec.rs and
// _examples/original_source/src/building_block/field/sparse_matrix.rs, with
// the field-element-valued index/size of the Rust source replaced by plain
// ints: indices here are witness/row/column positions, not field values.
package linalg

import (
	"fmt"

	"github.com/exfinen/zksnark-toolkit/field"
)

// SparseVector has a logical Size and a map from index in [0, Size) to
// non-zero elements. Writing zero is a no-op that also clears any existing
// entry; absent indices read as zero.
type SparseVector struct {
	f     *field.Field
	Size  int
	elems map[int]field.Elem
}

// NewSparseVector returns an all-zero vector of the given size. size must be
// positive.
func NewSparseVector(f *field.Field, size int) *SparseVector {
	if size <= 0 {
		panic("linalg: sparse vector size must be greater than 0")
	}
	return &SparseVector{f: f, Size: size, elems: make(map[int]field.Elem)}
}

// NewSparseVectorFromSlice builds a vector whose i-th entry is elems[i].
func NewSparseVectorFromSlice(f *field.Field, elems []field.Elem) *SparseVector {
	if len(elems) == 0 {
		panic("linalg: cannot build vector from empty element list")
	}
	v := NewSparseVector(f, len(elems))
	for i, e := range elems {
		v.Set(i, e)
	}
	return v
}

func (v *SparseVector) checkRange(i int) {
	if i < 0 || i >= v.Size {
		panic(fmt.Sprintf("linalg: index %d is out of range for size %d", i, v.Size))
	}
}

// Set stores n at index i, or clears i if n is zero.
func (v *SparseVector) Set(i int, n field.Elem) {
	v.checkRange(i)
	if n.IsZero() {
		delete(v.elems, i)
		return
	}
	v.elems[i] = n
}

// Get returns the element at index i, or zero if unset.
func (v *SparseVector) Get(i int) field.Elem {
	v.checkRange(i)
	if e, ok := v.elems[i]; ok {
		return e
	}
	return v.f.Zero()
}

// Indices returns the indices holding a non-zero value, in no particular
// order.
func (v *SparseVector) Indices() []int {
	out := make([]int, 0, len(v.elems))
	for i := range v.elems {
		out = append(out, i)
	}
	return out
}

// IsEmpty reports whether the vector has no non-zero entries.
func (v *SparseVector) IsEmpty() bool {
	return len(v.elems) == 0
}

// Sum adds every stored non-zero value. Panics if the vector is empty, since
// there would be no field to anchor a zero result to.
func (v *SparseVector) Sum() field.Elem {
	if len(v.elems) == 0 {
		panic("linalg: cannot sum an empty sparse vector")
	}
	var sum field.Elem
	first := true
	for _, e := range v.elems {
		if first {
			sum = e
			first = false
			continue
		}
		sum = sum.Add(e)
	}
	return sum
}

// Equal reports equality by logical content: same size, same non-zero
// entries.
func (v *SparseVector) Equal(o *SparseVector) bool {
	if v.Size != o.Size {
		return false
	}
	for i, e := range v.elems {
		if !o.Get(i).Equal(e) {
			return false
		}
	}
	for i, e := range o.elems {
		if !v.Get(i).Equal(e) {
			return false
		}
	}
	return true
}

// Hadamard returns the element-wise product of v and o. Only indices
// non-zero in both operands can contribute, so this only ever walks v's
// entries.
func (v *SparseVector) Hadamard(o *SparseVector) *SparseVector {
	if v.Size != o.Size {
		panic(fmt.Sprintf("linalg: expected size %d, got %d", v.Size, o.Size))
	}
	out := NewSparseVector(v.f, v.Size)
	for i, l := range v.elems {
		r := o.Get(i)
		if !r.IsZero() {
			out.Set(i, l.Mul(r))
		}
	}
	return out
}

// PrettyPrint renders the vector densely as "[a,b,c]", mainly for debugging.
func (v *SparseVector) PrettyPrint() string {
	s := "["
	for i := 0; i < v.Size; i++ {
		s += v.Get(i).String()
		if i < v.Size-1 {
			s += ","
		}
	}
	return s + "]"
}
