package linalg

import (
	"fmt"

	"github.com/exfinen/zksnark-toolkit/field"
)

// SparseMatrix is a mapping from row index to SparseVector, all of equal
// Width. Rows absent from the map are logically all-zero.
type SparseMatrix struct {
	f      *field.Field
	Width  int
	Height int
	rows   map[int]*SparseVector
}

// NewSparseMatrix returns an all-zero width x height matrix.
func NewSparseMatrix(f *field.Field, width, height int) *SparseMatrix {
	if width <= 0 || height <= 0 {
		panic("linalg: matrix width and height must be greater than 0")
	}
	return &SparseMatrix{f: f, Width: width, Height: height, rows: make(map[int]*SparseVector)}
}

// NewSparseMatrixFromRows builds a matrix whose rows are the given vectors,
// normalizing away any all-zero rows. All rows must share the same size.
func NewSparseMatrixFromRows(f *field.Field, rows []*SparseVector) *SparseMatrix {
	if len(rows) == 0 {
		panic("linalg: cannot build matrix from empty row list")
	}
	width := rows[0].Size
	for i, r := range rows {
		if r.Size != width {
			panic(fmt.Sprintf("linalg: different row sizes found; size is %d at 0, but %d at %d", width, r.Size, i))
		}
	}
	m := NewSparseMatrix(f, width, len(rows))
	for y, row := range rows {
		for _, x := range row.Indices() {
			m.Set(x, y, row.Get(x))
		}
	}
	return m.Normalize()
}

func (m *SparseMatrix) checkRange(x, y int) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		panic(fmt.Sprintf("linalg: for %dx%d matrix, (%d, %d) is out of range", m.Width, m.Height, x, y))
	}
}

// Set stores v at (x, y).
func (m *SparseMatrix) Set(x, y int, v field.Elem) {
	m.checkRange(x, y)
	if v.IsZero() {
		return
	}
	row, ok := m.rows[y]
	if !ok {
		row = NewSparseVector(m.f, m.Width)
		m.rows[y] = row
	}
	row.Set(x, v)
}

// Get returns the element at (x, y), or zero if unset.
func (m *SparseMatrix) Get(x, y int) field.Elem {
	m.checkRange(x, y)
	row, ok := m.rows[y]
	if !ok {
		return m.f.Zero()
	}
	return row.Get(x)
}

// GetRow returns a copy of row y.
func (m *SparseMatrix) GetRow(y int) *SparseVector {
	if y < 0 || y >= m.Height {
		panic(fmt.Sprintf("linalg: row %d is out of range for height %d", y, m.Height))
	}
	out := NewSparseVector(m.f, m.Width)
	row, ok := m.rows[y]
	if !ok {
		return out
	}
	for _, x := range row.Indices() {
		out.Set(x, row.Get(x))
	}
	return out
}

// GetColumn returns column x as a Height-sized vector.
func (m *SparseMatrix) GetColumn(x int) *SparseVector {
	if x < 0 || x >= m.Width {
		panic(fmt.Sprintf("linalg: column %d is out of range for width %d", x, m.Width))
	}
	out := NewSparseVector(m.f, m.Height)
	for y, row := range m.rows {
		v := row.Get(x)
		if !v.IsZero() {
			out.Set(y, v)
		}
	}
	return out
}

// Transpose returns the height x width transpose of m.
func (m *SparseMatrix) Transpose() *SparseMatrix {
	out := NewSparseMatrix(m.f, m.Height, m.Width)
	for y, row := range m.rows {
		for _, x := range row.Indices() {
			out.Set(y, x, row.Get(x))
		}
	}
	return out
}

// Normalize returns a copy of m with all-zero rows removed from the
// underlying map (they already read as zero; this only tidies iteration).
func (m *SparseMatrix) Normalize() *SparseMatrix {
	out := NewSparseMatrix(m.f, m.Width, m.Height)
	for y, row := range m.rows {
		if !row.IsEmpty() {
			out.rows[y] = row
		}
	}
	return out
}

// RowTransform applies transform to every row (materializing absent rows as
// zero vectors first) and returns the resulting matrix.
func (m *SparseMatrix) RowTransform(transform func(*SparseVector) *SparseVector) *SparseMatrix {
	out := NewSparseMatrix(m.f, m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		in := m.GetRow(y)
		res := transform(in)
		for x := 0; x < m.Width; x++ {
			out.Set(x, y, res.Get(x))
		}
	}
	return out
}

// MultiplyColumn scales each row y by col[y], returning the resulting
// matrix. col must have size equal to m's height.
func (m *SparseMatrix) MultiplyColumn(col *SparseVector) *SparseMatrix {
	if col.Size != m.Height {
		panic(fmt.Sprintf("linalg: column size is expected to be %d, but got %d", m.Height, col.Size))
	}
	out := NewSparseMatrix(m.f, m.Width, m.Height)
	for y := 0; y < col.Size; y++ {
		multiplier := col.Get(y)
		for x := 0; x < m.Width; x++ {
			out.Set(x, y, m.Get(x, y).Mul(multiplier))
		}
	}
	return out
}

// FlattenRows sums all rows into a single Width-sized vector.
func (m *SparseMatrix) FlattenRows() *SparseVector {
	out := NewSparseVector(m.f, m.Width)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out.Set(x, out.Get(x).Add(m.Get(x, y)))
		}
	}
	return out
}

// Mul returns the matrix product m * o. m.Width must equal o.Height.
func (m *SparseMatrix) Mul(o *SparseMatrix) *SparseMatrix {
	if m.Width != o.Height {
		panic(fmt.Sprintf("linalg: can only multiply matrix with height %d, but rhs height is %d", m.Width, o.Height))
	}
	out := NewSparseMatrix(m.f, o.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		lhs := m.GetRow(y)
		for x := 0; x < o.Width; x++ {
			rhs := o.GetColumn(x)
			prod := lhs.Hadamard(rhs)
			if prod.IsEmpty() {
				continue
			}
			out.Set(x, y, prod.Sum())
		}
	}
	return out.Normalize()
}

// Equal reports equality by logical content.
func (m *SparseMatrix) Equal(o *SparseMatrix) bool {
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	for y, row := range m.rows {
		if !row.Equal(o.GetRow(y)) {
			return false
		}
	}
	for y, row := range o.rows {
		if !row.Equal(m.GetRow(y)) {
			return false
		}
	}
	return true
}

// PrettyPrint renders the matrix row by row.
func (m *SparseMatrix) PrettyPrint() string {
	s := ""
	for y := 0; y < m.Height; y++ {
		s += m.GetRow(y).PrettyPrint() + "\n"
	}
	return s
}
