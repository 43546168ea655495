// Package matrix - core storage: the Matrix interface and the Dense
// row-major implementation.
package matrix

// Matrix is the minimal surface the evo package consumes.
// Implementations must be bounds-safe: At/Set return ErrOutOfRange
// instead of panicking.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
	// Set assigns v at (i, j) or returns ErrOutOfRange.
	Set(i, j int, v float64) error
	// Clone returns an independent deep copy.
	Clone() Matrix
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order
// (offset = i*c + j).
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Compile-time interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Errors: ErrBadShape when rows ≤ 0 or cols ≤ 0.
//
// Complexity: O(r·c) time and space.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (i, j) or reports ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return i*m.c + j, nil
}

// At retrieves the element at (i, j).
//
// Errors: ErrOutOfRange on invalid indices.
//
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (i, j).
//
// Errors: ErrOutOfRange on invalid indices.
//
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns an independent deep copy of the matrix.
// Complexity: O(r·c).
func (m *Dense) Clone() Matrix {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}
