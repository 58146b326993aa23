// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), safe accessors & structural edits.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support the structural edits kernels rely on (append/remove rows,
//     insert/remove columns) while keeping every row exactly Cols() long.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see ops.go): operate on the flat data slice directly.
//   - An empty matrix (0 rows) always reports Cols()==0 and adopts the length of its first appended row.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     AppendRow: amortized O(c); RemoveRow/InsertColumn/RemoveColumn: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxRow          = "Row"
	ctxSetRow       = "SetRow"
	ctxAppendRow    = "AppendRow"
	ctxRemoveRow    = "RemoveRow"
	ctxInsertColumn = "InsertColumn"
	ctxRemoveColumn = "RemoveColumn"
	ctxFromRows     = "NewDenseFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); c is 0 whenever r is 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: normalize cols to 0 when rows==0 (an empty matrix has no row to measure).
//   - Stage 3: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - 0×0 is legal: kernels start from an empty smoothing base.
//   - No panics on user errors; returns sentinel errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if rows == 0 {
		cols = 0
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from row vectors, copying their values.
// Every row must have the length of rows[0]; otherwise ErrDimensionMismatch
// (tagged with the offending row index) is returned and nothing is built.
// Complexity: O(r*c).
func NewDenseFromRows(rows []Vector) (*Dense, error) {
	m := &Dense{}
	for i, row := range rows {
		if err := m.AppendRow(row); err != nil {
			return nil, denseErrorf(ctxFromRows, i, len(row), ErrDimensionMismatch)
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone for package internals.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Copy returns a deep copy typed as *Dense.
func (m *Dense) Copy() *Dense { return m.clone() }

// Row returns a copy of row i.
// Errors: ErrOutOfRange for an invalid row index.
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make(Vector, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with v.
// Errors: ErrOutOfRange for an invalid row; ErrDimensionMismatch when len(v) != Cols().
func (m *Dense) SetRow(i int, v Vector) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(v) != m.c {
		return denseErrorf(ctxSetRow, i, len(v), ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// AppendRow appends a copy of v as the last row.
// MAIN DESCRIPTION:
//   - Shape-validated row append; the only way rows grow.
//
// Implementation:
//   - Stage 1: an empty matrix adopts len(v) as its column count.
//   - Stage 2: otherwise require len(v) == Cols() (ErrDimensionMismatch).
//   - Stage 3: extend the flat buffer.
//
// Complexity:
//   - Amortized O(c).
func (m *Dense) AppendRow(v Vector) error {
	if m.r == 0 {
		m.c = len(v)
	} else if len(v) != m.c {
		return denseErrorf(ctxAppendRow, m.r, len(v), ErrDimensionMismatch)
	}
	m.data = append(m.data, v...)
	m.r++

	return nil
}

// RemoveRow deletes row i. Removing the last remaining row resets Cols() to 0.
// Errors: ErrOutOfRange for an invalid index.
// Complexity: O(r*c) (tail shift).
func (m *Dense) RemoveRow(i int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxRemoveRow, i, 0, ErrOutOfRange)
	}
	m.data = append(m.data[:i*m.c], m.data[(i+1)*m.c:]...)
	m.r--
	if m.r == 0 {
		m.c = 0
		m.data = m.data[:0]
	}

	return nil
}

// InsertColumn inserts a zero column before index j (0 ≤ j ≤ Cols()).
// On an empty matrix it is a no-op: there is no row to widen.
// Errors: ErrOutOfRange for an invalid position.
// Complexity: O(r*c), one fresh buffer.
func (m *Dense) InsertColumn(j int) error {
	if j < 0 || j > m.c {
		return denseErrorf(ctxInsertColumn, 0, j, ErrOutOfRange)
	}
	if m.r == 0 {
		return nil
	}
	nc := m.c + 1
	buf := make([]float64, m.r*nc)
	var i, src, dst int
	for i = 0; i < m.r; i++ {
		src, dst = i*m.c, i*nc
		copy(buf[dst:dst+j], m.data[src:src+j])
		copy(buf[dst+j+1:dst+nc], m.data[src+j:src+m.c])
	}
	m.data, m.c = buf, nc

	return nil
}

// RemoveColumn deletes column j from every row.
// Errors: ErrOutOfRange for an invalid index.
// Complexity: O(r*c), one fresh buffer.
func (m *Dense) RemoveColumn(j int) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxRemoveColumn, 0, j, ErrOutOfRange)
	}
	nc := m.c - 1
	buf := make([]float64, m.r*nc)
	var i, src, dst int
	for i = 0; i < m.r; i++ {
		src, dst = i*m.c, i*nc
		copy(buf[dst:dst+j], m.data[src:src+j])
		copy(buf[dst+j:dst+nc], m.data[src+j+1:src+m.c])
	}
	m.data, m.c = buf, nc

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
