// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"strings"
)

// Point is a sampling position. Coordinates beyond the node dimension are
// ignored.
type Point struct {
	X, Y, Z float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Table is a row-major grid of samples: row i is Times[i], column j is
// Points[j].
type Table struct {
	r, c int       // rows (times) and columns (points)
	data []float64 // flat backing storage, length == r*c
}

// NewTable allocates a zeroed rows×cols Table.
func NewTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewTable(%d,%d): %w", rows, cols, ErrEmptyGrid)
	}

	return &Table{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of sampled times.
func (t *Table) Rows() int { return t.r }

// Cols returns the number of sampled points.
func (t *Table) Cols() int { return t.c }

func (t *Table) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return 0, fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}

	return row*t.c + col, nil
}

// At returns the sample at (row, col).
func (t *Table) At(row, col int) (float64, error) {
	idx, err := t.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set stores v at (row, col).
func (t *Table) Set(row, col int, v float64) error {
	idx, err := t.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.r {
		return nil, fmt.Errorf("Table.Row(%d): %w", i, ErrIndexOutOfBounds)
	}
	out := make([]float64, t.c)
	copy(out, t.data[i*t.c:(i+1)*t.c])

	return out, nil
}

// String renders one bracketed row per line.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < t.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", t.data[i*t.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Linspace returns count evenly spaced values from `from` to `to`
// inclusive. A count of 1 yields {from}.
func Linspace(from, to float64, count int) ([]float64, error) {
	if count <= 0 {
		return nil, fmt.Errorf("Linspace(%d): %w", count, ErrInvalidCount)
	}
	out := make([]float64, count)
	if count == 1 {
		out[0] = from

		return out, nil
	}
	step := (to - from) / float64(count-1)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	out[count-1] = to

	return out, nil
}

// Line returns count points along the x axis between from and to, with
// y = z = 0. It panics on count <= 0.
func Line(from, to float64, count int) []Point {
	xs, err := Linspace(from, to, count)
	if err != nil {
		panic(err)
	}
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i].X = x
	}

	return pts
}
