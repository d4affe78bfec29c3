package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatseries/profile"
)

func TestTable_Basics(t *testing.T) {
	_, err := profile.NewTable(0, 3)
	assert.ErrorIs(t, err, profile.ErrEmptyGrid)

	tbl, err := profile.NewTable(2, 3)
	require.NoError(t, err)
	require.NoError(t, tbl.Set(1, 2, 4.5))
	require.NoError(t, tbl.Set(0, 0, -1))

	v, err := tbl.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = tbl.At(2, 0)
	assert.ErrorIs(t, err, profile.ErrIndexOutOfBounds)
	assert.ErrorIs(t, tbl.Set(0, -1, 1), profile.ErrIndexOutOfBounds)
	_, err = tbl.Row(5)
	assert.ErrorIs(t, err, profile.ErrIndexOutOfBounds)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	row[2] = 100
	v, _ = tbl.At(1, 2)
	assert.Equal(t, 4.5, v, "Row returns a copy")

	assert.Equal(t, "[-1, 0, 0]\n[0, 0, 4.5]\n", tbl.String())
}

func TestLinspace(t *testing.T) {
	xs, err := profile.Linspace(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	xs, err = profile.Linspace(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, xs)

	_, err = profile.Linspace(0, 1, 0)
	assert.ErrorIs(t, err, profile.ErrInvalidCount)

	pts := profile.Line(0, 0.3, 4)
	require.Len(t, pts, 4)
	assert.Equal(t, profile.Point{X: 0.3}, pts[3])
	assert.Equal(t, "(0.3, 0, 0)", pts[3].String())
}
