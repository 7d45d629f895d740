package library

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenreTable_InternSameName(t *testing.T) {
	gt := NewGenreTable()

	a := gt.Intern("Fantasy")
	b := gt.Intern("Fantasy")

	require.Same(t, a, b)
	require.Equal(t, "Fantasy", a.Name())
}

func TestGenreTable_InternDifferentNames(t *testing.T) {
	gt := NewGenreTable()

	require.NotSame(t, gt.Intern("Fantasy"), gt.Intern("Fiction"))
}

func TestGenreTable_Count(t *testing.T) {
	gt := NewGenreTable()
	gt.Intern("Fantasy")
	gt.Intern("Fiction")
	gt.Intern("Fantasy")

	require.Equal(t, 2, gt.Count())
}

func TestGenreTable_EmptyName(t *testing.T) {
	gt := NewGenreTable()

	g := gt.Intern("")
	require.Same(t, g, gt.Intern(""))
	require.Equal(t, "", g.Name())
	require.Equal(t, 1, gt.Count())
}
