package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorHandlesAreStable(t *testing.T) {
	a := NewClauseAllocator()

	first := a.NewAllocate([]Lit{NewLit(0, false), NewLit(1, true)}, false)
	second := a.NewAllocate([]Lit{NewLit(2, false), NewLit(3, false)}, true)

	require.Equal(t, ClauseReference(0), first)
	require.Equal(t, ClauseReference(1), second)
	assert.Equal(t, 2, a.Size())

	c := a.GetClause(first)
	assert.Equal(t, 2, c.Size())
	assert.False(t, c.Learnt())
	assert.True(t, a.GetClause(second).Learnt())

	// Handles stay valid as the arena grows.
	for i := 0; i < 1000; i++ {
		a.NewAllocate([]Lit{NewLit(Var(i), false), NewLit(Var(i+1), true)}, false)
	}
	assert.Equal(t, c, a.GetClause(first))
}

func TestAllocatorCopiesLiterals(t *testing.T) {
	a := NewClauseAllocator()
	lits := []Lit{NewLit(0, false), NewLit(1, false)}
	cref := a.NewAllocate(lits, false)

	lits[0] = NewLit(5, true)
	assert.Equal(t, NewLit(0, false), a.GetClause(cref).At(0))
}

func TestAllocatorUnknownReferencePanics(t *testing.T) {
	a := NewClauseAllocator()
	assert.Panics(t, func() { a.GetClause(ClaRefUndef) })
	assert.Panics(t, func() { a.GetClause(0) })
}

func BenchmarkNewAllocate(b *testing.B) {
	a := NewClauseAllocator()
	rng := rand.New(rand.NewSource(114514))
	for i := 0; i < b.N; i++ {
		size := 100
		lits := make([]Lit, size)
		for j := 0; j < size; j++ {
			lits[j] = NewLit(Var(j+1), rng.Int()%2 == 0)
		}
		a.NewAllocate(lits, rng.Int()%2 == 0)
	}
}
