package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLit(t *testing.T) {
	assert.Equal(t, Lit(4), NewLit(2, false))
	assert.Equal(t, Lit(5), NewLit(2, true))
}

func TestLitSign(t *testing.T) {
	assert.False(t, NewLit(3, false).Sign())
	assert.True(t, NewLit(3, true).Sign())
}

func TestLitFlip(t *testing.T) {
	p := NewLit(7, false)
	assert.Equal(t, NewLit(7, true), p.Flip())
	assert.Equal(t, p, p.Flip().Flip())
}

func TestLitVar(t *testing.T) {
	assert.Equal(t, Var(9), NewLit(9, false).Var())
	assert.Equal(t, Var(9), NewLit(9, true).Var())
}

func TestLitInt(t *testing.T) {
	assert.Equal(t, 10, NewLit(9, false).Int())
	assert.Equal(t, -10, NewLit(9, true).Int())
}

func TestValueLit(t *testing.T) {
	s := NewSolver()
	v := s.NewVar()

	assert.Equal(t, LitBoolUndef, s.ValueLit(NewLit(v, false)))

	s.Assigns[v] = LitBoolTrue
	assert.Equal(t, LitBoolTrue, s.ValueLit(NewLit(v, false)))
	assert.Equal(t, LitBoolFalse, s.ValueLit(NewLit(v, true)))

	s.Assigns[v] = LitBoolFalse
	assert.Equal(t, LitBoolFalse, s.ValueLit(NewLit(v, false)))
	assert.Equal(t, LitBoolTrue, s.ValueLit(NewLit(v, true)))
}
