package main

import (
	"strings"
)

//Clause is a disjunction of literals. The literals at positions 0 and 1
//are the watched positions; the propagator keeps any false watched
//literal at position 1 by swapping in place.
type Clause struct {
	lits   []Lit
	learnt bool
}

func NewClause(ps []Lit, learnt bool) *Clause {
	c := Clause{
		lits:   make([]Lit, len(ps)),
		learnt: learnt,
	}
	copy(c.lits, ps)
	return &c
}

func (c *Clause) Size() int {
	return len(c.lits)
}

func (c *Clause) Learnt() bool {
	return c.learnt
}

func (c *Clause) At(i int) Lit {
	return c.lits[i]
}

func (c *Clause) String() string {
	litStrs := make([]string, 0, c.Size())
	for _, p := range c.lits {
		litStrs = append(litStrs, p.String())
	}
	return strings.Join(litStrs, " ")
}

//satisfied reports whether some literal of c is true under the current
//assignment.
func (s *Solver) satisfied(c *Clause) bool {
	for i := 0; i < c.Size(); i++ {
		if s.ValueLit(c.At(i)) == LitBoolTrue {
			return true
		}
	}
	return false
}
