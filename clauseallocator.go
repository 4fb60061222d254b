package main

import (
	"fmt"
	"math"
)

//ClauseReference is a stable handle for a clause: its index in the
//allocator's arena.
type ClauseReference uint32

const ClaRefUndef ClauseReference = math.MaxUint32

//ClauseAllocator is an append-only arena for clauses. Clauses are never
//freed or relocated for the lifetime of a solve, so a reference stays
//valid once handed out.
type ClauseAllocator struct {
	clauses []*Clause
}

func NewClauseAllocator() *ClauseAllocator {
	return &ClauseAllocator{}
}

//NewAllocate stores a new clause and returns its reference.
func (a *ClauseAllocator) NewAllocate(lits []Lit, learnt bool) ClauseReference {
	cref := ClauseReference(len(a.clauses))
	a.clauses = append(a.clauses, NewClause(lits, learnt))
	return cref
}

//GetClause returns the clause for claRef in constant time.
func (a *ClauseAllocator) GetClause(claRef ClauseReference) *Clause {
	if int(claRef) >= len(a.clauses) {
		panic(fmt.Errorf("the clause is not allocated: %d", claRef))
	}
	return a.clauses[claRef]
}

//Size returns the number of allocated clauses.
func (a *ClauseAllocator) Size() int {
	return len(a.clauses)
}
