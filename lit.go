package main

import "fmt"

//Var is a 0-based variable index. The DIMACS view of the same variable
//is 1-based.
type Var int

const VarUndef Var = -1

//LitBool is the three-valued state of a variable or literal under the
//current assignment.
type LitBool int

const (
	LitBoolTrue  LitBool = 0
	LitBoolFalse LitBool = 1
	LitBoolUndef LitBool = 2
)

//Lit is a literal encoded as 2*var+sign, so a literal and its negation
//are adjacent and flipping is a single XOR. An odd value is a negative
//literal (e.g. not x2 -> 3).
type Lit int

const LitUndef Lit = -1

//NewLit returns the literal for x; a negative literal when sign is true.
func NewLit(x Var, sign bool) Lit {
	y := 2 * int(x)
	if sign {
		y++
	}
	return Lit(y)
}

//Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

//Flip negates the literal.
func (l Lit) Flip() Lit {
	return l ^ 1
}

//Var returns the literal's variable.
func (l Lit) Var() Var {
	return Var(l >> 1)
}

//Int returns the DIMACS integer form of the literal.
func (l Lit) Int() int {
	if l.Sign() {
		return -int(l.Var()) - 1
	}
	return int(l.Var()) + 1
}

func (l Lit) String() string {
	if l == LitUndef {
		return "undef"
	}
	return fmt.Sprintf("%d", l.Int())
}

//ValueVar returns the current assignment of a variable.
func (s *Solver) ValueVar(x Var) LitBool {
	return s.Assigns[x]
}

//ValueLit evaluates a literal under the current assignment.
func (s *Solver) ValueLit(p Lit) LitBool {
	switch s.Assigns[p.Var()] {
	case LitBoolUndef:
		return LitBoolUndef
	case LitBoolTrue:
		if !p.Sign() {
			return LitBoolTrue
		}
	case LitBoolFalse:
		if p.Sign() {
			return LitBoolTrue
		}
	}
	return LitBoolFalse
}
