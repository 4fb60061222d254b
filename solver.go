package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync/atomic"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
)

type Solver struct {
	Verbosity    bool
	ClaAllocator *ClauseAllocator  //The allocator for clauses
	Clauses      []ClauseReference //List of problem clauses.
	LearntCls    []ClauseReference //List of learnt clauses.
	Watches      *Watches          //'watches[lit]' is a list of clauses watching 'lit' (will go there if the literal becomes false).
	Assigns      []LitBool         //The current assignments.
	Qhead        int               //Head of the propagation queue (an index into the trail).
	Trail        []Lit             //Assignment stack; stores all assignments in the order they were made.
	TrailLim     []int             //Separator indices for different decision levels in 'trail'.
	NextVar      Var               //Next variable to be created.
	VarData      []VarData         //Stores reason and level for each variable.
	OK           bool              //If FALSE, the constraints are already unsatisfiable. No part of the solver state may be used!
	Seen         []bool            //Per-variable marks for clause learning.
	Model        []LitBool         //If the problem is satisfiable, this vector contains the model.
	Statistics   *Statistics       //Statistics
	Logger       *logrus.Logger

	interrupted atomic.Bool
}

func NewSolver() *Solver {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Solver{
		ClaAllocator: NewClauseAllocator(),
		Watches:      NewWatches(),
		Qhead:        0,
		NextVar:      0,
		OK:           true,
		Statistics:   NewStatistics(),
		Logger:       logger,
	}
}

//NewVar creates a fresh variable and returns it.
func (s *Solver) NewVar() Var {
	v := s.NextVar
	s.NextVar++
	s.Assigns = append(s.Assigns, LitBoolUndef)
	s.VarData = append(s.VarData, *NewVarData(ClaRefUndef, 0))
	s.Seen = append(s.Seen, false)
	s.Watches.Init(v)
	return v
}

func (s *Solver) NumVars() int {
	return int(s.NextVar)
}

func (s *Solver) NumClauses() int {
	return len(s.Clauses)
}

func (s *Solver) NumLearnts() int {
	return len(s.LearntCls)
}

func (s *Solver) NumAssigns() int {
	return len(s.Trail)
}

//Interrupt asks a running Solve to stop. The flag is checked between
//propagation rounds; the solver is left in a valid but unsolved state
//and Solve returns LitBoolUndef.
func (s *Solver) Interrupt() {
	s.interrupted.Store(true)
}

func (s *Solver) Interrupted() bool {
	return s.interrupted.Load()
}

//UncheckedEnqueue records an assignment making p true and puts it on
//the trail. The variable must be unassigned.
func (s *Solver) UncheckedEnqueue(p Lit, from ClauseReference) {
	if s.ValueLit(p) != LitBoolUndef {
		panic(fmt.Sprintf("the assignment is not undef: ValueLit(%v) = %v", p, s.ValueLit(p)))
	}
	if !p.Sign() {
		s.Assigns[p.Var()] = LitBoolTrue
	} else {
		s.Assigns[p.Var()] = LitBoolFalse
	}
	s.VarData[p.Var()] = *NewVarData(from, s.decisionLevel())
	s.Trail = append(s.Trail, p)
}

//Propagate processes all enqueued facts in FIFO order. Returns the
//reference of a conflicting clause, or ClaRefUndef if no conflict was
//found. The watch lists are kept consistent with the watched positions.
func (s *Solver) Propagate() ClauseReference {
	confl := ClaRefUndef

	for s.Qhead < len(s.Trail) {
		p := s.Trail[s.Qhead]
		s.Qhead++
		s.Statistics.PropagationCount++

		ws := s.Watches.Lookup(p)
		lastIdx := 0
		copiedIdx := 0
		for lastIdx < len(*ws) {
			watcher := (*ws)[lastIdx]

			// Try to avoid inspecting the clause.
			if s.ValueLit(watcher.blocker) == LitBoolTrue {
				(*ws)[copiedIdx] = (*ws)[lastIdx]
				lastIdx++
				copiedIdx++
				continue
			}

			// Make sure the false literal is lits[1].
			cr := watcher.claRef
			clause := s.ClaAllocator.GetClause(cr)
			falseLit := p.Flip()
			if clause.At(0) == falseLit {
				clause.lits[0], clause.lits[1] = clause.lits[1], falseLit
			}
			if clause.At(1) != falseLit {
				panic(fmt.Errorf("the watched literal at position 1 is not the false literal: %v %v", clause.At(1), falseLit))
			}
			lastIdx++

			// If the 0th watch is true, then the clause is already satisfied.
			firstLit := clause.At(0)
			w := NewWatcher(cr, firstLit)
			if firstLit != watcher.blocker && s.ValueLit(firstLit) == LitBoolTrue {
				(*ws)[copiedIdx] = w
				copiedIdx++
				continue
			}

			// Look for a new literal to watch.
			for i := 2; i < clause.Size(); i++ {
				if s.ValueLit(clause.At(i)) != LitBoolFalse {
					clause.lits[1], clause.lits[i] = clause.lits[i], falseLit
					newWatch := clause.At(1)
					s.Watches.Append(newWatch.Flip(), w)
					goto NextClause
				}
			}

			// Did not find a watch -- clause is unit under assignment:
			(*ws)[copiedIdx] = w
			copiedIdx++
			if s.ValueLit(firstLit) == LitBoolFalse {
				confl = cr
				s.Qhead = len(s.Trail)
				//Copy the remaining watches:
				for lastIdx < len(*ws) {
					(*ws)[copiedIdx] = (*ws)[lastIdx]
					lastIdx++
					copiedIdx++
				}
			} else {
				s.UncheckedEnqueue(firstLit, cr)
			}
		NextClause:
		}
		*ws = (*ws)[:copiedIdx]
	}

	return confl
}

//CancelUntil rewinds the trail to the given decision level, restoring
//every variable assigned above it to undef.
func (s *Solver) CancelUntil(level int) {
	if s.decisionLevel() > level {
		for c := len(s.Trail) - 1; c >= s.TrailLim[level]; c-- {
			x := s.Trail[c].Var()
			s.Assigns[x] = LitBoolUndef
			s.VarData[x] = *NewVarData(ClaRefUndef, 0)
		}
		s.Qhead = s.TrailLim[level]
		s.Trail = s.Trail[:s.TrailLim[level]]
		s.TrailLim = s.TrailLim[:level]
	}
}

//pickBranchLit returns the next decision literal: the first free
//variable in ascending index order, assigned positive. Returns LitUndef
//when every variable is assigned.
func (s *Solver) pickBranchLit() Lit {
	for v := Var(0); v < s.NextVar; v++ {
		if s.Assigns[v] == LitBoolUndef {
			return NewLit(v, false)
		}
	}
	return LitUndef
}

func (s *Solver) newDecisionLevel() {
	s.TrailLim = append(s.TrailLim, len(s.Trail))
}

func (s *Solver) decisionLevel() int {
	return len(s.TrailLim)
}

//addClause ingests a problem clause at decision level 0. Literals are
//sorted, duplicates collapsed and tautologies dropped; an empty clause
//falsifies the whole problem.
func (s *Solver) addClause(lits []Lit) bool {
	if s.decisionLevel() != 0 {
		panic(fmt.Errorf("the decision level is not zero: %d", s.decisionLevel()))
	}
	if !s.OK {
		return false
	}

	// Check if the clause is satisfied and remove false/duplicate literals:
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	p := LitUndef
	copiedIdx := 0
	for i := 0; i < len(lits); i++ {
		if s.ValueLit(lits[i]) == LitBoolTrue || lits[i] == p.Flip() {
			s.Logger.WithField("clause", fmt.Sprint(lits)).Debug("clause satisfied or tautological at ingest")
			return true
		} else if s.ValueLit(lits[i]) != LitBoolFalse && lits[i] != p {
			lits[copiedIdx], p = lits[i], lits[i]
			copiedIdx++
		}
	}
	lits = lits[:copiedIdx]

	switch len(lits) {
	case 0:
		// An empty clause means the problem is unsatisfiable.
		s.OK = false
	case 1:
		s.UncheckedEnqueue(lits[0], ClaRefUndef)
		if confl := s.Propagate(); confl != ClaRefUndef {
			s.Logger.WithField("lit", lits[0]).Debug("unit clause conflicts at level 0")
			s.OK = false
		}
	default:
		claRef := s.ClaAllocator.NewAllocate(lits, false)
		s.Clauses = append(s.Clauses, claRef)
		s.attachClause(claRef)
	}
	return s.OK
}

//attachClause installs the clause's two watches.
func (s *Solver) attachClause(claRef ClauseReference) {
	clause := s.ClaAllocator.GetClause(claRef)
	if clause.Size() < 2 {
		panic(fmt.Errorf("the size of the clause is less than 2: %v", clause))
	}
	firstLit := clause.At(0)
	secondLit := clause.At(1)
	s.Watches.Append(firstLit.Flip(), NewWatcher(claRef, secondLit))
	s.Watches.Append(secondLit.Flip(), NewWatcher(claRef, firstLit))
}

//Analyze computes a learned clause from a conflict by first-UIP
//resolution over the implication graph and returns it together with the
//backjump level. The asserting literal is placed at position 0 and a
//literal from the backjump level at position 1.
func (s *Solver) Analyze(confl ClauseReference) (learntClause []Lit, backTrackLevel int) {
	p := LitUndef
	pathConflict := 0
	idx := len(s.Trail) - 1

	learntClause = append(learntClause, LitUndef) // (leave room for the asserting literal)
	for {
		if confl == ClaRefUndef {
			pp.Fprintln(os.Stderr, s.VarData[p.Var()], p.Var(), s.decisionLevel(), pathConflict)
			panic("conflict analysis reached a variable without an antecedent")
		}
		conflCla := s.ClaAllocator.GetClause(confl)

		startIndex := 0
		if p != LitUndef {
			startIndex = 1
		}
		for i := startIndex; i < conflCla.Size(); i++ {
			q := conflCla.At(i)
			if !s.Seen[q.Var()] && s.Level(q.Var()) > 0 {
				s.Seen[q.Var()] = true
				if s.Level(q.Var()) > s.decisionLevel() {
					panic("a trail variable sits above the current decision level")
				}
				if s.Level(q.Var()) == s.decisionLevel() {
					pathConflict++
				} else {
					learntClause = append(learntClause, q)
				}
			}
		}

		// Select the next literal to look at:
		update := true
		for update {
			p = s.Trail[idx]
			update = !s.Seen[p.Var()]
			idx--
		}

		confl = s.Reason(p.Var())
		s.Seen[p.Var()] = false
		pathConflict--
		if pathConflict <= 0 {
			break
		}
	}
	learntClause[0] = p.Flip()

	if len(learntClause) == 1 {
		backTrackLevel = 0
	} else {
		// Find the first literal assigned at the next-highest level:
		maxIdx := 1
		for i := 2; i < len(learntClause); i++ {
			if s.Level(learntClause[i].Var()) > s.Level(learntClause[maxIdx].Var()) {
				maxIdx = i
			}
		}
		backTrackLevel = s.Level(learntClause[maxIdx].Var())
		// Swap-in this literal at index 1:
		learntClause[maxIdx], learntClause[1] = learntClause[1], learntClause[maxIdx]
	}

	for _, q := range learntClause {
		s.Seen[q.Var()] = false
	}

	return learntClause, backTrackLevel
}

//Search runs the propagate/analyze/decide loop until the problem is
//decided or an interrupt is observed.
func (s *Solver) Search() LitBool {
	if !s.OK {
		panic("search entered with falsified constraints")
	}

	for {
		if s.Interrupted() {
			s.Logger.WithField("conflicts", s.Statistics.ConflictCount).Info("search interrupted")
			return LitBoolUndef
		}
		confl := s.Propagate()
		if confl != ClaRefUndef {
			//Conflict
			s.Statistics.ConflictCount++

			//If the decision level is 0, the problem is unsatisfiable.
			if s.decisionLevel() == 0 {
				return LitBoolFalse
			}

			learntClause, backTrackLevel := s.Analyze(confl)
			s.CancelUntil(backTrackLevel)

			if len(learntClause) == 1 {
				s.UncheckedEnqueue(learntClause[0], ClaRefUndef)
			} else {
				claRef := s.ClaAllocator.NewAllocate(learntClause, true)
				s.LearntCls = append(s.LearntCls, claRef)
				s.attachClause(claRef)
				s.UncheckedEnqueue(learntClause[0], claRef)
			}
			if s.Logger.IsLevelEnabled(logrus.DebugLevel) {
				s.Logger.WithFields(logrus.Fields{
					"learnt":   fmt.Sprint(learntClause),
					"backjump": backTrackLevel,
				}).Debug("recorded learnt clause")
			}
		} else {
			//No conflict
			nextLit := s.pickBranchLit()
			if nextLit == LitUndef {
				// Model found:
				return LitBoolTrue
			}
			s.Statistics.DecisionCount++
			s.newDecisionLevel()
			s.UncheckedEnqueue(nextLit, ClaRefUndef)
		}
	}
}

//Solve decides the instance. It returns LitBoolTrue with a total model,
//LitBoolFalse on unsatisfiability, or LitBoolUndef when interrupted.
func (s *Solver) Solve() LitBool {
	if !s.OK {
		return LitBoolFalse
	}
	status := s.Search()

	if status == LitBoolTrue {
		for _, claRef := range s.Clauses {
			if c := s.ClaAllocator.GetClause(claRef); !s.satisfied(c) {
				pp.Fprintln(os.Stderr, c)
				panic("a problem clause is unsatisfied by the model")
			}
		}
		s.Model = make([]LitBool, 0, s.NumVars())
		for i := 0; i < s.NumVars(); i++ {
			s.Model = append(s.Model, s.ValueVar(Var(i)))
		}
	} else if status == LitBoolFalse {
		s.OK = false
	}
	s.CancelUntil(0)
	s.Logger.WithFields(logrus.Fields{
		"status":    status,
		"conflicts": s.Statistics.ConflictCount,
		"decisions": s.Statistics.DecisionCount,
		"learnts":   s.NumLearnts(),
	}).Info("solve finished")
	return status
}
