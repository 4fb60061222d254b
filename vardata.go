package main

//VarData is the trail record of an assigned variable: the clause that
//forced it (ClaRefUndef for decisions and level-0 units) and the
//decision level it was assigned at. The trail plus these antecedents is
//the implication graph.
type VarData struct {
	Reason ClauseReference
	Level  int
}

func NewVarData(claRef ClauseReference, level int) *VarData {
	return &VarData{
		Reason: claRef,
		Level:  level,
	}
}

//Reason returns the antecedent clause reference for x.
func (s *Solver) Reason(x Var) ClauseReference {
	return s.VarData[x].Reason
}

//Level returns the decision level x was assigned at.
func (s *Solver) Level(x Var) int {
	return s.VarData[x].Level
}
