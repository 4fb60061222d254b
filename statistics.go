package main

type Statistics struct {
	DecisionCount    uint64
	PropagationCount uint64
	ConflictCount    uint64
}

func NewStatistics() *Statistics {
	return &Statistics{
		DecisionCount:    0,
		PropagationCount: 0,
		ConflictCount:    0,
	}
}
