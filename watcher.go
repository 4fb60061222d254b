package main

//Watcher is one entry of a literal's watch list. blocker is the other
//watched literal at the time the watcher was installed; if the blocker
//is already true the clause is satisfied and need not be inspected.
type Watcher struct {
	claRef  ClauseReference
	blocker Lit
}

//NewWatcher returns a pointer of Watcher
func NewWatcher(cla ClauseReference, p Lit) *Watcher {
	return &Watcher{
		claRef:  cla,
		blocker: p,
	}
}

//Watches holds, for every literal, the clauses currently watching it.
//The outer slice is indexed by the literal's integer encoding.
type Watches struct {
	watches [][]*Watcher
}

//NewWatches returns a pointer of Watches
func NewWatches() *Watches {
	return &Watches{}
}

//Init grows the watch lists to cover both literals of v.
func (w *Watches) Init(v Var) {
	size := 2*int(v) + 1
	for len(w.watches) <= size {
		w.watches = append(w.watches, []*Watcher{})
	}
}

//Lookup returns a pointer of literal's watch list
func (w *Watches) Lookup(x Lit) *[]*Watcher {
	return &w.watches[int(x)]
}

//Append appends a new watcher to x's watch list
func (w *Watches) Append(x Lit, watcher *Watcher) {
	w.watches[int(x)] = append(w.watches[int(x)], watcher)
}
