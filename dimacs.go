package main

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//readClause parses one clause line into literals. Every literal must
//fall inside the declared variable range and the line must end with 0.
func readClause(line string, s *Solver) (lits []Lit, err error) {
	values := strings.Fields(line)
	if len(values) == 0 || values[len(values)-1] != "0" {
		return nil, errors.Errorf("the end of clause is not 0: %q", line)
	}
	for i := 0; i < len(values)-1; i++ {
		parsedValue, err := strconv.Atoi(values[i])
		if err != nil {
			return nil, errors.Wrapf(err, "bad literal token %q", values[i])
		}
		if parsedValue == 0 {
			return nil, errors.Errorf("clause contains an interior 0: %q", line)
		}

		value := parsedValue
		neg := false
		if parsedValue > 0 {
			value--
		} else {
			neg = true
			value = -value - 1
		}
		if value >= s.NumVars() {
			return nil, errors.Errorf("literal %d is outside the declared variable range 1..%d", parsedValue, s.NumVars())
		}

		lits = append(lits, NewLit(Var(value), neg))
	}
	return lits, nil
}

//parseDimacs reads a DIMACS CNF problem into the solver. The header
//fixes the variable domain before any clause is read; the clause count
//must match the header.
func parseDimacs(in *bufio.Scanner, s *Solver) error {
	headerSeen := false
	clauses := 0
	cnt := 0
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		//skip comments and blank lines
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if headerSeen {
				return errors.Errorf("duplicate problem header: %q", line)
			}
			values := strings.Fields(line)
			if len(values) != 4 || values[1] != "cnf" {
				return errors.Errorf("bad problem header: %q", line)
			}
			vars, err := strconv.Atoi(values[2])
			if err != nil {
				return errors.Wrapf(err, "bad variable count in header %q", line)
			}
			clauses, err = strconv.Atoi(values[3])
			if err != nil {
				return errors.Wrapf(err, "bad clause count in header %q", line)
			}
			if vars < 0 || clauses < 0 {
				return errors.Errorf("negative counts in header: %q", line)
			}
			for i := 0; i < vars; i++ {
				s.NewVar()
			}
			headerSeen = true
			continue
		}
		if !headerSeen {
			return errors.Errorf("clause before problem header: %q", line)
		}
		cnt++
		lits, err := readClause(line, s)
		if err != nil {
			return err
		}
		s.addClause(lits)
	}
	if err := in.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	if !headerSeen {
		return errors.New("missing problem header")
	}
	if cnt != clauses {
		return errors.Errorf("wrong number of clauses: got %d, header declares %d", cnt, clauses)
	}
	return nil
}
