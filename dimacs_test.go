package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, input string) (*Solver, error) {
	t.Helper()
	s := NewSolver()
	err := parseDimacs(bufio.NewScanner(strings.NewReader(input)), s)
	return s, err
}

func TestParseDimacs(t *testing.T) {
	s, err := parseString(t, `c a comment
c another comment
p cnf 3 2
1 -2 0
2 3 0
`)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumVars())
	assert.Equal(t, 2, s.NumClauses())
	assert.True(t, s.OK)
}

func TestParseDimacsBlankLinesAndWhitespace(t *testing.T) {
	s, err := parseString(t, "\nc top\n  p cnf 2 1\n\n  1 2 0\n")
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumVars())
	assert.Equal(t, 1, s.NumClauses())
}

func TestParseDimacsUnitsPropagateAtLevelZero(t *testing.T) {
	s, err := parseString(t, "p cnf 2 2\n1 0\n-1 2 0\n")
	require.NoError(t, err)
	assert.Equal(t, LitBoolTrue, s.ValueVar(0))
	assert.Equal(t, LitBoolTrue, s.ValueVar(1))
}

func TestParseDimacsMissingHeader(t *testing.T) {
	_, err := parseString(t, "1 2 0\n")
	assert.Error(t, err)
}

func TestParseDimacsBadHeader(t *testing.T) {
	for _, input := range []string{
		"p cnf 3\n",
		"p dnf 3 2\n",
		"p cnf three 2\n1 0\n",
		"p cnf 3 two\n1 0\n",
	} {
		_, err := parseString(t, input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDimacsDuplicateHeader(t *testing.T) {
	_, err := parseString(t, "p cnf 1 1\np cnf 1 1\n1 0\n")
	assert.Error(t, err)
}

func TestParseDimacsBadLiteralToken(t *testing.T) {
	_, err := parseString(t, "p cnf 2 1\n1 x 0\n")
	assert.Error(t, err)
}

func TestParseDimacsUnterminatedClause(t *testing.T) {
	_, err := parseString(t, "p cnf 2 1\n1 2\n")
	assert.Error(t, err)
}

func TestParseDimacsVariableOutOfRange(t *testing.T) {
	_, err := parseString(t, "p cnf 2 1\n1 3 0\n")
	assert.Error(t, err)

	_, err = parseString(t, "p cnf 2 1\n-3 0\n")
	assert.Error(t, err)
}

func TestParseDimacsClauseCountMismatch(t *testing.T) {
	_, err := parseString(t, "p cnf 2 2\n1 2 0\n")
	assert.Error(t, err)

	_, err = parseString(t, "p cnf 2 1\n1 0\n2 0\n")
	assert.Error(t, err)
}

func TestParseDimacsEmptyProblem(t *testing.T) {
	s, err := parseString(t, "p cnf 0 0\n")
	require.NoError(t, err)
	assert.Equal(t, 0, s.NumVars())
	assert.True(t, s.OK)
}
