package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Dimacs holds a CNF problem parsed from DIMACS format: clauses are
// slices of non-zero literals, negative meaning negated.
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
type Dimacs struct {
	numVariables int
	clauses      [][]int
}

func (d *Dimacs) NumVariables() int {
	return d.numVariables
}

func (d *Dimacs) Clauses() [][]int {
	return d.clauses
}

var (
	commentLine = regexp.MustCompile(`^c\s*.*`)
	headerLine  = regexp.MustCompile(`^p cnf\s+\d+\s+\d+\s*`)
	clauseLine  = regexp.MustCompile(`^(-?\d+\s+)+0`)
	cleanInput  = regexp.MustCompile(`\s\s+`)
)

// NewDimacs parses a DIMACS formatted stream.
func NewDimacs(r io.Reader) (*Dimacs, error) {
	reader := bufio.NewReader(r)

	numVariables := 0
	numClauses := 0
	var clauses [][]int

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && line == "" {
				break
			}
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("error reading dimacs data: %w", err)
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				break
			}
			continue
		}

		// ignore comments
		if commentLine.MatchString(line) {
			continue
		}

		// parse header
		if headerLine.MatchString(line) {
			line = cleanInput.ReplaceAllString(line, " ")
			problem := strings.Split(line, " ")
			if len(problem) != 4 {
				return nil, fmt.Errorf("invalid statement (%s): valid format is p cnf <variables> <clauses>", line)
			}
			if numVariables, err = strconv.Atoi(problem[2]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[2], line)
			}
			if numClauses, err = strconv.Atoi(problem[3]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[3], line)
			}
			clauses = make([][]int, 0, numClauses)
			continue
		}

		// collect clauses
		if clauseLine.MatchString(line) {
			if clauses == nil {
				return nil, fmt.Errorf("invalid dimacs format: missing header 'p cnf <variables> <clauses>'")
			}
			clause, err := parseClause(line, numVariables)
			if err != nil {
				return nil, fmt.Errorf("invalid clause (%s): %w", line, err)
			}
			clauses = append(clauses, clause)
			continue
		}

		return nil, fmt.Errorf("invalid dimacs command: %s", line)
	}

	if numVariables == 0 || numClauses == 0 || clauses == nil {
		return nil, fmt.Errorf("invalid format: no variables or clauses found")
	}
	if len(clauses) != numClauses {
		return nil, fmt.Errorf("invalid format: number of clauses in header differs from the total number of clauses")
	}

	return &Dimacs{
		numVariables: numVariables,
		clauses:      clauses,
	}, nil
}

func parseClause(line string, numVariables int) ([]int, error) {
	fields := strings.Fields(line)
	if fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("does not end with 0")
	}
	fields = fields[:len(fields)-1]
	clause := make([]int, len(fields))
	for i, field := range fields {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number", field)
		}
		if lit == 0 {
			return nil, fmt.Errorf("0 is not a valid literal")
		}
		if lit > numVariables || lit < -numVariables {
			return nil, fmt.Errorf("%d is not a valid literal", lit)
		}
		clause[i] = lit
	}
	return clause, nil
}
