package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/certmin/interval"
	"github.com/katalvlaran/certmin/polynomial"
)

// problemFile is the YAML form of a minimisation problem. The objective is
// the sum of Terms and Expression; either may be omitted.
type problemFile struct {
	Variables  int         `yaml:"variables"`
	Terms      []termEntry `yaml:"terms"`
	Expression *exprNode   `yaml:"expression"`
	Domain     [][2]string `yaml:"domain"`
}

type termEntry struct {
	Coefficient string `yaml:"coefficient"`
	Exponents   []int  `yaml:"exponents"`
}

// exprNode is one node of an objective expression. Exactly one of Op,
// Constant, Variable or Terms is set; an Op node folds its Args left to
// right ("sub" of a, b, c is (a − b) − c).
type exprNode struct {
	Op       string      `yaml:"op"`
	Args     []exprNode  `yaml:"args"`
	Constant string      `yaml:"constant"`
	Variable *int        `yaml:"variable"`
	Terms    []termEntry `yaml:"terms"`
}

var exprOps = []polynomial.Op{polynomial.OpAdd, polynomial.OpSub, polynomial.OpMul, polynomial.OpQuo}

// problem is a parsed problem file; a nil domain means the full space.
type problem struct {
	objective *polynomial.Polynomial
	domain    interval.Vector
}

var errProblem = errors.New("invalid problem file")

func loadProblem(path string) (problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return problem{}, err
	}
	defer f.Close()

	p, err := parseProblem(f)
	if err != nil {
		return problem{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

func parseProblem(r io.Reader) (problem, error) {
	var pf problemFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return problem{}, fmt.Errorf("empty document: %w", errProblem)
		}

		return problem{}, err
	}
	if pf.Variables < 1 {
		return problem{}, fmt.Errorf("variables must be >= 1, got %d: %w", pf.Variables, errProblem)
	}

	obj, err := parseTerms(pf.Variables, pf.Terms)
	if err != nil {
		return problem{}, err
	}
	if pf.Expression != nil {
		e, err := pf.Expression.operand(pf.Variables)
		if err != nil {
			return problem{}, fmt.Errorf("expression: %w", err)
		}
		sum, err := polynomial.Combine(polynomial.OpAdd, obj, e)
		if err != nil {
			return problem{}, fmt.Errorf("expression: %w", err)
		}
		obj = sum.(*polynomial.Polynomial)
	}

	p := problem{objective: obj}
	if len(pf.Domain) == 0 {
		return p, nil
	}
	p.domain = make(interval.Vector, len(pf.Domain))
	for i, b := range pf.Domain {
		lo, err := parseBound(b[0])
		if err != nil {
			return problem{}, fmt.Errorf("domain %d lower bound: %w", i, err)
		}
		hi, err := parseBound(b[1])
		if err != nil {
			return problem{}, fmt.Errorf("domain %d upper bound: %w", i, err)
		}
		p.domain[i] = interval.Interval{Lo: lo, Hi: hi}
	}

	return p, nil
}

func parseTerms(nvars int, entries []termEntry) (*polynomial.Polynomial, error) {
	terms := make([]polynomial.Term, 0, len(entries))
	for i, te := range entries {
		c, ok := new(big.Rat).SetString(strings.TrimSpace(te.Coefficient))
		if !ok {
			return nil, fmt.Errorf("term %d: coefficient %q is not a rational: %w", i, te.Coefficient, errProblem)
		}
		terms = append(terms, polynomial.Term{Exponents: te.Exponents, Coefficient: c})
	}

	return polynomial.New(nvars, terms...)
}

// operand evaluates the node with exact arithmetic. Constant subtrees stay
// scalars until they meet a polynomial.
func (e exprNode) operand(nvars int) (polynomial.Operand, error) {
	set := 0
	for _, ok := range []bool{e.Op != "", e.Constant != "", e.Variable != nil, len(e.Terms) > 0} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("node must set exactly one of op, constant, variable, terms: %w", errProblem)
	}

	switch {
	case e.Constant != "":
		c, ok := new(big.Rat).SetString(strings.TrimSpace(e.Constant))
		if !ok {
			return nil, fmt.Errorf("constant %q is not a rational: %w", e.Constant, errProblem)
		}

		return polynomial.Scalar{Value: c}, nil
	case e.Variable != nil:
		if *e.Variable < 0 || *e.Variable >= nvars {
			return nil, fmt.Errorf("variable %d not in [0, %d): %w", *e.Variable, nvars, errProblem)
		}

		return polynomial.Variable(nvars, *e.Variable), nil
	case len(e.Terms) > 0:
		return parseTerms(nvars, e.Terms)
	}

	op, err := parseOp(e.Op)
	if err != nil {
		return nil, err
	}
	if len(e.Args) < 2 {
		return nil, fmt.Errorf("%s needs at least 2 args, got %d: %w", op, len(e.Args), errProblem)
	}
	acc, err := e.Args[0].operand(nvars)
	if err != nil {
		return nil, fmt.Errorf("%s arg 0: %w", op, err)
	}
	for i, arg := range e.Args[1:] {
		v, err := arg.operand(nvars)
		if err != nil {
			return nil, fmt.Errorf("%s arg %d: %w", op, i+1, err)
		}
		if acc, err = polynomial.Combine(op, acc, v); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func parseOp(name string) (polynomial.Op, error) {
	for _, op := range exprOps {
		if op.String() == name {
			return op, nil
		}
	}

	return 0, fmt.Errorf("unknown op %q (want add, sub, mul or quo): %w", name, errProblem)
}

// parseBound accepts any strconv float spelling ("inf", "-Inf", "1e3").
func parseBound(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, errProblem)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%q is NaN: %w", s, errProblem)
	}

	return v, nil
}
