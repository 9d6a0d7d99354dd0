// Package: eqgraph/cmd/eqgraph
//
// session.go — YAML fit sessions: schema, loading and wiring into an
// organizer.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eqgraph/fit"
	"github.com/katalvlaran/eqgraph/literals"
	"github.com/katalvlaran/eqgraph/visitors"
)

// sessionSpec is the YAML schema of one fit session.
//
//	name: peak-fit
//	parameters:
//	  - {name: width, value: 1.5, bounds: [0, 10]}
//	  - {name: offset, value: 2, const: true}
//	constraints:
//	  - {parameter: fwhm, equation: "2.354820045 * width"}
//	restraints:
//	  - {equation: "width", lower: 0, upper: 5, sigma: 0.5}
//	report:
//	  - "width + offset"
type sessionSpec struct {
	Name        string           `yaml:"name"`
	Parameters  []paramSpec      `yaml:"parameters"`
	Constraints []constraintSpec `yaml:"constraints"`
	Restraints  []restraintSpec  `yaml:"restraints"`
	Report      []string         `yaml:"report"`
}

type paramSpec struct {
	Name   string    `yaml:"name"`
	Value  float64   `yaml:"value"`
	Const  bool      `yaml:"const"`
	Bounds []float64 `yaml:"bounds"` // [lower, upper]
}

type constraintSpec struct {
	Parameter string `yaml:"parameter"`
	Equation  string `yaml:"equation"`
}

type restraintSpec struct {
	Equation string   `yaml:"equation"`
	Lower    float64  `yaml:"lower"`
	Upper    *float64 `yaml:"upper"`
	Sigma    *float64 `yaml:"sigma"`
}

// loadSession reads and decodes a session file.
func loadSession(path string) (*sessionSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s sessionSpec
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("session %s: %w", path, err)
	}
	return &s, nil
}

// wire builds the organizer a session describes: parameters first, then
// constraints and restraints over their names.
func (s *sessionSpec) wire(log *zap.Logger) (*fit.Organizer, error) {
	org := fit.NewOrganizer(s.Name, fit.WithLogger(log))

	for _, ps := range s.Parameters {
		var opts []fit.ParameterOption
		if ps.Const {
			opts = append(opts, fit.WithConst())
		}
		p := fit.NewParameter(ps.Name, literals.Scalar(ps.Value), opts...)
		if len(ps.Bounds) == 2 {
			if err := p.SetBounds(ps.Bounds[0], ps.Bounds[1]); err != nil {
				return nil, err
			}
		} else if len(ps.Bounds) != 0 {
			return nil, fmt.Errorf("parameter %q: bounds want [lower, upper], got %d entries", ps.Name, len(ps.Bounds))
		}
		if err := org.AddParameter(p); err != nil {
			return nil, err
		}
	}

	for _, cs := range s.Constraints {
		par := org.Parameter(cs.Parameter)
		if par == nil {
			// A constrained name that is not declared becomes a fresh
			// parameter, so sessions can introduce purely derived quantities.
			p := fit.NewParameter(cs.Parameter, literals.Scalar(0))
			if err := org.AddParameter(p); err != nil {
				return nil, err
			}
			par = p
		}
		if err := org.Constrain(par, cs.Equation, nil); err != nil {
			return nil, err
		}
	}

	for _, rs := range s.Restraints {
		opts := []fit.RestraintOption{}
		if rs.Upper != nil {
			opts = append(opts, fit.WithUpper(*rs.Upper))
		}
		if rs.Sigma != nil {
			opts = append(opts, fit.WithSigma(*rs.Sigma))
		}
		if _, err := org.Restrain(rs.Equation, rs.Lower, opts...); err != nil {
			return nil, err
		}
	}
	return org, nil
}

func runSession(cmd *cobra.Command, args []string) error {
	s, err := loadSession(args[0])
	if err != nil {
		return err
	}
	org, err := s.wire(logger)
	if err != nil {
		return err
	}

	fmt.Printf("session %s: %d parameter(s), %d constraint(s), %d restraint(s)\n",
		org.Name(), len(org.Parameters()), len(org.Constraints()), len(org.Restraints()))

	for _, expr := range s.Report {
		root, err := org.Build(expr, nil)
		if err != nil {
			return err
		}
		printed, err := visitors.Print(root)
		if err != nil {
			return err
		}
		v, err := literals.Evaluate(root)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", printed, v)
	}

	for i, r := range org.Restraints() {
		pen, err := r.Penalty()
		if err != nil {
			return err
		}
		lb, ub := r.Range()
		fmt.Printf("restraint %d [%v, %v]: penalty %v\n", i, lb, ub, pen)
	}

	total, err := org.Residual(nil)
	if err != nil {
		return err
	}
	fmt.Printf("restraint residual: %v\n", total)
	return nil
}
