// Package: eqgraph/builder
//
// factory.go — the Factory: leaf and function registries plus Build, the
// parse → resolve → bind → validate pipeline.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eqgraph/literals"
	"github.com/katalvlaran/eqgraph/visitors"
)

// Factory builds node graphs from equation text. It owns two registries:
// named leaves (RegisterArgument) and callable functions (preloaded with
// the builtins, extended with RegisterFunction).
//
// Factory is not safe for concurrent use; equations belong to a single
// fitting session.
type Factory struct {
	args map[string]literals.Literal
	fns  map[string]Function
}

// NewFactory returns a Factory preloaded with the builtin function table.
func NewFactory() *Factory {
	return &Factory{
		args: make(map[string]literals.Literal),
		fns:  builtins(),
	}
}

// RegisterArgument binds name to the leaf l for all subsequent Build calls.
// Re-registering the identical object is an idempotent no-op; binding a
// different object under a taken name fails with ErrNameConflict.
func (f *Factory) RegisterArgument(name string, l literals.Literal) error {
	if name == "" {
		return ErrEmptyName
	}
	if l == nil {
		return fmt.Errorf("argument %q: %w", name, literals.ErrNilChild)
	}
	if have, ok := f.args[name]; ok {
		if have == l {
			return nil
		}
		return fmt.Errorf("argument %q: %w", name, ErrNameConflict)
	}
	f.args[name] = l
	return nil
}

// DeregisterArgument removes name from the registry. Unknown names are a
// no-op; graphs already built keep their references.
func (f *Factory) DeregisterArgument(name string) {
	delete(f.args, name)
}

// Argument returns the leaf registered under name, or nil.
func (f *Factory) Argument(name string) literals.Literal {
	return f.args[name]
}

// RegisterFunction installs fn under fn.Name, replacing any builtin or
// earlier registration of the same name. Overriding is deliberate: a session
// may redefine "log" to a profiled variant without touching built graphs.
func (f *Factory) RegisterFunction(fn Function) error {
	if fn.Name == "" {
		return ErrEmptyName
	}
	if fn.Fn == nil {
		return fmt.Errorf("function %q: %w", fn.Name, literals.ErrNilChild)
	}
	f.fns[fn.Name] = fn
	return nil
}

// Build parses text and returns the bound graph root.
//
// ns is a one-shot namespace: its entries resolve identifiers for this call
// only and are never retained. An ns entry whose name is already registered
// to a different object fails with ErrNameConflict before any resolution.
//
// Every free identifier must resolve (registry first, then ns) and every
// call must name a known function, or Build fails with ErrUnresolvedName
// and no graph. The bound graph is structurally validated before return, so
// a successful Build is always safely evaluatable.
func (f *Factory) Build(text string, ns map[string]literals.Literal) (literals.Literal, error) {
	// 1. Parse.
	root, err := parse(text)
	if err != nil {
		return nil, err
	}

	// 2. Namespace overrides must not shadow a registered name with a
	// different object.
	for name, l := range ns {
		if l == nil {
			return nil, fmt.Errorf("namespace entry %q: %w", name, literals.ErrNilChild)
		}
		if have, ok := f.args[name]; ok && have != l {
			return nil, fmt.Errorf("namespace entry %q: %w", name, ErrNameConflict)
		}
	}

	// 3. Resolve all identifiers and function names before binding anything.
	if err = f.resolve(root, ns); err != nil {
		return nil, err
	}

	// 4. Bind the AST into a node graph.
	graph, err := f.bind(root, ns)
	if err != nil {
		return nil, err
	}

	// 5. Structural validation: Build never hands out an invalid graph.
	if err = visitors.Validate(graph); err != nil {
		return nil, err
	}
	return graph, nil
}

// Identifiers parses text and returns its free identifiers (not function
// names) in first-appearance order, registered or not. Useful for
// pre-registering leaves before a Build.
func (f *Factory) Identifiers(text string) ([]string, error) {
	root, err := parse(text)
	if err != nil {
		return nil, err
	}
	var out []string
	seen := make(map[string]bool)
	collectIdents(root, seen, &out)
	return out, nil
}

func collectIdents(n node, seen map[string]bool, out *[]string) {
	switch t := n.(type) {
	case *identNode:
		if !seen[t.name] {
			seen[t.name] = true
			*out = append(*out, t.name)
		}
	case *unaryNode:
		collectIdents(t.operand, seen, out)
	case *binaryNode:
		collectIdents(t.lhs, seen, out)
		collectIdents(t.rhs, seen, out)
	case *callNode:
		for _, a := range t.args {
			collectIdents(a, seen, out)
		}
		for _, v := range t.kwVals {
			collectIdents(v, seen, out)
		}
	}
}

// resolve walks the AST and verifies every identifier and called function
// is known. Doing this before bind keeps failures graph-free.
func (f *Factory) resolve(n node, ns map[string]literals.Literal) error {
	switch t := n.(type) {
	case *numNode:
		return nil
	case *identNode:
		if _, ok := f.args[t.name]; ok {
			return nil
		}
		if _, ok := ns[t.name]; ok {
			return nil
		}
		return fmt.Errorf("identifier %q at offset %d: %w", t.name, t.pos, ErrUnresolvedName)
	case *unaryNode:
		if _, ok := f.fns[t.op]; !ok {
			return fmt.Errorf("function %q: %w", t.op, ErrUnresolvedName)
		}
		return f.resolve(t.operand, ns)
	case *binaryNode:
		if _, ok := f.fns[t.op]; !ok {
			return fmt.Errorf("function %q: %w", t.op, ErrUnresolvedName)
		}
		if err := f.resolve(t.lhs, ns); err != nil {
			return err
		}
		return f.resolve(t.rhs, ns)
	case *callNode:
		if _, ok := f.fns[t.name]; !ok {
			return fmt.Errorf("function %q at offset %d: %w", t.name, t.pos, ErrUnresolvedName)
		}
		for _, a := range t.args {
			if err := f.resolve(a, ns); err != nil {
				return err
			}
		}
		for _, v := range t.kwVals {
			if err := f.resolve(v, ns); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unhandled node %T: %w", n, ErrSyntax)
	}
}

// bind converts resolved AST nodes into graph nodes. Numbers become
// anonymous const leaves; each call site gets a fresh Operator so equations
// never share interior nodes by accident (leaves are shared deliberately).
func (f *Factory) bind(n node, ns map[string]literals.Literal) (literals.Literal, error) {
	switch t := n.(type) {
	case *numNode:
		return literals.NewArgument("", literals.Scalar(t.val), true), nil

	case *identNode:
		if l, ok := f.args[t.name]; ok {
			return l, nil
		}
		return ns[t.name], nil

	case *unaryNode:
		operand, err := f.bind(t.operand, ns)
		if err != nil {
			return nil, err
		}
		return f.newCall(t.op, []literals.Literal{operand}, nil, nil)

	case *binaryNode:
		lhs, err := f.bind(t.lhs, ns)
		if err != nil {
			return nil, err
		}
		rhs, err := f.bind(t.rhs, ns)
		if err != nil {
			return nil, err
		}
		return f.newCall(t.op, []literals.Literal{lhs, rhs}, nil, nil)

	case *callNode:
		args := make([]literals.Literal, len(t.args))
		for i, a := range t.args {
			bound, err := f.bind(a, ns)
			if err != nil {
				return nil, err
			}
			args[i] = bound
		}
		kwVals := make([]literals.Literal, len(t.kwVals))
		for i, v := range t.kwVals {
			bound, err := f.bind(v, ns)
			if err != nil {
				return nil, err
			}
			kwVals[i] = bound
		}
		return f.newCall(t.name, args, t.kwNames, kwVals)

	default:
		return nil, fmt.Errorf("unhandled node %T: %w", n, ErrSyntax)
	}
}

// newCall instantiates an Operator for one call site and attaches its
// children.
func (f *Factory) newCall(name string, args []literals.Literal, kwNames []string, kwVals []literals.Literal) (literals.Literal, error) {
	fn := f.fns[name]
	op := literals.NewOperator(fn.Name, fn.Arity, fn.Fn)
	for _, a := range args {
		if err := op.AddLiteral(a); err != nil {
			return nil, err
		}
	}
	for i, kwName := range kwNames {
		if err := op.AddKeyword(kwName, kwVals[i]); err != nil {
			return nil, err
		}
	}
	return op, nil
}
