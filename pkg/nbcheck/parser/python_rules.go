package parser

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// A rule returns the offending node and a message when n breaks it, or nil.
type rule func(n *sitter.Node, src []byte) (*sitter.Node, string)

// compileRules are checked in phases. Every node is checked against one
// phase before the next phase starts, matching the order in which the
// Python parser, symbol table and compiler report errors.
var compileRules = [][]rule{
	{python2Statement, argumentOrder},
	{duplicateParameter},
	{outsideFunction, outsideLoop},
}

// findViolation walks named nodes in document order and returns the first
// one that breaks any of rules.
func findViolation(n *sitter.Node, src []byte, rules []rule) (*sitter.Node, string) {
	for _, r := range rules {
		if at, msg := r(n, src); at != nil {
			return at, msg
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		if at, msg := findViolation(child, src, rules); at != nil {
			return at, msg
		}
	}
	return nil, ""
}

// python2Statement rejects the print and exec statements the grammar still
// accepts.
func python2Statement(n *sitter.Node, _ []byte) (*sitter.Node, string) {
	switch n.Type() {
	case "print_statement":
		return n, "Missing parentheses in call to 'print'. Did you mean print(...)?"
	case "exec_statement":
		return n, "Missing parentheses in call to 'exec'. Did you mean exec(...)?"
	}
	return nil, ""
}

// argumentOrder enforces positional, then keyword, then ** arguments.
// A *iterable may follow keywords but not **mapping.
func argumentOrder(n *sitter.Node, _ []byte) (*sitter.Node, string) {
	if n.Type() != "argument_list" {
		return nil, ""
	}
	var keyword, unpacking bool
	for i := 0; i < int(n.NamedChildCount()); i++ {
		arg := n.NamedChild(i)
		if arg == nil {
			continue
		}
		switch arg.Type() {
		case "comment":
		case "keyword_argument":
			keyword = true
		case "dictionary_splat":
			unpacking = true
		case "list_splat":
			if unpacking {
				return arg, "iterable argument unpacking follows keyword argument unpacking"
			}
		default:
			if unpacking {
				return arg, "positional argument follows keyword argument unpacking"
			}
			if keyword {
				return arg, "positional argument follows keyword argument"
			}
		}
	}
	return nil, ""
}

func duplicateParameter(n *sitter.Node, src []byte) (*sitter.Node, string) {
	if n.Type() != "parameters" && n.Type() != "lambda_parameters" {
		return nil, ""
	}
	seen := make(map[string]bool)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		param := n.NamedChild(i)
		if param == nil {
			continue
		}
		name := parameterName(param, src)
		if name == "" {
			continue
		}
		if seen[name] {
			return param, fmt.Sprintf("duplicate argument '%s' in function definition", name)
		}
		seen[name] = true
	}
	return nil, ""
}

// parameterName returns the name a parameter binds, or "" for separators.
func parameterName(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case "identifier":
		return n.Content(src)
	case "default_parameter", "typed_default_parameter":
		if name := n.ChildByFieldName("name"); name != nil {
			return parameterName(name, src)
		}
	case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
		if n.NamedChildCount() > 0 {
			if inner := n.NamedChild(0); inner != nil {
				return parameterName(inner, src)
			}
		}
	}
	return ""
}

func outsideFunction(n *sitter.Node, _ []byte) (*sitter.Node, string) {
	var keyword string
	switch n.Type() {
	case "return_statement":
		keyword = "return"
	case "yield":
		keyword = "yield"
	default:
		return nil, ""
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Type() {
		case "function_definition", "lambda":
			return nil, ""
		case "class_definition":
			return n, fmt.Sprintf("'%s' outside function", keyword)
		}
	}
	return n, fmt.Sprintf("'%s' outside function", keyword)
}

func outsideLoop(n *sitter.Node, _ []byte) (*sitter.Node, string) {
	var msg string
	switch n.Type() {
	case "break_statement":
		msg = "'break' outside loop"
	case "continue_statement":
		msg = "'continue' not properly in loop"
	default:
		return nil, ""
	}
	child := n
	for p := n.Parent(); p != nil; child, p = p, p.Parent() {
		switch p.Type() {
		case "for_statement", "while_statement":
			// The else clause of a loop is not part of the loop.
			if child.Type() != "else_clause" {
				return nil, ""
			}
		case "function_definition", "class_definition", "lambda":
			return n, msg
		}
	}
	return n, msg
}
