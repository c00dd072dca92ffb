package template

import (
	"fmt"
	"strings"
)

// evalCondition evaluates a conditional expression against vars.
//
// Grammar:
//
//	expr    := operand ("and" operand)*
//	operand := ["not"] ident
//
// Every referenced variable must exist and be boolean; there is no
// short-circuiting, so a missing variable is an error even when the
// surrounding conjunction is already false.
func evalCondition(expr, tag string, vars Variables) (bool, error) {
	words := strings.Fields(expr)
	if len(words) == 0 {
		return false, newRenderErrorWithTag(InvalidTagSyntax,
			"condition expression is empty", tag)
	}

	i := 0
	operand := func() (bool, error) {
		negate := false
		for i < len(words) && words[i] == "not" {
			negate = !negate
			i++
		}
		if i >= len(words) {
			return false, newRenderErrorWithTag(InvalidTagSyntax,
				"expected variable after 'not'", tag)
		}
		ident := words[i]
		i++
		if ident == "and" {
			return false, newRenderErrorWithTag(InvalidTagSyntax,
				"expected variable, found 'and'", tag)
		}

		val, ok := vars.Get(ident)
		if !ok {
			return false, newRenderErrorWithTag(MissingVariable,
				fmt.Sprintf("condition references unknown variable: %s", ident), tag)
		}
		b, isBool := val.(bool)
		if !isBool {
			return false, newRenderErrorWithTag(TypeMismatch,
				fmt.Sprintf("condition variable must be boolean: %s (got %T)", ident, val), tag)
		}
		if negate {
			return !b, nil
		}
		return b, nil
	}

	result, err := operand()
	if err != nil {
		return false, err
	}
	for i < len(words) {
		if words[i] != "and" {
			return false, newRenderErrorWithTag(InvalidTagSyntax,
				fmt.Sprintf("expected 'and', found %q", words[i]), tag)
		}
		i++
		right, err := operand()
		if err != nil {
			return false, err
		}
		result = result && right
	}
	return result, nil
}
