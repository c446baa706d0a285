package stack

import (
	"fmt"
	"strconv"
)

// EvalRPN evaluates an integer expression in reverse Polish notation.
// Supported operators: + - * / % with Go integer semantics (division
// truncates toward zero).
//
// Algorithm Outline:
//  1. Scan tokens left to right.
//  2. Push integer operands on a stack.
//  3. On an operator, pop the right then left operand, apply, push the
//     result.
//  4. A well-formed expression leaves exactly one value on the stack.
//
// Time Complexity: O(n), Memory: O(n).
//
// Errors:
//   - ErrBadToken for a token that is neither integer nor operator.
//   - ErrShortExpression for missing or surplus operands.
//   - ErrDivisionByZero for x / 0 or x % 0.
func EvalRPN(tokens []string) (int, error) {
	operands := New[int](len(tokens))
	for _, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/", "%":
			right, err := operands.Pop()
			if err != nil {
				return 0, fmt.Errorf("%w: operator %q needs two operands", ErrShortExpression, tok)
			}
			left, err := operands.Pop()
			if err != nil {
				return 0, fmt.Errorf("%w: operator %q needs two operands", ErrShortExpression, tok)
			}
			var v int
			switch tok {
			case "+":
				v = left + right
			case "-":
				v = left - right
			case "*":
				v = left * right
			case "/":
				if right == 0 {
					return 0, ErrDivisionByZero
				}
				v = left / right
			case "%":
				if right == 0 {
					return 0, ErrDivisionByZero
				}
				v = left % right
			}
			operands.Push(v)
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
			}
			operands.Push(n)
		}
	}
	if operands.Len() != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrShortExpression, operands.Len())
	}
	result, _ := operands.Pop()

	return result, nil
}
