// Package stack provides a slice-backed LIFO container and the classic
// stack-driven algorithms: bracket matching, monotonic-stack queries,
// push/pop sequence validation and reverse-Polish evaluation.
//
// What:
//
//   - Stack[T] — generic LIFO with O(1) amortized Push/Pop/Peek.
//   - ValidBrackets — checks balanced, properly nested bracket pairs.
//   - NextGreater / PreviousSmaller — monotonic-stack index queries,
//     amortized O(1) per element.
//   - DailyTemperatures — days until a warmer reading, via index stack.
//   - ValidSequence — whether one sequence can be the pop order of another.
//   - EvalRPN — integer reverse-Polish-notation evaluation.
//
// Why:
//
//   - Parsing: bracket linting, expression evaluation.
//   - Range queries: next-greater/previous-smaller in a single pass.
//   - Interview prep: every canonical stack pattern in one place.
//
// Complexity:
//
//   - Stack Push/Pop/Peek: O(1) amortized, Memory: O(n).
//   - ValidBrackets, ValidSequence, EvalRPN: O(n), Memory: O(n).
//   - NextGreater, PreviousSmaller, DailyTemperatures: O(n) amortized
//     (each index pushed and popped at most once), Memory: O(n).
//
// Options:
//
//   - WithPairs: custom open→close bracket pairs for ValidBrackets.
//   - WithStrict: reject runes that are not brackets instead of
//     skipping them.
//
// Errors:
//
//   - ErrEmptyStack: Pop or Peek on an empty stack.
//   - ErrBadToken: EvalRPN met a token that is neither operand nor operator.
//   - ErrShortExpression: EvalRPN ran out of operands, or operands remained.
//   - ErrDivisionByZero: EvalRPN attempted x / 0 or x % 0.
//   - ErrOptionViolation: an invalid Option was supplied.
package stack
