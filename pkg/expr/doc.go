// Package expr implements the expression DSL used inside template holes:
// a tokenizer, a recursive-descent parser producing an immutable AST, a
// tree-walking evaluator, and the write-once function registry the
// evaluator dispatches through.
//
// The DSL is deliberately minimal. There are no infix operators, no user
// functions, and no mutation; a program is a single expression such as
//
//	numerify("###-##-####")
//	Number.between(1, 100)
//	weighted([['a', 3], ['b', 1]])
//
// Every random draw comes from the RNG in the evaluation Env, so a fixed
// seed reproduces output exactly.
package expr
