// Package expr implements the boolean condition engine: a tokenizer and a
// recursive-descent parser for PLC transition guards, and normalization of
// the resulting AST to Disjunctive Normal Form under De Morgan's laws.
package expr
