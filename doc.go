// Package polish converts infix arithmetic expressions to binary expression
// trees, renders them in reverse Polish, infix, and Polish notation, and
// reduces them to numbers where it can.
//
// The grammar is deliberately small. Operators are the single characters
// "=", "+", "-", "*", and "/"; grouping uses round brackets; everything else
// is a term. "1+2*3" splits at the "+", because the split point is always
// the lowest-priority operator outside any brackets. Among operators of equal
// priority the rightmost wins, so "1-2-3" is "(1-2)-3".
//
// Terms that do not read as numbers stay in the tree as symbols. Evaluating
// "x+1*2" reduces what it can and leaves "(x + 2)".
package polish
