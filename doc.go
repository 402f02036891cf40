// Package intersect compiles single-variable formulas and finds where two of
// them meet.
//
// Formulas use a small closed grammar: numbers, the variable x, the operators
// + - * / ^, parentheses, and calls to log10(…) and sqrt(…). "-x^2" is
// "-(x^2)", and "x^2^3" is "x^(2^3)". Nothing else parses, so a formula can
// only ever do arithmetic on x.
//
// Compiled formulas evaluate with float64 semantics. Division by zero and
// arguments outside a function's domain give infinities or NaN rather than
// errors. The intersection finder samples two formulas on a shared grid and
// reports the sample where they are closest, if that is within a tolerance.
package intersect
