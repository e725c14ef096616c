/*
File    : gomixlite/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "strconv"

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter reports whether c is an ASCII letter, per spec.md's Non-goal of
// ASCII-only identifiers.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseInt converts a scanned digit run to an int64. The lexer only calls
// this with text it has already validated as all-digit, so the error is
// unreachable in practice.
func parseInt(text string) int64 {
	n, _ := strconv.ParseInt(text, 10, 64)
	return n
}

// parseFloat converts a scanned digit run containing one '.' to a float64.
func parseFloat(text string) float64 {
	f, _ := strconv.ParseFloat(text, 64)
	return f
}
