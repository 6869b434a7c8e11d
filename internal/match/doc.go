// Package match applies a regular expression inside selection records.
//
// Patterns use the slash-delimited form scripts and users type, for example
// "/\d+/g". The flags are:
//
//	g  collect every match instead of only the first
//	i  case-insensitive
//	m  ^ and $ match at line breaks
//	s  . matches \n
//	u  accepted for compatibility; patterns are always UTF-8
//	y  sticky: each match must start where the previous one ended
//
// Decorate runs a pattern over a record's text and attaches one
// selection.Match per hit, with offsets translated to document coordinates.
package match
