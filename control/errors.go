package control

import "fmt"

// maxErrorContext bounds the amount of unconsumed input quoted in a
// SyntaxError message.
const maxErrorContext = 40

// SyntaxError reports that the grammar could not match the input.
// Offset is the byte position of the failure; Rest is a bounded prefix
// of the unconsumed input at that position.
type SyntaxError struct {
	Offset   int
	Expected string
	Rest     string
}

func (e *SyntaxError) Error() string {
	if e.Rest == "" {
		return fmt.Sprintf("syntax error at offset %d: expected %s, got end of input", e.Offset, e.Expected)
	}
	return fmt.Sprintf("syntax error at offset %d: expected %s before %q", e.Offset, e.Expected, e.Rest)
}

// EncodingError reports a field name or value span that is not valid
// UTF-8. Offset is the byte position of the offending span.
type EncodingError struct {
	Offset int
	What   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in %s at offset %d", e.What, e.Offset)
}

// syntaxErr builds a SyntaxError at the cursor position, quoting a
// bounded snippet of the remaining input.
func syntaxErr(c cursor, expected string) *SyntaxError {
	rest := c.rest()
	if len(rest) > maxErrorContext {
		rest = rest[:maxErrorContext]
	}
	return &SyntaxError{Offset: c.pos, Expected: expected, Rest: string(rest)}
}
