package datasource

import (
	"errors"
	"fmt"
)

// ErrParse marks an unreadable source or a malformed row. A single bad row
// fails the entire load.
var ErrParse = errors.New("unparseable booking data")

// ParseError locates the failure inside the source. Row is the 1-based data
// row (0 when the whole source is at fault).
type ParseError struct {
	Err     error
	Source  string
	Row     int
	Column  string
	Details string
}

func (e *ParseError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("%s: row %d, column %s: %s", e.Source, e.Row, e.Column, e.Details)
	case e.Column != "":
		return fmt.Sprintf("%s: column %s: %s", e.Source, e.Column, e.Details)
	default:
		return fmt.Sprintf("%s: %s", e.Source, e.Details)
	}
}

// Unwrap returns the underlying sentinel.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(source string, row int, column string, details string) *ParseError {
	return &ParseError{
		Err:     ErrParse,
		Source:  source,
		Row:     row,
		Column:  column,
		Details: details,
	}
}

// IsParseError reports whether err came from loading or parsing the dataset.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
