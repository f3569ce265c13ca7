package adapters

import (
	"fmt"
	"strings"
)

// CursorEncoder translates a UI page number into the upstream cursor value.
// An empty cursor means "first page" and is omitted from the request.
type CursorEncoder interface {
	Cursor(page int) string
}

// FormatCursor renders pages > 1 through a fmt verb, e.g. "page_%d".
type FormatCursor string

const DefaultCursorFormat FormatCursor = "page_%d"

func (f FormatCursor) Cursor(page int) string {
	if page <= 1 {
		return ""
	}
	format := string(f)
	if !strings.Contains(format, "%d") {
		format = string(DefaultCursorFormat)
	}
	return fmt.Sprintf(format, page)
}

// CursorFunc adapts a plain function to CursorEncoder.
type CursorFunc func(page int) string

func (f CursorFunc) Cursor(page int) string {
	return f(page)
}
