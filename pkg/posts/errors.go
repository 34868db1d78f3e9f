package posts

import (
	"fmt"
	"unicode/utf8"
)

// MaxContentLength is measured in Unicode code points (runes).
const MaxContentLength = 280

type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

func validateContent(content string) error {
	length := utf8.RuneCountInString(content)
	if length == 0 {
		return &ValidationError{Field: "content", Msg: "cannot be blank"}
	}

	if length > MaxContentLength {
		return &ValidationError{Field: "content",
			Msg: fmt.Sprintf("must be at most %d characters long", MaxContentLength)}
	}

	return nil
}
