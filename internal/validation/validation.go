// Package validation checks submitted thread and reply payloads before
// anything reaches persistence. A request is rejected in full if any
// field is invalid; the resulting error joins every field violation
// into a single 400 message.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/coding-gurus/forum/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ThreadPayload struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

type ReplyPayload struct {
	ReplyContent string `validate:"required"`
}

// form-facing names used in violation messages
var fieldNames = map[string]string{
	"Title":        "thread.title",
	"Content":      "thread.content",
	"ReplyContent": "reply.replyContent",
}

func Thread(p ThreadPayload) error {
	return check(p)
}

func Reply(p ReplyPayload) error {
	return check(p)
}

func check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.BadRequest("Invalid payload")
	}

	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		name := fieldNames[v.Field()]
		if name == "" {
			name = v.Field()
		}
		messages = append(messages, `"`+name+`" is not allowed to be empty`)
	}
	return apperr.BadRequest(strings.Join(messages, ", "))
}
