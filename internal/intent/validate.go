package intent

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate caches struct metadata; validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("has_text", hasText)
	return v
}

// hasText accepts a string slice with at least one non-blank element.
func hasText(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		if strings.TrimSpace(field.Index(i).String()) != "" {
			return true
		}
	}
	return false
}

// Validate checks every entry and collects structural errors, duplicate tags
// and the tag distribution. It never stops at the first problem.
func Validate(entries []Entry) Report {
	report := Report{
		Total:         len(entries),
		DuplicateTags: map[string]int{},
	}

	counts := map[string]int{}
	var order []string

	for i, e := range entries {
		tag := strings.TrimSpace(e.Tag)
		e.Tag = tag

		if _, seen := counts[tag]; !seen {
			order = append(order, tag)
		}
		counts[tag]++

		report.Errors = append(report.Errors, entryErrors(i, e)...)
	}

	for _, tag := range order {
		report.Distribution = append(report.Distribution, TagCount{Tag: tag, Count: counts[tag]})
		if counts[tag] > 1 {
			report.DuplicateTags[tag] = counts[tag]
		}
	}

	return report
}

func entryErrors(i int, e Entry) []string {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{fmt.Sprintf("[Intent %d] %v", i, err)}
	}

	label := e.Tag
	if label == "" {
		label = fmt.Sprintf("Intent %d", i)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(label, fe))
	}
	return msgs
}

func fieldMessage(label string, fe validator.FieldError) string {
	switch fe.Field() {
	case "Tag":
		return fmt.Sprintf("[%s] Missing tag.", label)
	case "Patterns":
		if fe.Tag() == "has_text" {
			return fmt.Sprintf("[%s] Patterns are empty strings.", label)
		}
		return fmt.Sprintf("[%s] No patterns.", label)
	case "Responses":
		if fe.Tag() == "has_text" {
			return fmt.Sprintf("[%s] Responses are empty strings.", label)
		}
		return fmt.Sprintf("[%s] No responses.", label)
	default:
		return fmt.Sprintf("[%s] %s failed %s.", label, fe.Field(), fe.Tag())
	}
}
