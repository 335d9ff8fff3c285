package application

import (
	"github.com/pogojump/pogojump-api/pkg/validation"
)

// checkInput runs the struct validator over in. The first failing rule picks
// the caller-facing message; every failure is listed in the details.
func checkInput(in any, message func(field, tag string) string) error {
	err := validation.Struct(in)
	if err == nil {
		return nil
	}
	field, tag, _ := validation.FirstFailure(err)
	return Validation(message(field, tag), validation.ToDetails(err))
}

func fixed(msg string) func(string, string) string {
	return func(string, string) string { return msg }
}
