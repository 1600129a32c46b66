// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformed is returned when a record cannot be parsed, misses a
// required field, or carries an out-of-range value.
var ErrMalformed = errors.New("codec: malformed record")

// ErrUnknownFormat is returned for a serialization format other than json or yaml.
var ErrUnknownFormat = errors.New("codec: unknown format")

// recordValidate checks the struct tags of every record type. Field names
// in its messages are the wire names.
var recordValidate *validator.Validate

func init() {
	recordValidate = validator.New(validator.WithRequiredStructEnabled())
	recordValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateRecord runs the tag validation and folds failures into ErrMalformed.
func validateRecord(v any) error {
	if err := recordValidate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: invalid fields: %s", ErrMalformed, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// malformedf builds an ErrMalformed with context.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
