package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/alumnet/backend/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct runs struct tag validation and wraps failures in the
// validation sentinel so handlers map them to 400.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("%w: field %s failed on %s", apperrors.ErrValidation, first.Field(), first.Tag())
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
