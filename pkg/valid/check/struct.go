package check

import (
	"github.com/go-playground/validator/v10"

	"github.com/ib-77/valid3/pkg/valid"
)

var structValidate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs tag-based struct validation over the candidate, converting
// every field error into a core Error whose message is the failed tag and
// whose context is the field namespace. All field errors are reported, not
// just the first. The candidate must be a struct or a pointer to one,
// anything else panics inside the underlying validator.
func Struct[T any]() Validator[T] {
	return func(c T) valid.Result[T] {
		err := structValidate.Struct(c)
		if err == nil {
			return valid.Success(c)
		}

		ferrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return valid.Fail[T](valid.NewError(c, err.Error(), checkContext))
		}

		errs := make([]valid.Error, len(ferrs))
		for i, fe := range ferrs {
			errs[i] = valid.NewError(fe.Value(), fe.Tag(), fe.Namespace())
		}
		return valid.Fail[T](errs...)
	}
}
