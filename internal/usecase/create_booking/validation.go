package create_booking

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/studio-booking/internal/domain"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dateRegexp  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("basicemail", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return dateRegexp.MatchString(fl.Field().String())
	})
	return v
}

// normalizeRequest обрезает пробелы во всех полях формы
func normalizeRequest(req *Request) *Request {
	return &Request{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Date:    strings.TrimSpace(req.Date),
		Time:    strings.TrimSpace(req.Time),
		Message: strings.TrimSpace(req.Message),
	}
}

// validateRequest проверяет форму в порядке: имя, email, наличие даты и времени, формат даты.
// Возвращается первая ошибка в этом порядке.
func validateRequest(req *Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewFieldError("form", domain.MsgTryAgain, nil)
	}

	failed := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Field()] = fe.Tag()
	}

	if _, ok := failed["Name"]; ok {
		return domain.NewFieldError("name", domain.MsgNameRequired, nil)
	}
	if _, ok := failed["Email"]; ok {
		return domain.NewFieldError("email", domain.MsgEmailInvalid, nil)
	}
	if failed["Date"] == "required" || failed["Time"] == "required" {
		return domain.NewFieldError("date", domain.MsgDateTimeRequired, nil)
	}
	if _, ok := failed["Date"]; ok {
		return domain.NewFieldError("date", domain.MsgInvalidDate, domain.ErrInvalidDate)
	}

	return domain.NewFieldError("form", domain.MsgTryAgain, nil)
}
