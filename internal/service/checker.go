package service

import (
	"StuffKeeper/internal/model/view"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Сообщения по полям. Порядок проверки задаётся порядком полей в view.User / view.Datum,
// validator обходит их сверху вниз, поэтому первой всегда приходит первая незаполненная.
var (
	userMessages = map[string]string{
		"ID":         "The id cannot be empty.",
		"GivenName":  "The given name cannot be empty.",
		"FamilyName": "The family name cannot be empty.",
		"Email":      "The email cannot be empty.",
	}
	datumMessages = map[string]string{
		"Label": "The label cannot be empty.",
	}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// CheckUser проверяет обязательные поля пользователя: id, имя, фамилию, email.
func CheckUser(u *view.User) error {
	return check(u, userMessages)
}

// CheckDatum проверяет обязательные поля записи: label.
func CheckDatum(d *view.Datum) error {
	return check(d, datumMessages)
}

func check(v any, messages map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if msg, ok := messages[fe.StructField()]; ok {
			return &ValidationError{Message: msg}
		}
	}
	return &ValidationError{Message: verrs[0].Error()}
}
