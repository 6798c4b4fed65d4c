package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	specialCharRegex = regexp.MustCompile(`[!@#~$%^&*()+|_.,<>?/\\{}\[\]-]`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 &&
		specialCharRegex.MatchString(password) &&
		uppercaseRegex.MatchString(password)
}
