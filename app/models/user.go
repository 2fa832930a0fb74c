package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	emailRE    = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRE.MatchString(fl.Field().String())
	})
	v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailRE.MatchString(fl.Field().String())
	})
	return v
}

// ValidUsername reports whether name is 3-20 chars of letters, digits,
// underscore or hyphen.
func ValidUsername(name string) bool {
	return usernameRE.MatchString(name)
}

// ValidPassword reports whether password is 3-20 chars.
func ValidPassword(password string) bool {
	return len(password) >= 3 && len(password) <= 20
}

// ValidEmail reports whether email is empty or loosely well-formed.
func ValidEmail(email string) bool {
	return email == "" || emailRE.MatchString(email)
}

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}

	if u.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}
