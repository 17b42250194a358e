package hof

import (
	"regexp"

	validator "github.com/go-playground/validator/v10"
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	validate    = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	// alphaspace: one or more ASCII letters or spaces
	if err := v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidName reports whether name is accepted by User.SetName
func ValidName(name string) bool {
	return validate.Var(name, "alphaspace") == nil
}

// User holds a name that only ever contains letters and spaces.
type User struct {
	name string
}

// NewUser creates a user with an empty name
func NewUser() *User {
	return &User{}
}

// SetName stores candidate if it is a valid name. It returns false and
// keeps the previous name otherwise.
func (u *User) SetName(candidate string) bool {
	if !ValidName(candidate) {
		return false
	}
	u.name = candidate
	return true
}

// Name returns the last accepted name, or "" if none was set
func (u *User) Name() string {
	return u.name
}
