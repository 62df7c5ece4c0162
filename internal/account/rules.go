package account

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/giannis-supplies/storefront/internal/models"
)

// Patterns match the registration form contract: a single @ with a dot in the
// domain part, usernames of 3-20 word characters.
var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failing field of a submission, in rule
// order, instead of stopping at the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	fields := make([]string, len(v))
	for i, fe := range v {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// registerRule checks one field against the input and the already registered
// users; an empty message means the field passed.
type registerRule struct {
	field string
	check func(in RegisterInput, users []models.User) string
}

var registerRules = []registerRule{
	{
		field: "fullname",
		check: func(in RegisterInput, _ []models.User) string {
			if strings.TrimSpace(in.FullName) == "" {
				return "Full name is required"
			}
			return ""
		},
	},
	{
		field: "email",
		check: func(in RegisterInput, _ []models.User) string {
			if !emailPattern.MatchString(in.Email) {
				return "Please enter a valid email"
			}
			return ""
		},
	},
	{
		field: "email",
		check: func(in RegisterInput, users []models.User) string {
			if !emailPattern.MatchString(in.Email) {
				return ""
			}
			for _, u := range users {
				if strings.EqualFold(u.Email, in.Email) {
					return "Email already registered"
				}
			}
			return ""
		},
	},
	{
		field: "dob",
		check: func(in RegisterInput, _ []models.User) string {
			if strings.TrimSpace(in.DateOfBirth) == "" {
				return "Date of birth is required"
			}
			return ""
		},
	},
	{
		field: "username",
		check: func(in RegisterInput, _ []models.User) string {
			if !usernamePattern.MatchString(in.Username) {
				return "Username must be 3-20 characters (letters, numbers, underscore)"
			}
			return ""
		},
	},
	{
		field: "username",
		check: func(in RegisterInput, users []models.User) string {
			if !usernamePattern.MatchString(in.Username) {
				return ""
			}
			for _, u := range users {
				if strings.EqualFold(u.Username, in.Username) {
					return "Username already taken"
				}
			}
			return ""
		},
	},
	{
		field: "password",
		check: func(in RegisterInput, _ []models.User) string {
			if len(in.Password) < 6 {
				return "Password must be at least 6 characters"
			}
			return ""
		},
	},
}

func validateRegistration(in RegisterInput, users []models.User) ValidationErrors {
	var errs ValidationErrors
	for _, r := range registerRules {
		if msg := r.check(in, users); msg != "" {
			errs = append(errs, FieldError{Field: r.field, Message: msg})
		}
	}
	return errs
}
