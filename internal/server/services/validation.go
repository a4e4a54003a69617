package services

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/server/auth"
)

const maxFieldLength = 255

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{common.ErrorValidation}, args...)...)
}

func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < min || n > max {
		if min > 0 {
			return invalid("%s must be between %d and %d characters", field, min, max)
		}
		return invalid("%s must be at most %d characters", field, max)
	}
	return nil
}

func checkEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email is not a valid address")
	}
	return nil
}

// checkPassword accepts at least eight ASCII letters and digits, with at
// least one lower case letter, one upper case letter and one digit.
func checkPassword(password string) error {
	if len(password) < 8 || auth.IsPasswordTooLong(password) {
		return invalid("password must be between 8 and 72 characters")
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			return invalid("password may only contain letters and digits")
		}
	}
	if !lower || !upper || !digit {
		return invalid("password needs upper and lower case letters and a digit")
	}
	return nil
}

func checkProfile(username, email, firstName, lastName string) error {
	if err := checkLength("username", username, 5, maxFieldLength); err != nil {
		return err
	}
	if err := checkEmail(email); err != nil {
		return err
	}
	if err := checkLength("first name", firstName, 3, maxFieldLength); err != nil {
		return err
	}
	return checkLength("last name", lastName, 3, maxFieldLength)
}

func checkDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return invalid("start and end dates are required")
	}
	if start.After(end) {
		return invalid("start date is after end date")
	}
	return nil
}
