package validators

import (
	"log"
	"regexp"
	"strings"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
)

func ValidateUser(user *models.User) []error {
	var errors []error
	if user == nil {
		errors = append(errors, errs.ErrInvalidUser)
		return errors
	}

	if user.Email == "" || !ValidateEmail(user.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	if !ValidatePassword(user.Password) {
		errors = append(errors, errs.ErrInvalidPassword)
	}

	if len(strings.TrimSpace(user.FirstName)) < 2 {
		errors = append(errors, errs.ErrFirstName)
	}

	if len(strings.TrimSpace(user.LastName)) < 2 {
		errors = append(errors, errs.ErrLastName)
	}
	return errors
}

func ValidateEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	regex, err := regexp.Compile(pattern)
	if err != nil {
		log.Println("Error compiling regular expression:", err)
		return false
	}
	return regex.MatchString(email)
}

func ValidatePassword(password string) bool {
	// At least 8 characters from the allowed set.
	pattern := `^(?:[0-9a-zA-Z@#$%^&+=!]{8,})$`
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return regex.MatchString(password)
}
