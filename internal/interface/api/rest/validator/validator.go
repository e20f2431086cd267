package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"tourist-registry-api/internal/interface/api/rest/dto/auth"
	"tourist-registry-api/internal/interface/api/rest/dto/registration"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

var (
	e164Re = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
	codeRe = regexp.MustCompile(`^\d{6}$`)
)

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func ValidateSendCode(r registration.SendCodeRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(email) {
		errs["email"] = "invalid email format"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateVerifyCode(r registration.VerifyCodeRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(email) {
		errs["email"] = "invalid email format"
	}

	if r.Code == "" {
		errs["code"] = "code is required"
	} else if !codeRe.MatchString(r.Code) {
		errs["code"] = "code must be 6 digits"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegistration(r registration.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.TrimSpace(r.Email)
	names := norm.NFC.String(strings.TrimSpace(r.Names))
	last := norm.NFC.String(strings.TrimSpace(r.LastNames))
	bdate := strings.TrimSpace(r.BirthDate)
	phone := strings.TrimSpace(r.Phone)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(email) {
		errs["email"] = "invalid email format"
	}

	// names (required + length + allowed chars)
	if names == "" {
		errs["names"] = "names is required"
	} else if l := utf8.RuneCountInString(names); l < 2 || l > 64 {
		errs["names"] = "names length must be 2–64 characters"
	} else if !isHumanName(names) {
		errs["names"] = "allowed characters: letters, space, '-', '''"
	}

	// last_names (required + length + allowed chars)
	if last == "" {
		errs["last_names"] = "last_names is required"
	} else if l := utf8.RuneCountInString(last); l < 2 || l > 64 {
		errs["last_names"] = "last_names length must be 2–64 characters"
	} else if !isHumanName(last) {
		errs["last_names"] = "allowed characters: letters, space, '-', '''"
	}

	// birth_date (required + format + 18+)
	if bdate == "" {
		errs["birth_date"] = "birth_date is required"
	} else if dob, err := time.Parse("2006-01-02", bdate); err != nil {
		errs["birth_date"] = "must be YYYY-MM-DD"
	} else if dob.After(time.Now().UTC().AddDate(-18, 0, 0)) {
		errs["birth_date"] = "user must be 18+ years old"
	}

	// phone (required + E.164)
	if phone == "" {
		errs["phone"] = "phone is required"
	} else if !e164Re.MatchString(phone) {
		errs["phone"] = "must be in E.164 format (e.g., +33788888888)"
	}

	// role flags cannot both be set
	if r.IsTourist && r.IsAgency {
		errs["role"] = "account cannot be both tourist and agency"
	}

	// consent flags must both be accepted
	if !r.AcceptPolicy {
		errs["accept_policy"] = "policy acceptance is required"
	}
	if !r.AcceptDataProcessing {
		errs["accept_data_processing"] = "data processing acceptance is required"
	}

	// document number is required once a document type is referenced
	if r.DocumentTypeID != nil && strings.TrimSpace(r.DocumentNumber) == "" {
		errs["document_number"] = "document_number is required"
	}

	// password (required + length)
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := len(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.TrimSpace(r.Email)
	password := r.Password

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if !validEmail(email) {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
