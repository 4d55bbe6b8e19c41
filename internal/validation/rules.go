package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/deppfellow/promo-event/internal/model"
)

// notSpace excludes the same characters the browser's \s does: ASCII
// whitespace, vertical tab, Unicode separators and BOM.
const notSpace = `[^\s\v\pZ\x{FEFF}@]`

var (
	// Only 010 mobile numbers, hyphenated 3-4-4.
	phoneRegex = regexp.MustCompile(`^010-\d{4}-\d{4}$`)
	emailRegex = regexp.MustCompile(`^` + notSpace + `+@` + notSpace + `+\.` + notSpace + `+$`)
)

// Validator applies the field rules with a given message catalog.
type Validator struct {
	messages Messages
}

// New returns a Validator that answers with messages.
func New(messages Messages) *Validator {
	return &Validator{messages: messages}
}

var defaultValidator = New(English)

// isBlank reports whether s is empty once ECMAScript whitespace is trimmed.
// That set includes U+FEFF but not U+0085, unlike unicode.IsSpace.
func isBlank(s string) bool {
	return strings.TrimFunc(s, isTrimmable) == ""
}

func isTrimmable(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Name requires a value that is not blank after trimming.
func (v *Validator) Name(name string) string {
	if isBlank(name) {
		return v.messages.NameRequired
	}
	return ""
}

// Phone requires a value shaped like 010-1234-5678. The pattern is matched
// against the raw input, so surrounding spaces make it invalid.
func (v *Validator) Phone(phone string) string {
	if isBlank(phone) {
		return v.messages.PhoneRequired
	}
	if !phoneRegex.MatchString(phone) {
		return v.messages.PhoneFormat
	}
	return ""
}

// Email requires local@domain.tld with no whitespace and a dot in the domain.
func (v *Validator) Email(email string) string {
	if isBlank(email) {
		return v.messages.EmailRequired
	}
	if !emailRegex.MatchString(email) {
		return v.messages.EmailFormat
	}
	return ""
}

// AgreedTerms requires the terms checkbox to be ticked.
func (v *Validator) AgreedTerms(agreed bool) string {
	if !agreed {
		return v.messages.TermsRequired
	}
	return ""
}

// UserInfo runs the four field rules and collects the results.
func (v *Validator) UserInfo(info model.UserInfo) ValidationErrors {
	return ValidationErrors{
		Name:        v.Name(info.Name),
		Phone:       v.Phone(info.Phone),
		Email:       v.Email(info.Email),
		AgreedTerms: v.AgreedTerms(info.AgreedTerms),
	}
}

// ValidateName validates with the English catalog.
func ValidateName(name string) string { return defaultValidator.Name(name) }

// ValidatePhone validates with the English catalog.
func ValidatePhone(phone string) string { return defaultValidator.Phone(phone) }

// ValidateEmail validates with the English catalog.
func ValidateEmail(email string) string { return defaultValidator.Email(email) }

// ValidateAgreedTerms validates with the English catalog.
func ValidateAgreedTerms(agreed bool) string { return defaultValidator.AgreedTerms(agreed) }

// ValidateUserInfo validates every field with the English catalog.
func ValidateUserInfo(info model.UserInfo) ValidationErrors {
	return defaultValidator.UserInfo(info)
}
