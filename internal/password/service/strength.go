package service

import (
	"strings"
	"unicode"
)

// maxScore caps the strength score.
const maxScore = 10

// varietyBonus is awarded when every criterion passes, lifting a
// fully-compliant password to the top of the scale.
const varietyBonus = 3

// commonPasswords is the denylist of passwords seen in every breach corpus.
// A case-insensitive substring match against any entry is a hard gate: the
// score drops to 0 no matter what the other criteria say.
var commonPasswords = []string{
	"password",
	"123456",
	"12345678",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"iloveyou",
	"admin",
	"monkey",
	"dragon",
}

// checkStrength evaluates the five strength criteria independently, collects
// a human-readable error for each one that fails, and sums the score.
func checkStrength(password string) StrengthResult {
	var errs []string
	score := 0

	switch {
	case len(password) >= 12:
		score += 2
	case len(password) >= 8:
		score++
	default:
		errs = append(errs, "password must be at least 8 characters")
	}

	if hasUpperCase(password) {
		score++
	} else {
		errs = append(errs, "password must contain at least one uppercase letter")
	}

	if hasLowerCase(password) {
		score++
	} else {
		errs = append(errs, "password must contain at least one lowercase letter")
	}

	if hasNumber(password) {
		score++
	} else {
		errs = append(errs, "password must contain at least one number")
	}

	if hasSpecialChar(password) {
		score += 2
	} else {
		errs = append(errs, "password must contain at least one special character")
	}

	if len(errs) == 0 {
		score += varietyBonus
	}
	if score > maxScore {
		score = maxScore
	}

	// The denylist overrides all other scoring.
	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lowered, common) {
			score = 0
			errs = append(errs, "password is too common")
			break
		}
	}

	return StrengthResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
		Score:   score,
	}
}

// hasUpperCase checks if the string contains uppercase letters
func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// hasLowerCase checks if the string contains lowercase letters
func hasLowerCase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// hasNumber checks if the string contains numbers
func hasNumber(s string) bool {
	for _, r := range s {
		if unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// hasSpecialChar checks if the string contains special characters
func hasSpecialChar(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}
