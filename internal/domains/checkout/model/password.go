package model

import "unicode"

// =====================================================
// PASSWORD STRENGTH
// =====================================================
// Strength is descriptive only; the minimum-length rule is the sole
// hard gate. One point each for: length ≥ 8, an uppercase letter, a
// lowercase letter, a digit, a special character.

var strengthLabels = [6]string{
	"Very Weak",
	"Weak",
	"Fair",
	"Good",
	"Strong",
	"Very Strong",
}

// StrengthScore rates a password 0–5
func StrengthScore(password string) int {
	score := 0

	if len(password) >= 8 {
		score++
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if hasUpper {
		score++
	}
	if hasLower {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSpecial {
		score++
	}

	return score
}

// StrengthLabel maps a score to its descriptive label
func StrengthLabel(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return strengthLabels[score]
}
