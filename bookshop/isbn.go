package bookshop

import (
	"fmt"
	"strings"
)

// IsISBN13 reports whether input is a valid ISBN-13. Hyphens are stripped
// before validation; the remaining string must be exactly 13 digits whose
// final digit matches the weighted mod-10 checksum of the first twelve.
func IsISBN13(input string) bool {
	return validateISBN13(input) == nil
}

// validateISBN13 is the error-returning variant used at catalogue-entry time
// so that rejections carry a precise reason.
func validateISBN13(input string) error {
	digits := strings.ReplaceAll(input, "-", "")

	if len(digits) != 13 {
		return fmt.Errorf("%w: expected 13 digits, got %d", ErrInvalidISBN, len(digits))
	}

	weightedSum := 0

	for i := 0; i < 12; i++ {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return fmt.Errorf("%w: non-digit character %q", ErrInvalidISBN, ch)
		}

		if i%2 == 0 {
			weightedSum += int(ch - '0')
		} else {
			weightedSum += 3 * int(ch - '0')
		}
	}

	checkDigit := digits[12]
	if checkDigit < '0' || checkDigit > '9' {
		return fmt.Errorf("%w: non-digit character %q", ErrInvalidISBN, checkDigit)
	}

	if int(checkDigit-'0') != (10-weightedSum%10)%10 {
		return fmt.Errorf("%w: checksum mismatch for %q", ErrInvalidISBN, input)
	}

	return nil
}
