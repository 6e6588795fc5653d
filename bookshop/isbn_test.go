package bookshop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambdacurry/bookmarket/bookshop"
)

func Test_IsISBN13(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{
			name:  "valid with hyphen after prefix",
			input: "978-3608963762",
			valid: true,
		},
		{
			name:  "valid with full hyphenation",
			input: "978-1-098-10013-1",
			valid: true,
		},
		{
			name:  "valid without hyphens",
			input: "9783841335180",
			valid: true,
		},
		{
			name:  "wrong check digit",
			input: "978-3442267747",
			valid: false,
		},
		{
			name:  "another wrong check digit",
			input: "978-3442267819",
			valid: false,
		},
		{
			name:  "wrong length",
			input: "978-758245159",
			valid: false,
		},
		{
			name:  "non-digit characters",
			input: "978-36089637ab",
			valid: false,
		},
		{
			name:  "empty string",
			input: "",
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, bookshop.IsISBN13(tc.input))
		})
	}
}
