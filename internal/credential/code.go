package credential

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewManualCode returns a random code in the XXXX-XXXX format.
func NewManualCode() (string, error) {
	var b strings.Builder
	b.Grow(9)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < 8; i++ {
		if i == 4 {
			b.WriteByte('-')
		}
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// ParseManualCode checks the literal format only. Input is not normalised:
// "ab12-c3f4" is malformed.
func ParseManualCode(code string) (string, error) {
	if !domain.IsManualCode(code) {
		return "", fmt.Errorf("%w: expected XXXX-XXXX with uppercase letters and digits", domain.ErrMalformedCode)
	}
	return code, nil
}
