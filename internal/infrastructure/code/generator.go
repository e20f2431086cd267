package code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeSpace = 1000000 // "000000".."999999"

type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Generate draws a 6-digit code uniformly from crypto/rand. Codes are
// short-lived, so unpredictability matters more than length.
func (g *Generator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("confirmation code entropy: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
