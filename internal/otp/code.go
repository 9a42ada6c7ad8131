package otp

import (
	"crypto/rand"
	"math/big"
)

// GenerateCode gera um código numérico de verificação com n dígitos.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		n = 6
	}

	const digits = "0123456789"
	code := make([]byte, n)
	for i := range code {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[idx.Int64()]
	}
	return string(code), nil
}
