package ordercode

import (
	"crypto/rand"
	"fmt"
)

// Alphabet for order numbers (36 characters: 0-9, A-Z). Uppercase only so
// numbers survive being read over the phone.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const numberLength = 10

// NewOrderNumber returns a fresh order number like "WF-4KQ9X2M7TB".
// Collisions are handled by the unique index on orders.order_number.
func NewOrderNumber() (string, error) {
	code, err := randomCode(numberLength)
	if err != nil {
		return "", err
	}
	return "WF-" + code, nil
}

// randomCode creates a cryptographically secure random code using rejection
// sampling to avoid modulo bias. 252 is the largest multiple of 36 below 256.
func randomCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length: %d", length)
	}

	const maxRandomByte = 252

	code := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			code[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(code), nil
}
