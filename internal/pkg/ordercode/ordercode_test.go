package ordercode

import (
	"strings"
	"testing"
)

func TestNewOrderNumberFormat(t *testing.T) {
	t.Parallel()

	number, err := NewOrderNumber()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(number, "WF-") {
		t.Fatalf("expected WF- prefix, got %q", number)
	}
	code := strings.TrimPrefix(number, "WF-")
	if len(code) != numberLength {
		t.Fatalf("expected code length %d, got %d", numberLength, len(code))
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(alphabet, code[i]) == -1 {
			t.Fatalf("code contains invalid character %q", code[i])
		}
	}
}

func TestRandomCodeInvalidLength(t *testing.T) {
	t.Parallel()

	if _, err := randomCode(0); err == nil {
		t.Fatalf("expected error for invalid length")
	}
}

func TestNewOrderNumberUniqueWithinSmallBatch(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		number, err := NewOrderNumber()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, exists := seen[number]; exists {
			t.Fatalf("duplicate order number generated in small batch: %s", number)
		}
		seen[number] = struct{}{}
	}
}
