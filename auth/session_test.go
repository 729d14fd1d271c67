package auth

import (
	"encoding/hex"
	"testing"
)

func TestNewToken(t *testing.T) {
	t.Parallel()

	a := NewToken()
	b := NewToken()
	if len(a) != 32 {
		t.Fatalf("unexpected token length: %d", len(a))
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("token collision")
	}
}
