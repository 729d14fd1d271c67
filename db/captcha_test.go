package db

import (
	"testing"

	. "github.com/hibiki-board/hibiki/test"
)

func TestCaptchaConsumedOnce(t *testing.T) {
	assertTableClear(t, "captchas")

	const id = "00112233445566778899aabbccddeeff"
	if err := InsertCaptcha(id, "abc123"); err != nil {
		t.Fatal(err)
	}

	solution, found, err := ConsumeCaptcha(id)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("challenge not found")
	}
	AssertEquals(t, solution, "abc123")

	// Consumed regardless of the answer's correctness
	_, found, err = ConsumeCaptcha(id)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("challenge usable twice")
	}
}

func TestConsumeUnknownCaptcha(t *testing.T) {
	assertTableClear(t, "captchas")

	_, found, err := ConsumeCaptcha("ffffffffffffffffffffffffffffffff")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("unknown challenge found")
	}
}
