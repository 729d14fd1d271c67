package util

import (
	"errors"
	"testing"

	. "github.com/hibiki-board/hibiki/test"
)

func TestWrapError(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := WrapError("outer", inner)
	if err.Error() != "outer: inner" {
		LogUnexpected(t, "outer: inner", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Fatal("inner error not unwrappable")
	}
}

func TestWaterfall(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		ran := 0
		err := Waterfall(
			func() error {
				ran++
				return nil
			},
			func() error {
				ran++
				return nil
			},
		)
		if err != nil {
			t.Fatal(err)
		}
		AssertEquals(t, ran, 2)
	})

	t.Run("stops on first error", func(t *testing.T) {
		std := errors.New("failed")
		ran := 0
		err := Waterfall(
			func() error {
				ran++
				return std
			},
			func() error {
				ran++
				return nil
			},
		)
		if err != std {
			UnexpectedError(t, err)
		}
		AssertEquals(t, ran, 1)
	})
}

func TestHashBuffer(t *testing.T) {
	t.Parallel()

	hash := HashBuffer([]byte("hibiki"))
	if len(hash) != 32 {
		t.Fatalf("unexpected digest length: %d", len(hash))
	}
	// Identical content must produce identical digests
	AssertEquals(t, HashBuffer([]byte("hibiki")), hash)
	if HashBuffer([]byte("hibiki2")) == hash {
		t.Fatal("distinct content with equal digests")
	}
}
