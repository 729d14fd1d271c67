package db

import "testing"

func TestImageDedup(t *testing.T) {
	assertTableClear(t, "replies", "posts", "images")

	const hash = "0123456789abcdef0123456789abcdef"
	exists, err := ImageExists(hash)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("unknown image exists")
	}

	if err := InsertImage(hash); err != nil {
		t.Fatal(err)
	}
	exists, err = ImageExists(hash)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("inserted image missing")
	}

	// The concurrent duplicate insert must be a no-op
	if err := InsertImage(hash); err != nil {
		t.Fatal(err)
	}
}
