package db

import (
	"testing"

	"github.com/hibiki-board/hibiki/common"
	. "github.com/hibiki-board/hibiki/test"
)

func TestBoards(t *testing.T) {
	assertTableClear(t, "replies", "posts", "boards")

	boards, err := AllBoards()
	if err != nil {
		t.Fatal(err)
	}
	AssertEquals(t, len(boards), 0)

	writeSampleBoard(t)
	if err := WriteBoard("g", "Technology"); err != nil {
		t.Fatal(err)
	}

	boards, err = AllBoards()
	if err != nil {
		t.Fatal(err)
	}
	AssertEquals(t, boards, []common.Board{
		{Name: "a", Title: "Animu & Mango"},
		{Name: "g", Title: "Technology"},
	})

	b, err := GetBoard("a")
	if err != nil {
		t.Fatal(err)
	}
	AssertEquals(t, b.Title, "Animu & Mango")

	_, err = GetBoard("z")
	AssertEquals(t, err, common.ErrInvalidBoard("z"))

	AssertEquals(t, WriteBoard("a", "Dupe"), ErrBoardNameTaken)
}
