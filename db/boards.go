package db

import (
	"database/sql"

	"github.com/hibiki-board/hibiki/common"
)

// ErrBoardNameTaken denotes a board name the admin is trying to create is
// already taken
var ErrBoardNameTaken = common.ErrInvalidInput("board name already taken")

// AllBoards returns all existing boards ordered by name
func AllBoards() (boards []common.Board, err error) {
	r, err := sq.Select("name", "title").
		From("boards").
		OrderBy("name").
		Query()
	if err != nil {
		return
	}
	defer r.Close()

	boards = make([]common.Board, 0, 8)
	for r.Next() {
		var b common.Board
		err = r.Scan(&b.Name, &b.Title)
		if err != nil {
			return
		}
		boards = append(boards, b)
	}
	err = r.Err()
	return
}

// GetBoard returns a board by name
func GetBoard(name string) (b common.Board, err error) {
	err = sq.Select("name", "title").
		From("boards").
		Where("name = ?", name).
		QueryRow().
		Scan(&b.Name, &b.Title)
	if err == sql.ErrNoRows {
		err = common.ErrInvalidBoard(name)
	}
	return
}

// WriteBoard creates a new board. Only reachable through admin actions.
func WriteBoard(name, title string) (err error) {
	_, err = sq.Insert("boards").
		Columns("name", "title").
		Values(name, title).
		Exec()
	if IsConflictError(err) {
		err = ErrBoardNameTaken
	}
	return
}
