package db

import (
	"database/sql"

	"github.com/hibiki-board/hibiki/common"
	"github.com/lib/pq"
)

// Post is for writing new posts to the database. It contains the IP and
// resolved reply targets, which are never exposed publically through
// common.Post.
type Post struct {
	common.Post

	// Posts on the same board this post referenced in its text body
	Links []uint64

	IP string
}

// InsertThread allocates a new per-board post ID and inserts a
// thread-opening post together with its reply edges in one transaction.
// Sets p.ID and p.Thread.
func InsertThread(p *Post) (id uint64, err error) {
	err = InTransaction(func(tx *sql.Tx) (err error) {
		id, err = bumpPostCounter(tx, p.Board)
		if err != nil {
			return
		}
		p.ID = id
		p.Thread = id
		err = insertPost(tx, p)
		if err != nil {
			return
		}
		return writeReplies(tx, p)
	})
	return
}

// InsertReply allocates a new per-board post ID and inserts a reply into an
// existing thread together with its reply edges in one transaction. p.Thread
// must be set by the caller. Sets p.ID.
func InsertReply(p *Post) (id uint64, err error) {
	err = InTransaction(func(tx *sql.Tx) (err error) {
		id, err = bumpPostCounter(tx, p.Board)
		if err != nil {
			return
		}
		p.ID = id
		err = insertPost(tx, p)
		if err != nil {
			return
		}
		return writeReplies(tx, p)
	})
	return
}

// Atomically increment and read back the board's post counter. Must be the
// first write of the post insertion transaction, so concurrent posters on
// one board serialize on the board row and a rollback does not burn an ID.
func bumpPostCounter(tx *sql.Tx, board string) (id uint64, err error) {
	err = tx.
		QueryRow(
			`update boards
			set next_post_id = next_post_id + 1
			where name = $1
			returning next_post_id`,
			board,
		).
		Scan(&id)
	if err == sql.ErrNoRows {
		err = common.ErrInvalidBoard(board)
	}
	return
}

func insertPost(tx *sql.Tx, p *Post) (err error) {
	_, err = tx.Exec(
		`insert into posts (
			id, board, thread, title, author, email, sage,
			plaintext_content, html_content, ip, image
		) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Board, p.Thread,
		nullString(p.Title), nullString(p.Author), nullString(p.Email),
		p.Sage,
		nullString(p.Body), p.HTML, p.IP, nullString(p.Image),
	)
	if IsForeignKeyError(err) {
		// Only the thread reference can fail here. The board was
		// already matched by the counter update.
		err = common.ErrInvalidThread(p.Thread, p.Board)
	}
	return
}

// Record an edge from every referenced post to the new post
func writeReplies(tx *sql.Tx, p *Post) (err error) {
	for _, target := range p.Links {
		_, err = tx.Exec(
			`insert into replies (
				message_id, message_board, reply_id, reply_board,
				reply_thread
			) values ($1, $2, $3, $2, $4)`,
			target, p.Board, p.ID, p.Thread,
		)
		if err != nil {
			return
		}
	}
	return
}

// GetReplyTargets resolves candidate reply IDs against existing posts on the
// board. Returns a map of post ID to its thread for each ID that exists.
func GetReplyTargets(board string, ids []uint64) (
	targets map[uint64]uint64, err error,
) {
	arr := make([]int64, len(ids))
	for i, id := range ids {
		arr[i] = int64(id)
	}

	r, err := db.Query(
		`select id, thread
		from posts
		where board = $1 and id = any($2)`,
		board, pq.Array(arr),
	)
	if err != nil {
		return
	}
	defer r.Close()

	targets = make(map[uint64]uint64, len(ids))
	for r.Next() {
		var id, thread uint64
		err = r.Scan(&id, &thread)
		if err != nil {
			return
		}
		targets[id] = thread
	}
	err = r.Err()
	return
}
