package db

import (
	"database/sql"

	"github.com/hibiki-board/hibiki/common"
)

const postFields = `p.id, p.board, p.thread,
	coalesce(p.title, ''), coalesce(p.author, ''), coalesce(p.email, ''),
	p.sage, coalesce(p.plaintext_content, ''), p.html_content,
	p.posted_at, coalesce(p.image, '')`

// Threads returns the thread-opening posts of a board ordered by bump time.
// A thread's bump time is the latest posted_at among its non-sage posts;
// the thread-opening post always counts, even when saged.
func Threads(board string) (threads []common.Post, err error) {
	r, err := db.Query(
		`with bumps as (
			select thread, max(posted_at) as bumped_at
			from posts
			where board = $1 and (thread = id or not sage)
			group by thread
		)
		select `+postFields+`
		from posts p
		join bumps on p.thread = bumps.thread
		where p.board = $1 and p.id = p.thread
		order by bumps.bumped_at desc`,
		board,
	)
	if err != nil {
		return
	}
	defer r.Close()
	return scanPosts(r)
}

// PostsInThread returns all posts of a thread ordered by ID. A thread always
// contains at least its opening post, so an empty result means the thread
// does not exist.
func PostsInThread(board string, thread uint64) (
	posts []common.Post, err error,
) {
	r, err := db.Query(
		`select `+postFields+`
		from posts p
		where p.board = $1 and p.thread = $2
		order by p.id`,
		board, thread,
	)
	if err != nil {
		return
	}
	defer r.Close()

	posts, err = scanPosts(r)
	if err == nil && len(posts) == 0 {
		err = common.ErrInvalidThread(thread, board)
	}
	return
}

func scanPosts(r *sql.Rows) (posts []common.Post, err error) {
	posts = make([]common.Post, 0, 16)
	for r.Next() {
		var p common.Post
		err = r.Scan(
			&p.ID, &p.Board, &p.Thread,
			&p.Title, &p.Author, &p.Email,
			&p.Sage, &p.Body, &p.HTML,
			&p.PostedAt, &p.Image,
		)
		if err != nil {
			return
		}
		posts = append(posts, p)
	}
	err = r.Err()
	return
}
