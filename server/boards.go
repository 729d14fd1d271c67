package server

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/hibiki-board/hibiki/auth"
	"github.com/hibiki-board/hibiki/common"
	"github.com/hibiki-board/hibiki/db"
)

// Serve the list of all boards
func serveBoardList(w http.ResponseWriter, r *http.Request) {
	boards, err := db.AllBoards()
	if err != nil {
		httpError(w, r, err)
		return
	}
	serveJSON(w, r, boards)
}

// Serve the bump-ordered thread listing of a board
func serveBoardThreads(
	w http.ResponseWriter,
	r *http.Request,
	p map[string]string,
) {
	board, err := db.GetBoard(p["board"])
	if err != nil {
		httpError(w, r, err)
		return
	}
	threads, err := db.Threads(board.Name)
	if err != nil {
		httpError(w, r, err)
		return
	}
	serveJSON(w, r, struct {
		common.Board
		Threads []common.Post `json:"threads"`
	}{board, threads})
}

// Serve all posts of a thread together with their back-links
func serveThreadPosts(
	w http.ResponseWriter,
	r *http.Request,
	p map[string]string,
) {
	thread, err := strconv.ParseUint(p["thread"], 10, 64)
	if err != nil {
		text404(w, r)
		return
	}
	posts, err := db.PostsInThread(p["board"], thread)
	if err != nil {
		httpError(w, r, err)
		return
	}

	type postWithReplies struct {
		common.Post
		Replies []common.Reply `json:"replies,omitempty"`
	}
	out := make([]postWithReplies, len(posts))
	for i, post := range posts {
		out[i].Post = post
		out[i].Replies, err = db.RepliesTo(post.Board, post.ID)
		if err != nil {
			httpError(w, r, err)
			return
		}
	}
	serveJSON(w, r, out)
}

// Issue a new captcha challenge for a post form
func serveNewCaptcha(w http.ResponseWriter, r *http.Request) {
	c, err := auth.NewCaptcha()
	if err != nil {
		httpError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:  "captcha_id",
		Value: c.ID,
		Path:  "/",
	})
	serveJSON(w, r, struct {
		ID    string `json:"id"`
		Image string `json:"image"`
	}{c.ID, base64.StdEncoding.EncodeToString(c.Image)})
}
