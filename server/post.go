package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/hibiki-board/hibiki/auth"
	"github.com/hibiki-board/hibiki/common"
	"github.com/hibiki-board/hibiki/config"
	"github.com/hibiki-board/hibiki/db"
	"github.com/hibiki-board/hibiki/imager"
	"github.com/hibiki-board/hibiki/parser"
)

// Handle the post creation request: authorize the writer, store any
// attachment, render the body and commit the post
func createPost(w http.ResponseWriter, r *http.Request) {
	ip, err := clientIP(r)
	if err != nil {
		httpError(w, r, err)
		return
	}

	// Cap the entire request body at the upload limit before any form
	// parsing can buffer it
	r.Body = http.MaxBytesReader(w, r.Body, config.Server.Images.MaxSize)
	err = r.ParseMultipartForm(512)
	if err != nil {
		httpError(w, r, common.ErrUploadTooLarge)
		return
	}

	// Abuse gate. The ban rejection is a client response carrying the
	// reason, not a server fault.
	err = db.IsBanned(ip)
	if err != nil {
		httpError(w, r, err)
		return
	}
	err = checkCaptcha(r)
	if err != nil {
		httpError(w, r, err)
		return
	}

	p := db.Post{
		Post: common.Post{
			Board:  r.FormValue("board"),
			Title:  r.FormValue("title"),
			Author: r.FormValue("author"),
			Email:  r.FormValue("email"),
			Sage:   r.FormValue("sage") != "",
			Body:   r.FormValue("content"),
		},
		IP: ip,
	}
	err = validateFields(&p)
	if err != nil {
		httpError(w, r, err)
		return
	}

	p.Image, err = saveUpload(r)
	if err != nil {
		httpError(w, r, err)
		return
	}

	p.HTML, p.Links, err = parser.Render(p.Board, p.Body,
		func(ids []uint64) (map[uint64]uint64, error) {
			return db.GetReplyTargets(p.Board, ids)
		})
	if err != nil {
		httpError(w, r, err)
		return
	}

	var id uint64
	if thread := r.FormValue("thread"); thread != "" {
		p.Thread, err = strconv.ParseUint(thread, 10, 64)
		if err != nil {
			httpError(w, r, common.ErrInvalidInput("thread"))
			return
		}
		id, err = db.InsertReply(&p)
	} else {
		if p.Image == "" {
			httpError(w, r, common.ErrMissingImage)
			return
		}
		id, err = db.InsertThread(&p)
	}
	if err != nil {
		httpError(w, r, err)
		return
	}

	serveJSON(w, r, struct {
		ID     uint64 `json:"id"`
		Thread uint64 `json:"thread"`
	}{id, p.Thread})
}

// The challenge ID travels on the cookie set with the post form; the answer
// on the form itself. A missing or malformed ID rejects before any
// verification; verification itself consumes the challenge either way.
func checkCaptcha(r *http.Request) (err error) {
	c, err := r.Cookie("captcha_id")
	if err != nil || c.Value == "" {
		return common.ErrMissingCaptcha
	}
	solved, err := auth.VerifyCaptcha(c.Value, r.FormValue("captcha"))
	if err != nil {
		return
	}
	if !solved {
		return common.ErrInvalidCaptcha
	}
	return
}

func validateFields(p *db.Post) error {
	switch {
	case p.Board == "":
		return common.ErrInvalidInput("board")
	case len(p.Title) > common.MaxLenTitle:
		return common.ErrTitleTooLong
	case len(p.Author) > common.MaxLenAuthor:
		return common.ErrNameTooLong
	case len(p.Email) > common.MaxLenEmail:
		return common.ErrTooLong("email")
	case len(p.Body) > common.MaxLenBody:
		return common.ErrBodyTooLong
	}
	return nil
}

// Read an optional image attachment and store it content-addressed.
// Returns the empty string, if the request carries no attachment.
func saveUpload(r *http.Request) (hash string, err error) {
	file, _, err := r.FormFile("image")
	switch err {
	case nil:
	case http.ErrMissingFile:
		return "", nil
	default:
		return
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return
	}
	if len(buf) == 0 {
		err = common.ErrEmptyUpload
		return
	}
	return imager.EnsureStored(buf)
}
