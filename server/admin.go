package server

import (
	"net/http"
	"time"

	"github.com/hibiki-board/hibiki/auth"
	"github.com/hibiki-board/hibiki/common"
	"github.com/hibiki-board/hibiki/db"
)

// Log into an admin account and set the session cookie
func login(w http.ResponseWriter, r *http.Request) {
	token, err := auth.Login(r.FormValue("name"), r.FormValue("password"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/admin",
		HttpOnly: true,
	})
	serveJSON(w, r, struct {
		Token string `json:"token"`
	}{token})
}

// Resolve the requester's admin session or reject
func checkPrivilege(r *http.Request) (account string, err error) {
	c, err := r.Cookie("session")
	if err != nil {
		return "", common.ErrNoPermissions
	}
	return auth.CheckSession(c.Value)
}

// Register another admin account. Only existing admins can mint accounts;
// the first one is written with a default password on database creation.
func register(w http.ResponseWriter, r *http.Request) {
	_, err := checkPrivilege(r)
	if err != nil {
		httpError(w, r, err)
		return
	}

	name := r.FormValue("name")
	err = auth.Register(name, r.FormValue("password"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	serveJSON(w, r, struct {
		Name string `json:"name"`
	}{name})
}

// Create a new board. Admin-only.
func createBoard(w http.ResponseWriter, r *http.Request) {
	_, err := checkPrivilege(r)
	if err != nil {
		httpError(w, r, err)
		return
	}

	name := r.FormValue("name")
	title := r.FormValue("title")
	if name == "" || title == "" {
		httpError(w, r, common.ErrInvalidInput("board name and title"))
		return
	}
	if len(title) > common.MaxLenTitle {
		httpError(w, r, common.ErrTitleTooLong)
		return
	}

	err = db.WriteBoard(name, title)
	if err != nil {
		httpError(w, r, err)
		return
	}
	serveJSON(w, r, struct {
		Name string `json:"name"`
	}{name})
}

// Ban an IP or subnet. Admin-only.
func createBan(w http.ResponseWriter, r *http.Request) {
	_, err := checkPrivilege(r)
	if err != nil {
		httpError(w, r, err)
		return
	}

	length, err := time.ParseDuration(r.FormValue("duration"))
	if err != nil || length <= 0 {
		httpError(w, r, common.ErrInvalidInput("ban duration"))
		return
	}
	ip := r.FormValue("ip")
	if ip == "" {
		httpError(w, r, common.ErrInvalidInput("ip"))
		return
	}

	err = db.WriteBan(ip, r.FormValue("reason"), length)
	if err != nil {
		httpError(w, r, err)
		return
	}
	serveJSON(w, r, struct {
		IP string `json:"ip"`
	}{ip})
}
