// Package common contains types and constants shared between most packages
package common

import "time"

// Maximum lengths of user-supplied post fields
const (
	MaxLenTitle  = 100
	MaxLenAuthor = 50
	MaxLenEmail  = 100
	MaxLenBody   = 2000
)

// Board is a single board's identity. next_post_id is only ever touched by
// the post sequencer and is not exposed.
type Board struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Post is a generic post exposed to clients. Immutable after insertion.
// Identity is the (Board, ID) pair; ID is only unique within one board.
type Post struct {
	ID       uint64    `json:"id"`
	Thread   uint64    `json:"thread"`
	Board    string    `json:"board"`
	Sage     bool      `json:"sage,omitempty"`
	Title    string    `json:"title,omitempty"`
	Author   string    `json:"author,omitempty"`
	Email    string    `json:"email,omitempty"`
	Body     string    `json:"body,omitempty"`
	HTML     string    `json:"html"`
	Image    string    `json:"image,omitempty"`
	PostedAt time.Time `json:"posted_at"`
}

// IsOP returns if the post is a thread-opening post
func (p Post) IsOP() bool {
	return p.ID == p.Thread
}

// Reply points from a post to another post, that referenced it in its text
// body
type Reply struct {
	ID     uint64 `json:"id"`
	Board  string `json:"board"`
	Thread uint64 `json:"thread"`
}
