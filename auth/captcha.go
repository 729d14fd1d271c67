// Package auth contains the checks gating the write path: captcha lifecycle,
// ban lookup and admin credentials
package auth

import (
	"bytes"
	"strings"

	"github.com/hibiki-board/hibiki/db"
	"github.com/steambap/captcha"
)

// Dimensions of the distorted captcha image served to clients
const (
	captchaWidth  = 250
	captchaHeight = 100
)

// Captcha is a single-use challenge handed out with a post form
type Captcha struct {
	ID string

	// PNG-encoded challenge image
	Image []byte
}

// NewCaptcha generates a distorted glyph image and stores its lowercased
// solution under a fresh challenge ID
func NewCaptcha() (c Captcha, err error) {
	data, err := captcha.New(captchaWidth, captchaHeight)
	if err != nil {
		return
	}

	var w bytes.Buffer
	err = data.WriteImage(&w)
	if err != nil {
		return
	}

	c = Captcha{
		ID:    NewToken(),
		Image: w.Bytes(),
	}
	err = db.InsertCaptcha(c.ID, strings.ToLower(data.Text))
	return
}

// VerifyCaptcha consumes the challenge and reports whether the answer
// matches. The challenge is deleted whether or not it does; an unknown or
// already consumed ID verifies as false.
func VerifyCaptcha(id, answer string) (solved bool, err error) {
	solution, found, err := db.ConsumeCaptcha(id)
	if err != nil || !found {
		return
	}
	solved = solution == strings.ToLower(answer)
	return
}
