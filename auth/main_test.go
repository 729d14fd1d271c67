package auth

import (
	"bytes"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/hibiki-board/hibiki/common"
	"github.com/hibiki-board/hibiki/config"
	"github.com/hibiki-board/hibiki/db"
)

func TestMain(m *testing.M) {
	code := 1
	err := func() (err error) {
		err = config.Load()
		if err != nil {
			return
		}
		err = db.LoadTestDB("auth")
		if err != nil {
			return
		}
		code = m.Run()
		return
	}()
	if err != nil {
		panic(err)
	}
	os.Exit(code)
}

func TestCaptchaLifecycle(t *testing.T) {
	c, err := NewCaptcha()
	if err != nil {
		t.Fatal(err)
	}
	if len(c.ID) != 32 {
		t.Fatalf("unexpected challenge ID length: %d", len(c.ID))
	}
	if _, err := png.Decode(bytes.NewReader(c.Image)); err != nil {
		t.Fatal(err)
	}

	// A wrong answer still consumes the challenge
	solved, err := VerifyCaptcha(c.ID, "certainly wrong")
	if err != nil {
		t.Fatal(err)
	}
	if solved {
		t.Fatal("wrong answer verified")
	}
	solved, err = VerifyCaptcha(c.ID, "certainly wrong")
	if err != nil {
		t.Fatal(err)
	}
	if solved {
		t.Fatal("consumed challenge verified")
	}
}

func TestCaptchaCaseInsensitive(t *testing.T) {
	c, err := NewCaptcha()
	if err != nil {
		t.Fatal(err)
	}
	solution, found, err := db.ConsumeCaptcha(c.ID)
	if err != nil || !found {
		t.Fatal("challenge missing", err)
	}

	// Re-insert and answer in upper case
	if err := db.InsertCaptcha(c.ID, solution); err != nil {
		t.Fatal(err)
	}
	solved, err := VerifyCaptcha(c.ID, strings.ToUpper(solution))
	if err != nil {
		t.Fatal(err)
	}
	if !solved {
		t.Fatal("case difference rejected")
	}
}

func TestLogin(t *testing.T) {
	if err := Register("warden", "hunter2"); err != nil {
		t.Fatal(err)
	}

	_, err := Login("warden", "wrong")
	if err != common.ErrInvalidCreds {
		t.Fatal("wrong password accepted:", err)
	}
	_, err = Login("nobody", "hunter2")
	if err != common.ErrInvalidCreds {
		t.Fatal("unknown account accepted:", err)
	}

	token, err := Login("warden", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	account, err := CheckSession(token)
	if err != nil {
		t.Fatal(err)
	}
	if account != "warden" {
		t.Fatalf("unexpected account: %s", account)
	}

	_, err = CheckSession("")
	if err != common.ErrNoPermissions {
		t.Fatal("empty token accepted:", err)
	}
}

func TestDefaultAdminAccount(t *testing.T) {
	// Written on database creation with the default password
	token, err := Login("admin", "password")
	if err != nil {
		t.Fatal(err)
	}
	if len(token) != 32 {
		t.Fatalf("unexpected token length: %d", len(token))
	}
}
