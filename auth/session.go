package auth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/hibiki-board/hibiki/common"
	"github.com/hibiki-board/hibiki/db"
	"golang.org/x/crypto/bcrypt"
)

// MaxLenUserID is the maximum admin account name length
const MaxLenUserID = 20

// NewToken returns a random 128-bit token as lowercase hex
func NewToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// The system CSPRNG is unavailable. Nothing sane to do here.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// Register creates a new admin account with a bcrypt-hashed password
func Register(id, password string) (err error) {
	if len(id) == 0 || len(id) > MaxLenUserID {
		return common.ErrInvalidInput("user name")
	}
	if len(password) == 0 {
		return common.ErrInvalidInput("password")
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return
	}
	return db.RegisterAccount(id, hash)
}

// Login verifies the credentials against the stored hash and issues a new
// session token
func Login(id, password string) (token string, err error) {
	hash, err := db.GetPasswordHash(id)
	if err != nil {
		return
	}
	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err != nil {
		err = common.ErrInvalidCreds
		return
	}

	token = NewToken()
	err = db.WriteSession(id, token)
	return
}

// CheckSession resolves a session token to the owning account
func CheckSession(token string) (account string, err error) {
	if token == "" {
		err = common.ErrNoPermissions
		return
	}
	return db.GetSessionAccount(token)
}
