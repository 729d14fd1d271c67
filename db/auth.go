package db

import (
	"database/sql"

	"github.com/hibiki-board/hibiki/common"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserNameTaken denotes a user name the client is trying to register with
// is already taken
var ErrUserNameTaken = common.ErrInvalidInput("user name already taken")

// Write a fresh admin account with the default password to a new database.
// The password is expected to be changed after the first login.
func createAdminAccount(tx *sql.Tx) (err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), 10)
	if err != nil {
		return
	}
	_, err = tx.Exec(
		`insert into accounts (id, password_hash)
		values ('admin', $1)`,
		hash,
	)
	return
}

// RegisterAccount writes the ID and password hash of a new admin account to
// the database
func RegisterAccount(id string, hash []byte) (err error) {
	_, err = sq.Insert("accounts").
		Columns("id", "password_hash").
		Values(id, hash).
		Exec()
	if IsConflictError(err) {
		err = ErrUserNameTaken
	}
	return
}

// GetPasswordHash retrieves the stored password hash of an account
func GetPasswordHash(id string) (hash []byte, err error) {
	err = sq.Select("password_hash").
		From("accounts").
		Where("id = ?", id).
		QueryRow().
		Scan(&hash)
	if err == sql.ErrNoRows {
		err = common.ErrInvalidCreds
	}
	return
}

// WriteSession writes a new session token for an account
func WriteSession(account, token string) (err error) {
	_, err = sq.Insert("sessions").
		Columns("token", "account").
		Values(token, account).
		Exec()
	return
}

// GetSessionAccount resolves a session token to its account
func GetSessionAccount(token string) (account string, err error) {
	err = sq.Select("account").
		From("sessions").
		Where("token = ?", token).
		QueryRow().
		Scan(&account)
	if err == sql.ErrNoRows {
		err = common.ErrNoPermissions
	}
	return
}
