package db

import "database/sql"

// ImageExists returns if an image with the given content digest is already
// recorded. Used as the deduplication fast path before any decoding.
func ImageExists(hash string) (exists bool, err error) {
	err = sq.Select("true").
		From("images").
		Where("hash = ?", hash).
		QueryRow().
		Scan(&exists)
	if err == sql.ErrNoRows {
		err = nil
	}
	return
}

// InsertImage records a content digest. Must only be called after both the
// source file and thumbnail are durably written, so a row always implies the
// files exist. A concurrent duplicate insert of identical content is a
// no-op.
func InsertImage(hash string) (err error) {
	_, err = db.Exec(
		`insert into images (hash)
		values ($1)
		on conflict (hash) do nothing`,
		hash,
	)
	return
}
