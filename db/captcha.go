package db

import "database/sql"

// InsertCaptcha stores a new captcha challenge and its expected solution
func InsertCaptcha(id, solution string) (err error) {
	_, err = sq.Insert("captchas").
		Columns("id", "solution").
		Values(id, solution).
		Exec()
	return
}

// ConsumeCaptcha deletes a challenge and returns its solution. The delete is
// the atomicity point enforcing single-use semantics: of two concurrent
// verification attempts only one can observe the row.
func ConsumeCaptcha(id string) (solution string, found bool, err error) {
	err = db.
		QueryRow(
			`delete from captchas
			where id = $1
			returning solution`,
			id,
		).
		Scan(&solution)
	switch err {
	case nil:
		found = true
	case sql.ErrNoRows:
		err = nil
	}
	return
}
