package db

import (
	"database/sql"
	"time"

	"github.com/hibiki-board/hibiki/common"
)

// IsBanned returns common.ErrBanned with the most recent matching ban's
// reason, if the address is covered by a non-expired ban. Bans are stored as
// subnets; `<<=` matches an address contained in one.
func IsBanned(ip string) (err error) {
	var reason string
	err = db.
		QueryRow(
			`select reason
			from bans
			where $1 <<= ip and created_at + duration > now()
			order by created_at desc
			limit 1`,
			ip,
		).
		Scan(&reason)
	switch err {
	case nil:
		return common.ErrBanned(reason)
	case sql.ErrNoRows:
		return nil
	default:
		return
	}
}

// WriteBan bans an IP or subnet for the passed duration. Only reachable
// through admin actions; expiry is computed on lookup, not by deletion.
func WriteBan(ip, reason string, length time.Duration) (err error) {
	_, err = db.Exec(
		`insert into bans (ip, reason, duration)
		values ($1, $2, make_interval(secs => $3))`,
		ip, reason, length.Seconds(),
	)
	return
}
