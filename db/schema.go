package db

import "database/sql"

// Create all tables and indexes on a fresh database
func createTables(tx *sql.Tx) error {
	return execAll(tx,
		`create table accounts (
			id varchar(20) primary key,
			password_hash bytea not null
		)`,
		`create table sessions (
			token char(32) primary key,
			account varchar(20) not null references accounts,
			created_at timestamptz not null default now()
		)`,
		`create table boards (
			name text primary key,
			title text not null,
			next_post_id bigint not null default 0
		)`,
		`create table images (
			hash char(32) primary key
		)`,
		`create table posts (
			id bigint not null,
			board text not null references boards,
			thread bigint not null,
			title varchar(100),
			author varchar(50),
			email varchar(100),
			sage boolean not null default false,
			plaintext_content varchar(2000),
			html_content text not null,
			posted_at timestamptz not null default now(),
			ip inet not null,
			image char(32) references images,
			primary key (board, id),
			foreign key (board, thread) references posts (board, id)
		)`,
		`create index posts_thread on posts (board, thread)`,
		`create table replies (
			message_id bigint not null,
			message_board text not null,
			reply_id bigint not null,
			reply_board text not null,
			reply_thread bigint not null,
			foreign key (message_board, message_id)
				references posts (board, id),
			foreign key (reply_board, reply_id)
				references posts (board, id)
		)`,
		`create index replies_message on replies (message_board, message_id)`,
		`create table bans (
			ip inet not null,
			reason text not null,
			created_at timestamptz not null default now(),
			duration interval not null
		)`,
		`create index bans_ip on bans using gist (ip inet_ops)`,
		`create table captchas (
			id char(32) primary key,
			solution text not null
		)`,
	)
}

// Create the schema and write the default admin account on a fresh database
func initDB() error {
	return InTransaction(func(tx *sql.Tx) (err error) {
		err = createTables(tx)
		if err != nil {
			return
		}
		return createAdminAccount(tx)
	})
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, q := range queries {
		if _, err := tx.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
