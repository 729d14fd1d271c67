// Package db handles all database interactions of the server
package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/hibiki-board/hibiki/config"
	_ "github.com/lib/pq" // Postgres driver
)

var (
	// Stores the postgres database instance
	db *sql.DB

	// Statement builder and cacher
	sq squirrel.StatementBuilderType
)

// LoadDB connects to the PostgreSQL database and creates the schema, if not
// present
func LoadDB() error {
	return loadDB(config.Server.Database)
}

// LoadTestDB creates and loads a testing database. Suffix separates
// databases of concurrently run package tests.
func LoadTestDB(suffix string) (err error) {
	run := func(line ...string) error {
		c := exec.Command(line[0], line[1:]...)
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	}
	connURL, err := url.Parse(config.Server.Test.Database)
	if err != nil {
		return
	}
	user := connURL.User.Username()
	dbName := fmt.Sprintf("%s_%s", strings.Trim(connURL.Path, "/"), suffix)

	err = run(
		"psql",
		"-c", "drop database if exists "+dbName,
		config.Server.Database,
	)
	if err != nil {
		return
	}

	fmt.Println("creating test database:", dbName)
	err = run(
		"psql",
		"-c",
		fmt.Sprintf(
			"create database %s with owner %s encoding UTF8",
			dbName, user,
		),
		config.Server.Database,
	)
	if err != nil {
		return
	}

	connURL.Path = "/" + dbName
	return loadDB(connURL.String())
}

func loadDB(connURL string) (err error) {
	db, err = sql.Open("postgres", connURL)
	if err != nil {
		return
	}

	sq = squirrel.StatementBuilder.
		RunWith(squirrel.NewStmtCacheProxy(db)).
		PlaceholderFormat(squirrel.Dollar)

	var exists bool
	const q = `select exists (
			select 1 from information_schema.tables
				where table_schema = 'public' and table_name = 'boards'
		)`
	err = db.QueryRow(q).Scan(&exists)
	if err != nil {
		return
	}
	if !exists {
		err = initDB()
	}
	return
}
