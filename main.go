// Command hibiki runs an anonymous imageboard server
package main

import (
	"github.com/go-playground/log"
	"github.com/go-playground/log/handlers/console"
	"github.com/hibiki-board/hibiki/config"
	"github.com/hibiki-board/hibiki/db"
	"github.com/hibiki-board/hibiki/imager/assets"
	"github.com/hibiki-board/hibiki/server"
	"github.com/hibiki-board/hibiki/util"
)

func main() {
	log.AddHandler(console.New(true), log.AllLevels...)

	err := util.Waterfall(
		config.Load,
		db.LoadDB,
		assets.CreateDirs,
		server.Start,
	)
	if err != nil {
		log.Fatal(err)
	}
}
