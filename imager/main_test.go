package imager

import (
	"os"
	"testing"

	"github.com/hibiki-board/hibiki/config"
	"github.com/hibiki-board/hibiki/db"
	"github.com/hibiki-board/hibiki/imager/assets"
)

func TestMain(m *testing.M) {
	code := 1
	err := func() (err error) {
		err = config.Load()
		if err != nil {
			return
		}
		err = db.LoadTestDB("imager")
		if err != nil {
			return
		}

		dir, err := os.MkdirTemp("", "imager")
		if err != nil {
			return
		}
		defer os.RemoveAll(dir)
		assets.DirOverride = dir
		err = assets.CreateDirs()
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
