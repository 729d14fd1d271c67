// Package assets manages the filesystem layout of stored originals and
// their thumbnails, keyed by content digest
package assets

import (
	"os"
	"path/filepath"

	"github.com/hibiki-board/hibiki/config"
	"github.com/hibiki-board/hibiki/util"
)

const fileCreationFlags = os.O_WRONLY | os.O_CREATE | os.O_EXCL

// DirOverride overrides the configured image root. Only used in tests.
var DirOverride string

func root() string {
	if DirOverride != "" {
		return DirOverride
	}
	return config.Server.Images.Root
}

// SourcePath returns the filesystem path of a stored original
func SourcePath(hash string) string {
	return filepath.Join(root(), "src", hash)
}

// ThumbPath returns the filesystem path of a stored thumbnail
func ThumbPath(hash string) string {
	return filepath.Join(root(), "thumb", hash+".png")
}

// CreateDirs creates the directories for image and thumbnail storage
func CreateDirs() error {
	for _, dir := range [...]string{"src", "thumb"} {
		if err := os.MkdirAll(filepath.Join(root(), dir), 0700); err != nil {
			return err
		}
	}
	return nil
}

// Write stores the source file and its thumbnail. The database row must only
// be inserted after Write returns, so a row always implies both files exist.
// An already existing file is identical by digest, so concurrent duplicate
// writes are a no-op.
func Write(hash string, src, thumb []byte) (err error) {
	err = writeFile(SourcePath(hash), src)
	if err != nil {
		return util.WrapError("writing source file", err)
	}
	err = writeFile(ThumbPath(hash), thumb)
	if err != nil {
		err = util.WrapError("writing thumbnail", err)
	}
	return
}

func writeFile(path string, buf []byte) (err error) {
	f, err := os.OpenFile(path, fileCreationFlags, 0600)
	if err != nil {
		if os.IsExist(err) {
			err = nil
		}
		return
	}
	defer f.Close()

	_, err = f.Write(buf)
	if err != nil {
		return
	}
	return f.Sync()
}
