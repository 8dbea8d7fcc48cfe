// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/meow/internal/osutil"
	"github.com/ayoisaiah/meow/internal/pathutil"
)

const (
	filesDir = "files"
	catFile  = "cat.txt"
	soundExt = ".wav"
)

//go:embed files/*
var Files embed.FS

// FilePath returns the path of name within the embedded file system.
func FilePath(name string) string {
	return path.Join(filesDir, name)
}

// Sounds lists the names of the built-in sounds without their extension.
func Sounds() []string {
	entries, err := Files.ReadDir(filesDir)
	if err != nil {
		return nil
	}

	var names []string

	for _, v := range entries {
		if filepath.Ext(v.Name()) == soundExt {
			names = append(names, pathutil.StripExtension(v.Name()))
		}
	}

	return names
}

// SoundFile returns the embedded file name for a built-in sound.
func SoundFile(name string) string {
	return name + soundExt
}

// Install copies the embedded files into the data directory. Files that
// already exist are left alone so user edits survive upgrades.
func Install() error {
	return fs.WalkDir(
		Files,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := Files.ReadFile(p)
			if err != nil {
				return err
			}

			destPath := pathutil.DataFile(strings.TrimPrefix(p, filesDir+"/"))

			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}

// Cat reads the decorative cat drawing from the data directory.
func Cat() (string, error) {
	b, err := os.ReadFile(pathutil.DataFile(catFile))
	if err != nil {
		return "", fmt.Errorf("cat image not found: %w", err)
	}

	return strings.TrimRight(string(b), "\n"), nil
}
