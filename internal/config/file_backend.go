package config

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/fs-over-http/fsh/internal/errors"
)

// FileBackend keeps one file per key inside Directory.
type FileBackend struct {
	Directory string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("a directory must be provided")
	}

	expanded, err := ExpandTilde(dir)
	if err != nil {
		return nil, err
	}

	return &FileBackend{Directory: expanded}, nil
}

// Get returns an empty value when nothing has been stored for key.
func (f FileBackend) Get(key string) (string, error) {
	path := filepath.Join(f.Directory, key)

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %q", path)
	}

	return strings.TrimSpace(string(contents)), nil
}

func (f FileBackend) Set(key, value string) error {
	if err := os.MkdirAll(f.Directory, 0o700); err != nil {
		return errors.Wrapf(err, "unable to create %q", f.Directory)
	}

	path := filepath.Join(f.Directory, key)
	if err := os.WriteFile(path, []byte(value+"\n"), 0o600); err != nil {
		return errors.Wrapf(err, "unable to write to %q", path)
	}

	return nil
}

var tildeSlash = "~" + string(os.PathSeparator)

func ExpandTilde(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, tildeSlash) {
		return dir, nil
	}

	u, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine the home directory")
	}

	if dir == "~" {
		return u.HomeDir, nil
	}
	return filepath.Join(u.HomeDir, strings.TrimPrefix(dir, tildeSlash)), nil
}
