// Package sink stores generated explorer files.
package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"explorergen/internal/errors"
)

// Extension is appended to explorer names to form file names and object keys.
const Extension = ".explorer.tsv"

// FileName maps an explorer name to its file name.
func FileName(name string) string { return name + Extension }

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return errors.InvalidInput("invalid explorer name " + name)
	}
	return nil
}

// FileSink writes explorers into a directory. Writes are atomic.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink { return &FileSink{dir: dir} }

func (s *FileSink) Location(name string) string {
	return filepath.Join(s.dir, FileName(name))
}

func (s *FileSink) Put(ctx context.Context, name string, data []byte) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", name)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "chmod %s", name)
	}
	if err := os.Rename(tmp.Name(), s.Location(name)); err != nil {
		return errors.Wrapf(err, "renaming %s", name)
	}
	return nil
}
