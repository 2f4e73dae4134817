// Package storage persists uploaded files. The disk implementation mirrors the
// layout the frontend expects: uploads/<type>/<name>, served statically.
package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

type Store interface {
	// Save writes src under the given type directory and returns the
	// path relative to the store root.
	Save(fileType, name string, src io.Reader) (string, error)
	Remove(relPath string) error
}

type Disk struct {
	Root string
}

func NewDisk(root string) *Disk {
	return &Disk{Root: root}
}

func (d *Disk) Save(fileType, name string, src io.Reader) (string, error) {
	dir := filepath.Join(d.Root, fileType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return filepath.ToSlash(filepath.Join(fileType, name)), nil
}

func (d *Disk) Remove(relPath string) error {
	return os.Remove(filepath.Join(d.Root, filepath.FromSlash(relPath)))
}

// Filename builds a collision-resistant stored name from the original
// extension: <epoch millis>-<random>.<ext>.
func Filename(original string, now time.Time) string {
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(original))
}
