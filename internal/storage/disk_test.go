package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskSaveAndRemove(t *testing.T) {
	d := NewDisk(t.TempDir())

	rel, err := d.Save("image", "pic.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "image/pic.png", rel)

	data, err := os.ReadFile(filepath.Join(d.Root, "image", "pic.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, d.Remove(rel))
	_, err = os.Stat(filepath.Join(d.Root, "image", "pic.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	name := Filename("holiday photo.JPG", now)
	assert.True(t, strings.HasPrefix(name, "1700000000000-"))
	assert.True(t, strings.HasSuffix(name, ".JPG"))

	assert.False(t, strings.Contains(Filename("noext", now), "."))
}
