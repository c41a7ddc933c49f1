package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageDataURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0o600))

	url, err := ImageDataURL(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)
}

func TestImageDataURL_UnsupportedExtension(t *testing.T) {
	_, err := ImageDataURL("notes.txt")
	require.Error(t, err)
}

func TestImageDataURL_MissingFile(t *testing.T) {
	_, err := ImageDataURL(filepath.Join(t.TempDir(), "absent.jpg"))
	require.Error(t, err)
}
