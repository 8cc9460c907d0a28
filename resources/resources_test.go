package resources

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/richinsley/glscene/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTextFromFS(t *testing.T) {
	res := FromFS(fstest.MapFS{
		"shaders/a.vert": {Data: []byte("void main() {}")},
		"shaders/bad":    {Data: []byte("abc\x00def")},
	})

	text, err := res.LoadText("shaders/a.vert")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", text)

	_, err = res.LoadText("shaders/bad")
	assert.ErrorIs(t, err, ErrContainsNil)

	_, err = res.LoadText("shaders/missing.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadTextFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders", "x.frag"), []byte("frag"), 0o644))

	text, err := FromDir(dir).LoadText("shaders/x.frag")
	require.NoError(t, err)
	assert.Equal(t, "frag", text)
}

func TestEmbeddedShaders(t *testing.T) {
	res := FromFS(assets.FS)
	for _, name := range []string{"triangle", "objects", "spotlight", "es/objects"} {
		for _, ext := range []string{".vert", ".frag"} {
			text, err := res.LoadText("shaders/" + name + ext)
			require.NoError(t, err, name+ext)
			assert.Contains(t, text, "void main()")
		}
	}
}
