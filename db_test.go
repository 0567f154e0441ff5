package pixelanimator

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/pixelanimator/pixelmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	o := &pixelmap.Options{Delay: 5, Repeat: 3}
	k := cacheKey([]byte("image"), o, 0)

	assert.Len(t, k, 40)
	assert.Equal(t, k, cacheKey([]byte("image"), o, 0))
	assert.NotEqual(t, k, cacheKey([]byte("image"), o, 16))
	assert.NotEqual(t, k, cacheKey([]byte("image"), &pixelmap.Options{Delay: 5, Repeat: 4}, 0))
	assert.NotEqual(t, k, cacheKey([]byte("other"), o, 0))
}

func TestDB(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	db, err := NewDB(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	defer db.Close()

	b, err := db.Find("missing")
	require.NoError(t, err)
	assert.Nil(t, b)

	require.NoError(t, db.Add("key", 2, expected))
	require.NoError(t, db.Add("key", 2, expected))

	b, err = db.Find("key")
	require.NoError(t, err)
	assert.Equal(t, expected, b)

	n, err := db.Length()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestConvertCached(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	db, err := NewDB(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	defer db.Close()

	input, output := filepath.Join(dir, "in.png"), filepath.Join(dir, "out.pxm")
	writePNG(t, input)
	p := &Params{RepeatCount: 3, FrameTime: 5, Input: input, Output: output}

	pa, _, verbose := newTestAnimator(db)
	_, err = pa.Convert(p)
	require.NoError(t, err)
	assert.NotContains(t, verbose.String(), "Using cached pixelmap")

	n, err := db.Length()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var width int
	require.NoError(t, db.db.QueryRow("SELECT width FROM pixelmap").Scan(&width))
	assert.Equal(t, 2, width)

	require.NoError(t, os.Remove(output))

	pa, _, verbose = newTestAnimator(db)
	_, err = pa.Convert(p)
	require.NoError(t, err)
	assert.Contains(t, verbose.String(), "Using cached pixelmap")
	assert.NotContains(t, verbose.String(), "Decoded")

	b, err := ioutil.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, expected, b)
}
