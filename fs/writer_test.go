package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/accessibleweb/a11y"
	"github.com/accessibleweb/a11y/content"
	"github.com/accessibleweb/a11y/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection() a11y.Collection {
	return a11y.Collection{
		a11y.PlatformWeb: []*a11y.Category{
			{
				Name:  "controls",
				Label: "Controls",
				Components: []*a11y.Component{
					{Name: "button", Label: "Button", Gherkin: "GIVEN a button"},
				},
			},
		},
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes a loadable artifact", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "criteria.json")
		writer := fs.NewWriter(path)

		changed, err := writer.Write(testCollection())

		require.NoError(t, err)
		assert.True(t, changed)

		catalog, err := content.LoadFile(path)
		require.NoError(t, err)
		resolved, err := catalog.Find(a11y.PlatformWeb, "button")
		require.NoError(t, err)
		assert.Equal(t, "GIVEN a button", resolved.Gherkin)
	})

	t.Run("skips the write when content is unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "criteria.json")
		writer := fs.NewWriter(path)

		changed, err := writer.Write(testCollection())
		require.NoError(t, err)
		require.True(t, changed)

		before, err := os.Stat(path)
		require.NoError(t, err)

		changed, err = writer.Write(testCollection())
		require.NoError(t, err)
		assert.False(t, changed)

		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("overwrites when content changed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "criteria.json")
		writer := fs.NewWriter(path)

		_, err := writer.Write(testCollection())
		require.NoError(t, err)

		updated := testCollection()
		updated[a11y.PlatformWeb][0].Components[0].Gherkin = "GIVEN an updated button"

		changed, err := writer.Write(updated)
		require.NoError(t, err)
		assert.True(t, changed)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "GIVEN an updated button")
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "criteria.json")
		writer := fs.NewWriter(path)

		changed, err := writer.Write(testCollection())

		require.NoError(t, err)
		assert.True(t, changed)
		assert.FileExists(t, path)
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "criteria.json")
		writer := fs.NewWriter(path)

		_, err := writer.Write(testCollection())
		require.NoError(t, err)

		assert.NoFileExists(t, path+".tmp")
	})
}
