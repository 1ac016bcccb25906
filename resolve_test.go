package a11y_test

import (
	"testing"

	"github.com/accessibleweb/a11y"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Find(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	t.Run("resolves exact name", func(t *testing.T) {
		t.Parallel()

		component, err := catalog.Find(a11y.PlatformWeb, "checkbox")

		require.NoError(t, err)
		assert.Equal(t, "checkbox", component.Name)
		assert.Equal(t, "Controls", component.Category)
		assert.Equal(t, "controls", component.CategoryName)
	})

	t.Run("ignores case and surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		component, err := catalog.Find(a11y.PlatformWeb, "  ChEckBox \t")

		require.NoError(t, err)
		assert.Equal(t, "checkbox", component.Name)
	})

	t.Run("falls back to substring match on name or label", func(t *testing.T) {
		t.Parallel()

		component, err := catalog.Find(a11y.PlatformWeb, "butt")

		require.NoError(t, err)
		assert.Equal(t, "button", component.Name)
	})

	t.Run("fuzzy pass matches label text", func(t *testing.T) {
		t.Parallel()

		component, err := catalog.Find(a11y.PlatformWeb, "text inp")

		require.NoError(t, err)
		assert.Equal(t, "text-input", component.Name)
	})

	t.Run("exact pass wins over earlier fuzzy candidates", func(t *testing.T) {
		t.Parallel()

		local, err := a11y.NewCatalog(a11y.Collection{
			a11y.PlatformWeb: {
				{Name: "controls", Label: "Controls", Components: []*a11y.Component{
					{Name: "save-button", Label: "Save button"},
					{Name: "button", Label: "Button"},
				}},
			},
		})
		require.NoError(t, err)

		component, err := local.Find(a11y.PlatformWeb, "button")

		require.NoError(t, err)
		assert.Equal(t, "button", component.Name)
	})

	t.Run("returns ENOTFOUND for empty name", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Find(a11y.PlatformWeb, "   ")

		require.Error(t, err)
		assert.Equal(t, a11y.ENOTFOUND, a11y.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when nothing matches", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Find(a11y.PlatformWeb, "carousel")

		require.Error(t, err)
		assert.Equal(t, a11y.ENOTFOUND, a11y.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown platform", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Find(a11y.ParsePlatform("desktop"), "button")

		require.Error(t, err)
		assert.Equal(t, a11y.ENOTFOUND, a11y.ErrorCode(err))
	})

	t.Run("every component resolves by its own name", func(t *testing.T) {
		t.Parallel()

		for _, platform := range a11y.Platforms {
			for _, c := range catalog.Components(platform, "") {
				got, err := catalog.Find(platform, c.Name)
				require.NoError(t, err)
				assert.Equal(t, c.Name, got.Name)
			}
		}
	})
}

func TestCatalog_Suggest(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	t.Run("returns substring matches in scan order", func(t *testing.T) {
		t.Parallel()

		suggestions := catalog.Suggest(a11y.PlatformWeb, "n", 5)

		require.NotEmpty(t, suggestions)
		names := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"button", "link", "text-input"}, names)
	})

	t.Run("respects the max cap", func(t *testing.T) {
		t.Parallel()

		suggestions := catalog.Suggest(a11y.PlatformWeb, "n", 2)

		assert.Len(t, suggestions, 2)
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, catalog.Suggest(a11y.PlatformWeb, "  ", 5))
	})
}

func TestCatalog_Components(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	t.Run("flattens in category-then-child order", func(t *testing.T) {
		t.Parallel()

		components := catalog.Components(a11y.PlatformWeb, "")

		require.Len(t, components, 4)
		names := make([]string, 0, len(components))
		for _, c := range components {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"button", "checkbox", "link", "text-input"}, names)
		assert.Equal(t, "Forms", components[3].Category)
	})

	t.Run("filters by category name case-insensitively", func(t *testing.T) {
		t.Parallel()

		components := catalog.Components(a11y.PlatformWeb, "Forms")

		require.Len(t, components, 1)
		assert.Equal(t, "text-input", components[0].Name)
	})

	t.Run("unknown platform yields empty slice", func(t *testing.T) {
		t.Parallel()

		components := catalog.Components(a11y.ParsePlatform("desktop"), "")

		assert.Empty(t, components)
		assert.NotNil(t, components)
	})

	t.Run("unknown category yields empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, catalog.Components(a11y.PlatformWeb, "navigation"))
	})
}

func TestCatalog_Categories(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	t.Run("component counts match child counts", func(t *testing.T) {
		t.Parallel()

		categories := catalog.Categories(a11y.PlatformWeb)

		require.Len(t, categories, 2)
		assert.Equal(t, "controls", categories[0].Name)
		assert.Equal(t, 3, categories[0].ComponentCount)
		assert.Equal(t, "forms", categories[1].Name)
		assert.Equal(t, 1, categories[1].ComponentCount)
	})

	t.Run("unknown platform yields empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, catalog.Categories(a11y.ParsePlatform("tv")))
	})
}

func TestNewCatalog_RejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	_, err := a11y.NewCatalog(a11y.Collection{
		a11y.PlatformWeb: {
			{Name: "controls", Label: "Controls", Components: []*a11y.Component{
				{Name: "button", Label: "Button"},
			}},
			{Name: "forms", Label: "Forms", Components: []*a11y.Component{
				{Name: "Button", Label: "Button"},
			}},
		},
	})

	require.Error(t, err)
	assert.Equal(t, a11y.EINVALID, a11y.ErrorCode(err))
}
