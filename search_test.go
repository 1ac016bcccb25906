package a11y_test

import (
	"testing"

	"github.com/accessibleweb/a11y"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Search(t *testing.T) {
	t.Parallel()

	t.Run("label match scores its weight", func(t *testing.T) {
		t.Parallel()

		catalog := searchCatalog(t, []*a11y.Component{
			{Name: "alert", Label: "Alert banner"},
		})

		matches := catalog.Search(a11y.PlatformWeb, "banner", 10)

		require.Len(t, matches, 1)
		assert.Equal(t, 10, matches[0].Score)
		assert.Equal(t, []string{"label"}, matches[0].MatchedFields)
	})

	t.Run("label and name matches accumulate", func(t *testing.T) {
		t.Parallel()

		catalog := searchCatalog(t, []*a11y.Component{
			{Name: "alert", Label: "Alert banner"},
		})

		matches := catalog.Search(a11y.PlatformWeb, "alert", 10)

		require.Len(t, matches, 1)
		assert.Equal(t, 20, matches[0].Score)
		assert.Equal(t, []string{"label", "name"}, matches[0].MatchedFields)
	})

	t.Run("repeated occurrences within a field add a bonus", func(t *testing.T) {
		t.Parallel()

		catalog := searchCatalog(t, []*a11y.Component{
			{Name: "modal", Label: "Modal", GeneralNotes: "Focus the modal. Trap focus. Restore focus on close."},
		})

		matches := catalog.Search(a11y.PlatformWeb, "focus", 10)

		require.Len(t, matches, 1)
		// weight 5 plus two repeat occurrences.
		assert.Equal(t, 7, matches[0].Score)
		assert.Equal(t, []string{"generalNotes"}, matches[0].MatchedFields)
	})

	t.Run("orders by score descending then name ascending", func(t *testing.T) {
		t.Parallel()

		catalog := searchCatalog(t, []*a11y.Component{
			{Name: "tooltip", Label: "Tooltip", GeneralNotes: "popup hint"},
			{Name: "dialog", Label: "Dialog popup"},
			{Name: "menu", Label: "Menu popup"},
		})

		matches := catalog.Search(a11y.PlatformWeb, "popup", 10)

		require.Len(t, matches, 3)
		// label matches (10) outrank the generalNotes match (5); equal
		// scores fall back to lexicographic name order.
		assert.Equal(t, "dialog", matches[0].Name)
		assert.Equal(t, "menu", matches[1].Name)
		assert.Equal(t, "tooltip", matches[2].Name)
	})

	t.Run("truncates to the requested cap", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog(t)

		matches := catalog.Search(a11y.PlatformWeb, "focus", 2)

		assert.Len(t, matches, 2)
	})

	t.Run("defaults the cap when non-positive", func(t *testing.T) {
		t.Parallel()

		components := make([]*a11y.Component, 0, 15)
		for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o"} {
			components = append(components, &a11y.Component{Name: name, Label: "Widget " + name})
		}
		catalog := searchCatalog(t, components)

		matches := catalog.Search(a11y.PlatformWeb, "widget", 0)

		assert.Len(t, matches, a11y.DefaultMaxResults)
	})

	t.Run("oversized cap returns all matches", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog(t)

		matches := catalog.Search(a11y.PlatformWeb, "focus", 1000000)

		assert.Len(t, matches, 3)
	})

	t.Run("attaches category provenance", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog(t)

		matches := catalog.Search(a11y.PlatformWeb, "label", 10)

		require.NotEmpty(t, matches)
		assert.Equal(t, "text-input", matches[0].Name)
		assert.Equal(t, "Forms", matches[0].Category)
		assert.Equal(t, "forms", matches[0].CategoryName)
	})

	t.Run("empty query yields empty slice", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog(t)

		assert.Empty(t, catalog.Search(a11y.PlatformWeb, "   ", 10))
	})

	t.Run("unknown platform yields empty slice", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog(t)

		assert.Empty(t, catalog.Search(a11y.ParsePlatform("desktop"), "button", 10))
	})

	t.Run("gherkin-only match end to end", func(t *testing.T) {
		t.Parallel()

		catalog, err := a11y.NewCatalog(a11y.Collection{
			a11y.PlatformWeb: {
				{Name: "controls", Label: "Controls", Components: []*a11y.Component{
					{Name: "checkbox", Label: "Checkbox", Gherkin: "Given a checkbox..."},
				}},
			},
		})
		require.NoError(t, err)

		matches := catalog.Search(a11y.PlatformWeb, "given", 10)

		require.Len(t, matches, 1)
		assert.Equal(t, 3, matches[0].Score)
		assert.Equal(t, []string{"gherkin"}, matches[0].MatchedFields)
	})
}

// searchCatalog wraps a single web category around the given components.
func searchCatalog(t *testing.T, components []*a11y.Component) *a11y.Catalog {
	t.Helper()

	catalog, err := a11y.NewCatalog(a11y.Collection{
		a11y.PlatformWeb: {
			{Name: "patterns", Label: "Patterns", Components: components},
		},
	})
	require.NoError(t, err)
	return catalog
}
