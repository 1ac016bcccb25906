package a11y_test

import (
	"encoding/json"
	"testing"

	"github.com/accessibleweb/a11y"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := a11y.Errorf(a11y.ENOTFOUND, "component %q not found", "button")

	assert.Equal(t, a11y.ENOTFOUND, a11y.ErrorCode(err))
	assert.Equal(t, "component \"button\" not found", a11y.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, a11y.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, a11y.ErrorMessage(nil))
}

// testCatalog builds the fixture catalog shared by the query tests.
func testCatalog(t *testing.T) *a11y.Catalog {
	t.Helper()

	catalog, err := a11y.NewCatalog(a11y.Collection{
		a11y.PlatformWeb: {
			{
				Name:  "controls",
				Label: "Controls",
				Components: []*a11y.Component{
					{
						Name:         "button",
						Label:        "Button",
						GeneralNotes: "Buttons trigger an action. Focus order matters for buttons.",
						Gherkin:      "Given I am on a page with a button\nWhen I press Tab\nThen focus lands on the button",
						Condensed:    "Focusable, activates with Enter and Space.",
						DeveloperNotes: "Use the native button element.\n\n```html\n<button>Save</button>\n```",
						Videos:       json.RawMessage(`[{"title":"Button demo"}]`),
					},
					{
						Name:      "checkbox",
						Label:     "Checkbox",
						Gherkin:   "Given a form with a checkbox\nWhen I press Space\nThen the checkbox toggles",
						Condensed: "Toggles with Space, announces state.",
					},
					{
						Name:  "link",
						Label: "Link",
						GeneralNotes: "Links navigate. A link must have a focus indicator.",
					},
				},
			},
			{
				Name:  "forms",
				Label: "Forms",
				Components: []*a11y.Component{
					{
						Name:         "text-input",
						Label:        "Text input",
						GeneralNotes: "Inputs need a visible label and programmatic focus.",
					},
				},
			},
		},
		a11y.PlatformNative: {
			{
				Name:  "controls",
				Label: "Controls",
				Components: []*a11y.Component{
					{
						Name:                  "switch",
						Label:                 "Switch",
						AndroidDeveloperNotes: "Use SwitchCompat with contentDescription.",
						IOSDeveloperNotes:     "Use UISwitch with accessibilityLabel.",
					},
					{
						Name:    "button",
						Label:   "Button",
						Gherkin: "Given a native screen with a button\nWhen I swipe to it\nThen it is announced as a button",
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return catalog
}
