package a11y

import (
	"encoding/json"
	"strings"
)

// Platform identifies one of the two top-level content partitions.
type Platform string

// Known platforms. Native content further branches into iOS/Android sections
// but is not a separate top-level partition.
const (
	PlatformWeb    Platform = "web"
	PlatformNative Platform = "native"
)

// Platforms lists the known platforms in display order.
var Platforms = []Platform{PlatformWeb, PlatformNative}

// ParsePlatform normalizes a raw platform string (trimmed, lowercased).
// Unknown values parse to an unknown Platform; queries over an unknown
// platform return empty results rather than errors.
func ParsePlatform(raw string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(raw)))
}

// Valid reports whether the platform is one of the known partitions.
func (p Platform) Valid() bool {
	return p == PlatformWeb || p == PlatformNative
}

// Component is a single addressable accessibility-criteria record, e.g.
// "button" or "checkbox". All fields beyond Name and Label are optional
// long-form content sections treated as opaque text.
type Component struct {
	Name                  string          `json:"name"`
	Label                 string          `json:"label"`
	GeneralNotes          string          `json:"generalNotes,omitempty"`
	Gherkin               string          `json:"gherkin,omitempty"`
	Condensed             string          `json:"condensed,omitempty"`
	DeveloperNotes        string          `json:"developerNotes,omitempty"`
	AndroidDeveloperNotes string          `json:"androidDeveloperNotes,omitempty"`
	IOSDeveloperNotes     string          `json:"iosDeveloperNotes,omitempty"`
	Videos                json.RawMessage `json:"videos,omitempty"`
}

// Validate returns an error if the component contains invalid fields.
func (c *Component) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "component name required")
	}
	if c.Label == "" {
		return Errorf(EINVALID, "component label required")
	}
	return nil
}

// Section names for the optional content blocks of a Component.
const (
	SectionGeneralNotes          = "generalNotes"
	SectionGherkin               = "gherkin"
	SectionCondensed             = "condensed"
	SectionDeveloperNotes        = "developerNotes"
	SectionAndroidDeveloperNotes = "androidDeveloperNotes"
	SectionIOSDeveloperNotes     = "iosDeveloperNotes"
	SectionVideos                = "videos"
)

// SectionNames lists the addressable content sections in report order.
var SectionNames = []string{
	SectionGherkin,
	SectionCondensed,
	SectionDeveloperNotes,
	SectionAndroidDeveloperNotes,
	SectionIOSDeveloperNotes,
	SectionVideos,
	SectionGeneralNotes,
}

// Section returns the named text section and whether the name is addressable.
// Videos is opaque JSON and is returned in serialized form.
func (c *Component) Section(name string) (string, bool) {
	switch name {
	case SectionGeneralNotes:
		return c.GeneralNotes, true
	case SectionGherkin:
		return c.Gherkin, true
	case SectionCondensed:
		return c.Condensed, true
	case SectionDeveloperNotes:
		return c.DeveloperNotes, true
	case SectionAndroidDeveloperNotes:
		return c.AndroidDeveloperNotes, true
	case SectionIOSDeveloperNotes:
		return c.IOSDeveloperNotes, true
	case SectionVideos:
		return videosText(c.Videos), true
	}
	return "", false
}

// videosText renders the opaque videos payload for presence checks and
// section fetches. JSON null counts as absent.
func videosText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	return s
}

// Category is a named grouping of components within a platform.
// Component order is insertion order from the source dataset and is
// preserved in listings.
type Category struct {
	Name       string       `json:"name"`
	Label      string       `json:"label"`
	Components []*Component `json:"components"`
}

// Validate returns an error if the category contains invalid fields.
func (c *Category) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "category name required")
	}
	for _, comp := range c.Components {
		if err := comp.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Collection is the root document tree: platform key to ordered categories.
type Collection map[Platform][]*Category

// ResolvedComponent is a component annotated with its parent category at
// lookup time. Category info is never stored on the component itself.
type ResolvedComponent struct {
	Component
	Platform     Platform `json:"platform"`
	Category     string   `json:"category"`
	CategoryName string   `json:"categoryName"`
}

// CategorySummary describes one category in a listing.
type CategorySummary struct {
	Name           string `json:"name"`
	Label          string `json:"label"`
	ComponentCount int    `json:"componentCount"`
}

// FormatReport states which optional content sections a component carries.
// Presence means the section exists and is non-empty.
type FormatReport struct {
	Name                  string `json:"name"`
	Gherkin               bool   `json:"gherkin"`
	Condensed             bool   `json:"condensed"`
	DeveloperNotes        bool   `json:"developerNotes"`
	AndroidDeveloperNotes bool   `json:"androidDeveloperNotes"`
	IOSDeveloperNotes     bool   `json:"iosDeveloperNotes"`
	Videos                bool   `json:"videos"`
	GeneralNotes          bool   `json:"generalNotes"`
}

// Match is one ranked search result with per-field match provenance.
type Match struct {
	Name          string   `json:"name"`
	Label         string   `json:"label"`
	Category      string   `json:"category"`
	CategoryName  string   `json:"categoryName"`
	Score         int      `json:"score"`
	MatchedFields []string `json:"matchedFields"`
	GeneralNotes  string   `json:"generalNotes,omitempty"`
}

// QueryService represents the read-only query operations over the catalog.
type QueryService interface {
	// Categories lists the categories of a platform in stored order.
	// Unknown platforms yield an empty slice.
	Categories(platform Platform) []CategorySummary

	// Components flattens the components of a platform, optionally filtered
	// to a single category by case-insensitive name. Order is
	// category-then-child order from the source dataset.
	Components(platform Platform, category string) []*ResolvedComponent

	// Find resolves a component by name: exact match first, then substring
	// fallback over name and label. Returns ENOTFOUND if nothing matches.
	Find(platform Platform, rawName string) (*ResolvedComponent, error)

	// Suggest returns up to max components whose name or label contains the
	// query, in scan order. Used for "did you mean" rendering.
	Suggest(platform Platform, rawName string, max int) []*ResolvedComponent

	// Search ranks components matching a free-text query.
	Search(platform Platform, query string, maxResults int) []Match

	// Formats reports which content sections a resolved component carries.
	// Returns ENOTFOUND if the component does not resolve.
	Formats(platform Platform, rawName string) (*FormatReport, error)
}
