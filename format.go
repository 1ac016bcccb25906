package a11y

// Formats resolves a component and reports which optional content sections
// it carries. Presence means the section is non-empty; absence is not an
// error. Resolution failure returns ENOTFOUND.
func (c *Catalog) Formats(platform Platform, rawName string) (*FormatReport, error) {
	component, err := c.Find(platform, rawName)
	if err != nil {
		return nil, err
	}

	return &FormatReport{
		Name:                  component.Name,
		Gherkin:               component.Gherkin != "",
		Condensed:             component.Condensed != "",
		DeveloperNotes:        component.DeveloperNotes != "",
		AndroidDeveloperNotes: component.AndroidDeveloperNotes != "",
		IOSDeveloperNotes:     component.IOSDeveloperNotes != "",
		Videos:                videosText(component.Videos) != "",
		GeneralNotes:          component.GeneralNotes != "",
	}, nil
}
