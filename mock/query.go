package mock

import "github.com/accessibleweb/a11y"

var _ a11y.QueryService = (*QueryService)(nil)

// QueryService is a mock implementation of a11y.QueryService.
type QueryService struct {
	CategoriesFn func(platform a11y.Platform) []a11y.CategorySummary
	ComponentsFn func(platform a11y.Platform, category string) []*a11y.ResolvedComponent
	FindFn       func(platform a11y.Platform, rawName string) (*a11y.ResolvedComponent, error)
	SuggestFn    func(platform a11y.Platform, rawName string, max int) []*a11y.ResolvedComponent
	SearchFn     func(platform a11y.Platform, query string, maxResults int) []a11y.Match
	FormatsFn    func(platform a11y.Platform, rawName string) (*a11y.FormatReport, error)
}

func (s *QueryService) Categories(platform a11y.Platform) []a11y.CategorySummary {
	return s.CategoriesFn(platform)
}

func (s *QueryService) Components(platform a11y.Platform, category string) []*a11y.ResolvedComponent {
	return s.ComponentsFn(platform, category)
}

func (s *QueryService) Find(platform a11y.Platform, rawName string) (*a11y.ResolvedComponent, error) {
	return s.FindFn(platform, rawName)
}

func (s *QueryService) Suggest(platform a11y.Platform, rawName string, max int) []*a11y.ResolvedComponent {
	return s.SuggestFn(platform, rawName, max)
}

func (s *QueryService) Search(platform a11y.Platform, query string, maxResults int) []a11y.Match {
	return s.SearchFn(platform, query, maxResults)
}

func (s *QueryService) Formats(platform a11y.Platform, rawName string) (*a11y.FormatReport, error) {
	return s.FormatsFn(platform, rawName)
}
