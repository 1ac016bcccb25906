// Package slog provides logging decorators for a11y service interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/accessibleweb/a11y"
)

// Ensure LoggingQueryService implements a11y.QueryService.
var _ a11y.QueryService = (*LoggingQueryService)(nil)

// LoggingQueryService wraps a QueryService with structured query logging.
type LoggingQueryService struct {
	next   a11y.QueryService
	logger *slog.Logger
}

// NewLoggingQueryService creates a new LoggingQueryService.
func NewLoggingQueryService(next a11y.QueryService, logger *slog.Logger) *LoggingQueryService {
	return &LoggingQueryService{next: next, logger: logger}
}

// Categories delegates to the wrapped service.
func (s *LoggingQueryService) Categories(platform a11y.Platform) []a11y.CategorySummary {
	return s.next.Categories(platform)
}

// Components delegates to the wrapped service.
func (s *LoggingQueryService) Components(platform a11y.Platform, category string) []*a11y.ResolvedComponent {
	return s.next.Components(platform, category)
}

// Find logs the resolution outcome and delegates to the wrapped service.
func (s *LoggingQueryService) Find(platform a11y.Platform, rawName string) (*a11y.ResolvedComponent, error) {
	begin := time.Now()
	component, err := s.next.Find(platform, rawName)
	if err != nil {
		s.logger.Info("component resolution failed",
			"platform", platform,
			"name", rawName,
			"code", a11y.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("component resolved",
		"platform", platform,
		"name", rawName,
		"resolved", component.Name,
		"category", component.CategoryName,
		"duration", time.Since(begin),
	)
	return component, nil
}

// Suggest delegates to the wrapped service.
func (s *LoggingQueryService) Suggest(platform a11y.Platform, rawName string, max int) []*a11y.ResolvedComponent {
	return s.next.Suggest(platform, rawName, max)
}

// Search logs the query and result count and delegates to the wrapped service.
func (s *LoggingQueryService) Search(platform a11y.Platform, query string, maxResults int) []a11y.Match {
	begin := time.Now()
	matches := s.next.Search(platform, query, maxResults)
	s.logger.Info("criteria search",
		"platform", platform,
		"query", query,
		"results", len(matches),
		"duration", time.Since(begin),
	)
	return matches
}

// Formats delegates to the wrapped service.
func (s *LoggingQueryService) Formats(platform a11y.Platform, rawName string) (*a11y.FormatReport, error) {
	return s.next.Formats(platform, rawName)
}
