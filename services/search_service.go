package services

import (
	"context"

	"knowledgebase/metrics"
	"knowledgebase/models"
	"knowledgebase/repositories"
)

type SearchService interface {
	Search(ctx context.Context, query string, userID *uint, ip string) (*models.SearchResponse, error)
}

type searchService struct {
	articleRepo   repositories.ArticleRepository
	analyticsRepo repositories.AnalyticsRepository
	assist        AssistService
}

func NewSearchService(
	articleRepo repositories.ArticleRepository,
	analyticsRepo repositories.AnalyticsRepository,
	assist AssistService,
) SearchService {
	return &searchService{
		articleRepo:   articleRepo,
		analyticsRepo: analyticsRepo,
		assist:        assist,
	}
}

// Search matches published articles on title or content, case-insensitively.
// The logged count is the sum of per-field match counts, which overcounts
// articles matching in both fields; the returned set is deduplicated. The
// mismatch is kept on purpose: the log is a long-lived analytics series and
// changing its definition would break comparisons with historical rows.
func (s *searchService) Search(ctx context.Context, query string, userID *uint, ip string) (*models.SearchResponse, error) {
	response := &models.SearchResponse{Query: query, Results: []models.Article{}}
	if query == "" {
		return response, nil
	}

	titleCount, err := s.articleRepo.CountPublishedTitleMatches(query)
	if err != nil {
		return nil, err
	}
	contentCount, err := s.articleRepo.CountPublishedContentMatches(query)
	if err != nil {
		return nil, err
	}
	loggedCount := titleCount + contentCount

	if err := s.analyticsRepo.RecordSearch(&models.Search{
		Term:         query,
		UserID:       userID,
		IPAddress:    ip,
		ResultsFound: int(loggedCount),
	}); err != nil {
		return nil, err
	}

	results, err := s.articleRepo.SearchPublished(query)
	if err != nil {
		return nil, err
	}
	response.Results = results

	if loggedCount == 0 {
		metrics.IncSearch("zero")
	} else {
		metrics.IncSearch("found")
	}

	if s.assist.Enabled() {
		response.AIAnswer = s.assist.Answer(ctx, query)
	}

	return response, nil
}
