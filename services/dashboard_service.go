package services

import (
	"time"

	"knowledgebase/models"
	"knowledgebase/repositories"
)

type DashboardService interface {
	AdminDashboard(userID uint) (*models.AdminDashboard, error)
	RedactorDashboard(userID uint) (*models.RedactorDashboard, error)
}

type dashboardService struct {
	articleRepo   repositories.ArticleRepository
	categoryRepo  repositories.CategoryRepository
	userRepo      repositories.UserRepository
	analyticsRepo repositories.AnalyticsRepository
}

func NewDashboardService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	analyticsRepo repositories.AnalyticsRepository,
) DashboardService {
	return &dashboardService{
		articleRepo:   articleRepo,
		categoryRepo:  categoryRepo,
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
	}
}

func (s *dashboardService) AdminDashboard(userID uint) (*models.AdminDashboard, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !IsAdmin(user) {
		return nil, ErrForbidden
	}

	dashboard := &models.AdminDashboard{}

	if dashboard.TotalArticles, err = s.articleRepo.Count(); err != nil {
		return nil, err
	}
	if dashboard.PublishedArticles, err = s.articleRepo.CountByStatus(models.StatusPublished); err != nil {
		return nil, err
	}
	if dashboard.PendingArticles, err = s.articleRepo.CountByStatus(models.StatusPending); err != nil {
		return nil, err
	}
	if dashboard.TotalCategories, err = s.categoryRepo.Count(); err != nil {
		return nil, err
	}
	if dashboard.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if dashboard.PopularArticles, err = s.articleRepo.TopViewed(5); err != nil {
		return nil, err
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	if dashboard.ZeroResultQueries, err = s.analyticsRepo.ZeroResultSearches(weekAgo, 10); err != nil {
		return nil, err
	}
	if dashboard.AverageRating, err = s.analyticsRepo.AverageRating(); err != nil {
		return nil, err
	}
	if dashboard.RecentArticles, err = s.articleRepo.ListRecent(5); err != nil {
		return nil, err
	}
	if dashboard.CategoryStats, err = s.categoryRepo.ArticleCountsPerCategory(); err != nil {
		return nil, err
	}

	return dashboard, nil
}

// RedactorDashboard is the admin dashboard's shape scoped to the acting
// redactor's own articles.
func (s *dashboardService) RedactorDashboard(userID uint) (*models.RedactorDashboard, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !IsRedactor(user) {
		return nil, ErrForbidden
	}

	dashboard := &models.RedactorDashboard{}

	articles, err := s.articleRepo.ListByAuthor(userID)
	if err != nil {
		return nil, err
	}
	dashboard.TotalArticles = int64(len(articles))
	if len(articles) > 5 {
		dashboard.RecentArticles = articles[:5]
	} else {
		dashboard.RecentArticles = articles
	}

	if dashboard.PublishedArticles, err = s.articleRepo.CountByAuthorAndStatus(userID, models.StatusPublished); err != nil {
		return nil, err
	}
	if dashboard.PendingArticles, err = s.articleRepo.CountByAuthorAndStatus(userID, models.StatusPending); err != nil {
		return nil, err
	}
	if dashboard.DraftArticles, err = s.articleRepo.CountByAuthorAndStatus(userID, models.StatusDraft); err != nil {
		return nil, err
	}
	if dashboard.PopularArticles, err = s.articleRepo.TopViewedByAuthor(userID, 5); err != nil {
		return nil, err
	}

	return dashboard, nil
}
