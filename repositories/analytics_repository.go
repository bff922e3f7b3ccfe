package repositories

import (
	"time"

	"knowledgebase/models"

	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	RecordView(view *models.ArticleView) error
	RecordSearch(search *models.Search) error
	RecordFeedback(feedback *models.Feedback) error
	AverageRating() (float64, error)
	ZeroResultSearches(since time.Time, limit int) ([]models.Search, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) RecordView(view *models.ArticleView) error {
	return r.db.Create(view).Error
}

func (r *analyticsRepository) RecordSearch(search *models.Search) error {
	return r.db.Create(search).Error
}

func (r *analyticsRepository) RecordFeedback(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *analyticsRepository) AverageRating() (float64, error) {
	var avg float64
	err := r.db.Model(&models.Feedback{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *analyticsRepository) ZeroResultSearches(since time.Time, limit int) ([]models.Search, error) {
	var searches []models.Search
	err := r.db.Where("results_found = 0 AND created_at >= ?", since).
		Order("created_at desc").
		Limit(limit).
		Find(&searches).Error
	return searches, err
}
