package repositories

import (
	"strings"

	"knowledgebase/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	ListByAuthor(authorID uint) ([]models.Article, error)
	ListRecentPublished(limit int) ([]models.Article, error)
	ListRecent(limit int) ([]models.Article, error)
	ListAllWithRelations() ([]models.Article, error)
	SearchPublished(query string) ([]models.Article, error)
	CountPublishedTitleMatches(query string) (int64, error)
	CountPublishedContentMatches(query string) (int64, error)
	Count() (int64, error)
	CountByStatus(status models.ArticleStatus) (int64, error)
	CountByAuthorAndStatus(authorID uint, status models.ArticleStatus) (int64, error)
	TopViewed(limit int) ([]models.Article, error)
	TopViewedByAuthor(authorID uint, limit int) ([]models.Article, error)
	IncrementViews(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) ListByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListRecentPublished(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Category").
		Where("status = ?", models.StatusPublished).
		Order("created_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListRecent(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Order("created_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// ListAllWithRelations feeds the moderation queue.
func (r *articleRepository) ListAllWithRelations() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Category").Preload("Solutions").
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern escapes LIKE metacharacters so a query term matches literally.
// The queries using it carry a matching ESCAPE clause.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}

// SearchPublished returns the deduplicated union of title and content
// matches; a single OR query never yields the same row twice.
func (r *articleRepository) SearchPublished(query string) ([]models.Article, error) {
	var articles []models.Article
	pattern := likePattern(query)
	err := r.db.Preload("Author").Preload("Category").
		Where("status = ?", models.StatusPublished).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\'`, pattern, pattern).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) CountPublishedTitleMatches(query string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("status = ?", models.StatusPublished).
		Where(`LOWER(title) LIKE ? ESCAPE '\'`, likePattern(query)).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) CountPublishedContentMatches(query string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("status = ?", models.StatusPublished).
		Where(`LOWER(content) LIKE ? ESCAPE '\'`, likePattern(query)).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByStatus(status models.ArticleStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByAuthorAndStatus(authorID uint, status models.ArticleStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("author_id = ? AND status = ?", authorID, status).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) TopViewed(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("status = ?", models.StatusPublished).
		Order("views desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) TopViewedByAuthor(authorID uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_id = ? AND status = ?", authorID, models.StatusPublished).
		Order("views desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// IncrementViews is a single UPDATE; the database provides whatever
// atomicity concurrent hits get.
func (r *articleRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
