package repositories

import (
	"knowledgebase/models"

	"gorm.io/gorm"
)

type SolutionRepository interface {
	Create(solution *models.Solution) error
	GetForArticle(solutionID, articleID uint) (*models.Solution, error)
	Update(solution *models.Solution) error
	ListValidatedByArticle(articleID uint) ([]models.Solution, error)
}

type solutionRepository struct {
	db *gorm.DB
}

func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &solutionRepository{db: db}
}

func (r *solutionRepository) Create(solution *models.Solution) error {
	return r.db.Create(solution).Error
}

// GetForArticle scopes the lookup to one article so a moderation request
// cannot touch another article's solution.
func (r *solutionRepository) GetForArticle(solutionID, articleID uint) (*models.Solution, error) {
	var solution models.Solution
	err := r.db.Where("id = ? AND article_id = ?", solutionID, articleID).First(&solution).Error
	return &solution, err
}

func (r *solutionRepository) Update(solution *models.Solution) error {
	return r.db.Save(solution).Error
}

func (r *solutionRepository) ListValidatedByArticle(articleID uint) ([]models.Solution, error) {
	var solutions []models.Solution
	err := r.db.Preload("Author").
		Where("article_id = ? AND status = ?", articleID, models.SolutionValidated).
		Order("created_at desc").
		Find(&solutions).Error
	return solutions, err
}
