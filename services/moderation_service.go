package services

import (
	"errors"

	"knowledgebase/metrics"
	"knowledgebase/models"
	"knowledgebase/repositories"

	"gorm.io/gorm"
)

type ModerationService interface {
	Queue(userID uint) ([]models.Article, error)
	Decide(articleID uint, req models.ModerationRequest, userID uint) error
}

type moderationService struct {
	articleRepo  repositories.ArticleRepository
	solutionRepo repositories.SolutionRepository
	userRepo     repositories.UserRepository
	// requireAdmin switches the gate from login-only (historical behavior)
	// to the admin predicate.
	requireAdmin bool
}

func NewModerationService(
	articleRepo repositories.ArticleRepository,
	solutionRepo repositories.SolutionRepository,
	userRepo repositories.UserRepository,
	requireAdmin bool,
) ModerationService {
	return &moderationService{
		articleRepo:  articleRepo,
		solutionRepo: solutionRepo,
		userRepo:     userRepo,
		requireAdmin: requireAdmin,
	}
}

func (s *moderationService) gate(userID uint) error {
	if !s.requireAdmin {
		return nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if !IsAdmin(user) {
		return ErrForbidden
	}
	return nil
}

func (s *moderationService) Queue(userID uint) ([]models.Article, error) {
	if err := s.gate(userID); err != nil {
		return nil, err
	}
	return s.articleRepo.ListAllWithRelations()
}

// Decide applies one moderation action. Approve publishes, reject demotes to
// draft; solution decisions never cascade from article ones.
func (s *moderationService) Decide(articleID uint, req models.ModerationRequest, userID uint) error {
	if err := s.gate(userID); err != nil {
		return err
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	switch req.Action {
	case models.ActionApprove:
		article.Status = models.StatusPublished
		if err := s.articleRepo.Update(article); err != nil {
			return err
		}
	case models.ActionReject:
		article.Status = models.StatusDraft
		if err := s.articleRepo.Update(article); err != nil {
			return err
		}
	case models.ActionValidateSolution, models.ActionRefuseSolution:
		solution, err := s.solutionRepo.GetForArticle(req.SolutionID, article.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if req.Action == models.ActionValidateSolution {
			solution.Status = models.SolutionValidated
		} else {
			solution.Status = models.SolutionRefused
		}
		if err := s.solutionRepo.Update(solution); err != nil {
			return err
		}
	default:
		return ErrInvalid
	}

	metrics.IncModeration(req.Action)
	return nil
}
