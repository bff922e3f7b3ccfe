package services

import (
	"errors"
	"strings"

	"knowledgebase/metrics"
	"knowledgebase/models"
	"knowledgebase/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, pdfPath string, authorID uint) (*models.Article, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, pdfPath string, userID uint) (*models.Article, error)
	GetPublishedArticle(id uint, viewerID *uint, ip string) (*models.ArticleDetail, error)
	ListMyArticles(userID uint) ([]models.Article, error)
	ListRecentPublished(limit int) ([]models.Article, error)
	ProposeSolution(articleID uint, content string, userID uint) (*models.Solution, error)
	AddComment(articleID uint, content string, userID uint) (*models.Comment, error)
	AddFeedback(articleID uint, req models.CreateFeedbackRequest, userID *uint) (*models.Feedback, error)
}

type articleService struct {
	articleRepo   repositories.ArticleRepository
	categoryRepo  repositories.CategoryRepository
	solutionRepo  repositories.SolutionRepository
	commentRepo   repositories.CommentRepository
	analyticsRepo repositories.AnalyticsRepository
	userRepo      repositories.UserRepository
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	solutionRepo repositories.SolutionRepository,
	commentRepo repositories.CommentRepository,
	analyticsRepo repositories.AnalyticsRepository,
	userRepo repositories.UserRepository,
) ArticleService {
	return &articleService{
		articleRepo:   articleRepo,
		categoryRepo:  categoryRepo,
		solutionRepo:  solutionRepo,
		commentRepo:   commentRepo,
		analyticsRepo: analyticsRepo,
		userRepo:      userRepo,
	}
}

// CreateArticle puts new articles straight into pending; the draft status
// exists in the schema but no handler produces it on creation.
func (s *articleService) CreateArticle(req models.CreateArticleRequest, pdfPath string, authorID uint) (*models.Article, error) {
	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if !IsRedactor(author) {
		return nil, ErrForbidden
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	article := &models.Article{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		AuthorID:   authorID,
		Status:     models.StatusPending,
		Version:    1,
		PDFFile:    pdfPath,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

// UpdateArticle forces the article back to pending from any prior status so
// every edit goes through moderation again.
func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, pdfPath string, userID uint) (*models.Article, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !IsRedactor(user) {
		return nil, ErrForbidden
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if article.AuthorID != userID {
		return nil, ErrForbidden
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	article.CategoryID = req.CategoryID
	article.Status = models.StatusPending
	article.Version++
	if pdfPath != "" {
		article.PDFFile = pdfPath
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

// GetPublishedArticle hides anything that is not published behind a not-found
// and records the view before returning.
func (s *articleService) GetPublishedArticle(id uint, viewerID *uint, ip string) (*models.ArticleDetail, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if article.Status != models.StatusPublished {
		return nil, ErrNotFound
	}

	if err := s.articleRepo.IncrementViews(article.ID); err != nil {
		return nil, err
	}
	article.Views++
	if err := s.analyticsRepo.RecordView(&models.ArticleView{
		ArticleID: article.ID,
		UserID:    viewerID,
		IPAddress: ip,
	}); err != nil {
		return nil, err
	}
	metrics.IncArticleView()

	solutions, err := s.solutionRepo.ListValidatedByArticle(article.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByArticle(article.ID)
	if err != nil {
		return nil, err
	}

	return &models.ArticleDetail{
		Article:   article,
		Solutions: solutions,
		Comments:  comments,
	}, nil
}

func (s *articleService) ListMyArticles(userID uint) ([]models.Article, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !IsRedactor(user) {
		return nil, ErrForbidden
	}
	return s.articleRepo.ListByAuthor(userID)
}

func (s *articleService) ListRecentPublished(limit int) ([]models.Article, error) {
	return s.articleRepo.ListRecentPublished(limit)
}

func (s *articleService) ProposeSolution(articleID uint, content string, userID uint) (*models.Solution, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalid
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	solution := &models.Solution{
		ArticleID: article.ID,
		Content:   content,
		AuthorID:  &userID,
		Status:    models.SolutionPending,
	}
	if err := s.solutionRepo.Create(solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// AddComment only accepts comments on published articles.
func (s *articleService) AddComment(articleID uint, content string, userID uint) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalid
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if article.Status != models.StatusPublished {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ArticleID: article.ID,
		Content:   content,
		AuthorID:  &userID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *articleService) AddFeedback(articleID uint, req models.CreateFeedbackRequest, userID *uint) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalid
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if article.Status != models.StatusPublished {
		return nil, ErrNotFound
	}

	feedback := &models.Feedback{
		ArticleID: article.ID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.analyticsRepo.RecordFeedback(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
