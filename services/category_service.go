package services

import (
	"knowledgebase/models"
	"knowledgebase/repositories"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest, userID uint) (*models.Category, error)
	GetCategories() ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, userRepo repositories.UserRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, userRepo: userRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest, userID uint) (*models.Category, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !IsAdmin(user) {
		return nil, ErrForbidden
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.GetByID(*req.ParentID); err != nil {
			return nil, ErrNotFound
		}
	}

	category := &models.Category{
		Name:     req.Name,
		ParentID: req.ParentID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}
