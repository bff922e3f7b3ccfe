package repositories

import (
	"knowledgebase/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
	AddToGroup(user *models.User, groupName string) error
	SaveAvatar(userID uint, path string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Groups").Preload("Profile").First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Groups").Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("username").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) AddToGroup(user *models.User, groupName string) error {
	var group models.Group
	if err := r.db.Where(models.Group{Name: groupName}).FirstOrCreate(&group).Error; err != nil {
		return err
	}
	return r.db.Model(user).Association("Groups").Append(&group)
}

func (r *userRepository) SaveAvatar(userID uint, path string) error {
	return r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Update("avatar", path).Error
}
