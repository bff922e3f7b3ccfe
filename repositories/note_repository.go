package repositories

import (
	"knowledgebase/models"

	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(note *models.AdminNote) error
	ListByRecipient(userID uint, limit int) ([]models.AdminNote, error)
	ListRecent(limit int) ([]models.AdminNote, error)
	CountUnseen(userID uint) (int64, error)
	MarkAllSeen(userID uint) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *models.AdminNote) error {
	return r.db.Create(note).Error
}

func (r *noteRepository) ListByRecipient(userID uint, limit int) ([]models.AdminNote, error) {
	var notes []models.AdminNote
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}

// ListRecent is deliberately unscoped: notes carry no sender, so the admin
// view is a global outbox.
func (r *noteRepository) ListRecent(limit int) ([]models.AdminNote, error) {
	var notes []models.AdminNote
	err := r.db.Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) CountUnseen(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminNote{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAllSeen is a single UPDATE over unseen rows, so repeating it is a
// no-op.
func (r *noteRepository) MarkAllSeen(userID uint) error {
	return r.db.Model(&models.AdminNote{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Update("seen", true).Error
}
