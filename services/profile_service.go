package services

import (
	"errors"
	"strings"

	"knowledgebase/models"
	"knowledgebase/repositories"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfilePage(userID uint) (*models.ProfilePage, error)
	UpdateInfo(userID uint, req models.UpdateProfileRequest) (*models.User, error)
	SetAvatar(userID uint, path string) error
	SendNote(senderID uint, req models.SendNoteRequest) (*models.AdminNote, error)
	HomeInfo(userID uint) (int64, string, error)
}

type profileService struct {
	userRepo repositories.UserRepository
	noteRepo repositories.NoteRepository
}

func NewProfileService(userRepo repositories.UserRepository, noteRepo repositories.NoteRepository) ProfileService {
	return &profileService{userRepo: userRepo, noteRepo: noteRepo}
}

// GetProfilePage has a deliberate read side effect for non-admins: all their
// unseen notes are flipped to seen, once. Re-rendering changes nothing since
// the flags are already true.
func (s *profileService) GetProfilePage(userID uint) (*models.ProfilePage, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	page := &models.ProfilePage{User: user, IsAdmin: IsAdmin(user)}

	if page.IsAdmin {
		if page.SentNotes, err = s.noteRepo.ListRecent(10); err != nil {
			return nil, err
		}
		if page.AllUsers, err = s.userRepo.GetAll(); err != nil {
			return nil, err
		}
		return page, nil
	}

	if err := s.noteRepo.MarkAllSeen(userID); err != nil {
		return nil, err
	}
	if page.RecentNotes, err = s.noteRepo.ListByRecipient(userID, 10); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *profileService) UpdateInfo(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Username != "" {
		user.Username = req.Username
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *profileService) SetAvatar(userID uint, path string) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return err
	}
	return s.userRepo.SaveAvatar(userID, path)
}

func (s *profileService) SendNote(senderID uint, req models.SendNoteRequest) (*models.AdminNote, error) {
	sender, err := s.userRepo.GetByID(senderID)
	if err != nil {
		return nil, err
	}
	if !IsAdmin(sender) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrInvalid
	}

	recipient, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	note := &models.AdminNote{
		UserID:  recipient.ID,
		Content: req.Content,
		Seen:    false,
	}
	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// HomeInfo returns the unseen-note count and avatar URL shown on the home
// page for authenticated users.
func (s *profileService) HomeInfo(userID uint) (int64, string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, "", err
	}
	count, err := s.noteRepo.CountUnseen(userID)
	if err != nil {
		return 0, "", err
	}
	avatar := ""
	if user.Profile != nil {
		avatar = user.Profile.Avatar
	}
	return count, avatar, nil
}
