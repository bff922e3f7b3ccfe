package services_test

import (
	"testing"

	"knowledgebase/models"
	"knowledgebase/repositories"
	"knowledgebase/services"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service services.ProfileService
	admin   *models.User
	user    *models.User
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = services.NewProfileService(
		repositories.NewUserRepository(suite.db),
		repositories.NewNoteRepository(suite.db),
	)

	suite.admin = createSuperuser(suite.T(), suite.db, "root")
	suite.user = createUser(suite.T(), suite.db, "alice")
}

func (suite *ProfileServiceTestSuite) unseenCount(userID uint) int64 {
	var count int64
	suite.db.Model(&models.AdminNote{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Count(&count)
	return count
}

func (suite *ProfileServiceTestSuite) TestProfileCreatedWithUser() {
	var profile models.Profile
	err := suite.db.Where("user_id = ?", suite.user.ID).First(&profile).Error
	suite.NoError(err)
}

func (suite *ProfileServiceTestSuite) TestProfileRepairedOnSave() {
	suite.db.Where("user_id = ?", suite.user.ID).Delete(&models.Profile{})

	_, err := suite.service.UpdateInfo(suite.user.ID, models.UpdateProfileRequest{FirstName: "Alice"})
	suite.NoError(err)

	var profiles []models.Profile
	suite.db.Where("user_id = ?", suite.user.ID).Find(&profiles)
	suite.Len(profiles, 1)
}

func (suite *ProfileServiceTestSuite) TestUpdateInfoKeepsBlankFields() {
	updated, err := suite.service.UpdateInfo(suite.user.ID, models.UpdateProfileRequest{
		FirstName: "Alice",
	})
	suite.NoError(err)
	suite.Equal("Alice", updated.FirstName)
	suite.Equal("alice", updated.Username)
	suite.Equal("alice@example.com", updated.Email)
}

func (suite *ProfileServiceTestSuite) TestSendNoteRequiresAdmin() {
	_, err := suite.service.SendNote(suite.user.ID, models.SendNoteRequest{
		UserID:  suite.admin.ID,
		Content: "hello",
	})
	suite.ErrorIs(err, services.ErrForbidden)
}

func (suite *ProfileServiceTestSuite) TestSendNoteUnknownRecipient() {
	_, err := suite.service.SendNote(suite.admin.ID, models.SendNoteRequest{
		UserID:  9999,
		Content: "hello",
	})
	suite.ErrorIs(err, services.ErrNotFound)
}

func (suite *ProfileServiceTestSuite) TestSendNoteBlankContent() {
	_, err := suite.service.SendNote(suite.admin.ID, models.SendNoteRequest{
		UserID:  suite.user.ID,
		Content: "   ",
	})
	suite.ErrorIs(err, services.ErrInvalid)
}

func (suite *ProfileServiceTestSuite) TestProfileReadMarksNotesSeen() {
	for i := 0; i < 3; i++ {
		_, err := suite.service.SendNote(suite.admin.ID, models.SendNoteRequest{
			UserID:  suite.user.ID,
			Content: "reminder",
		})
		suite.Require().NoError(err)
	}
	suite.Equal(int64(3), suite.unseenCount(suite.user.ID))

	page, err := suite.service.GetProfilePage(suite.user.ID)
	suite.NoError(err)
	suite.False(page.IsAdmin)
	suite.Len(page.RecentNotes, 3)
	suite.Equal(int64(0), suite.unseenCount(suite.user.ID))

	// Rendering again changes nothing.
	_, err = suite.service.GetProfilePage(suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(0), suite.unseenCount(suite.user.ID))
}

func (suite *ProfileServiceTestSuite) TestAdminProfileSeesOutboxAndUsers() {
	_, err := suite.service.SendNote(suite.admin.ID, models.SendNoteRequest{
		UserID:  suite.user.ID,
		Content: "note",
	})
	suite.Require().NoError(err)

	page, err := suite.service.GetProfilePage(suite.admin.ID)
	suite.NoError(err)
	suite.True(page.IsAdmin)
	suite.Len(page.SentNotes, 1)
	suite.Len(page.AllUsers, 2)

	// The admin view does not consume the recipient's unseen flags.
	suite.Equal(int64(1), suite.unseenCount(suite.user.ID))
}

func (suite *ProfileServiceTestSuite) TestHomeInfoCountsUnseen() {
	_, err := suite.service.SendNote(suite.admin.ID, models.SendNoteRequest{
		UserID:  suite.user.ID,
		Content: "ping",
	})
	suite.Require().NoError(err)

	count, _, err := suite.service.HomeInfo(suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *ProfileServiceTestSuite) TestSetAvatar() {
	err := suite.service.SetAvatar(suite.user.ID, "/media/avatars/1_a.png")
	suite.NoError(err)

	var profile models.Profile
	suite.db.Where("user_id = ?", suite.user.ID).First(&profile)
	suite.Equal("/media/avatars/1_a.png", profile.Avatar)
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
