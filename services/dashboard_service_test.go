package services_test

import (
	"testing"

	"knowledgebase/models"
	"knowledgebase/repositories"
	"knowledgebase/services"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	service  services.DashboardService
	admin    *models.User
	redactor *models.User
	category *models.Category
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = services.NewDashboardService(
		repositories.NewArticleRepository(suite.db),
		repositories.NewCategoryRepository(suite.db),
		repositories.NewUserRepository(suite.db),
		repositories.NewAnalyticsRepository(suite.db),
	)

	suite.admin = createSuperuser(suite.T(), suite.db, "root")
	suite.redactor = createUser(suite.T(), suite.db, "writer", models.GroupRedactors)
	suite.category = createCategory(suite.T(), suite.db, "Software")
}

func (suite *DashboardServiceTestSuite) TestAdminDashboardForbiddenForOthers() {
	_, err := suite.service.AdminDashboard(suite.redactor.ID)
	suite.ErrorIs(err, services.ErrForbidden)
}

func (suite *DashboardServiceTestSuite) TestAdminDashboardCounts() {
	createArticle(suite.T(), suite.db, "One", "Body", models.StatusPublished, suite.category.ID, suite.redactor.ID)
	createArticle(suite.T(), suite.db, "Two", "Body", models.StatusPending, suite.category.ID, suite.redactor.ID)
	createArticle(suite.T(), suite.db, "Three", "Body", models.StatusDraft, suite.category.ID, suite.redactor.ID)

	suite.db.Create(&models.Search{Term: "missing", ResultsFound: 0})
	suite.db.Create(&models.Search{Term: "found", ResultsFound: 3})
	suite.db.Create(&models.Feedback{ArticleID: 1, Rating: 4})
	suite.db.Create(&models.Feedback{ArticleID: 1, Rating: 2})

	dashboard, err := suite.service.AdminDashboard(suite.admin.ID)
	suite.Require().NoError(err)

	suite.Equal(int64(3), dashboard.TotalArticles)
	suite.Equal(int64(1), dashboard.PublishedArticles)
	suite.Equal(int64(1), dashboard.PendingArticles)
	suite.Equal(int64(1), dashboard.TotalCategories)
	suite.Equal(int64(2), dashboard.TotalUsers)
	suite.Require().Len(dashboard.ZeroResultQueries, 1)
	suite.Equal("missing", dashboard.ZeroResultQueries[0].Term)
	suite.InDelta(3.0, dashboard.AverageRating, 0.001)
	suite.Len(dashboard.RecentArticles, 3)
	suite.Require().Len(dashboard.CategoryStats, 1)
	suite.Equal(int64(3), dashboard.CategoryStats[0].ArticleCount)
}

func (suite *DashboardServiceTestSuite) TestAdminDashboardNoFeedback() {
	dashboard, err := suite.service.AdminDashboard(suite.admin.ID)
	suite.Require().NoError(err)
	suite.Zero(dashboard.AverageRating)
}

func (suite *DashboardServiceTestSuite) TestRedactorDashboardScopedToAuthor() {
	other := createUser(suite.T(), suite.db, "otherwriter", models.GroupRedactors)

	createArticle(suite.T(), suite.db, "Mine published", "Body", models.StatusPublished, suite.category.ID, suite.redactor.ID)
	createArticle(suite.T(), suite.db, "Mine pending", "Body", models.StatusPending, suite.category.ID, suite.redactor.ID)
	createArticle(suite.T(), suite.db, "Theirs", "Body", models.StatusPublished, suite.category.ID, other.ID)

	dashboard, err := suite.service.RedactorDashboard(suite.redactor.ID)
	suite.Require().NoError(err)

	suite.Equal(int64(2), dashboard.TotalArticles)
	suite.Equal(int64(1), dashboard.PublishedArticles)
	suite.Equal(int64(1), dashboard.PendingArticles)
	suite.Equal(int64(0), dashboard.DraftArticles)
	suite.Len(dashboard.RecentArticles, 2)
}

func (suite *DashboardServiceTestSuite) TestRedactorDashboardForbiddenForReaders() {
	reader := createUser(suite.T(), suite.db, "reader")

	_, err := suite.service.RedactorDashboard(reader.ID)
	suite.ErrorIs(err, services.ErrForbidden)
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
