package services_test

import (
	"context"
	"testing"

	"knowledgebase/models"
	"knowledgebase/repositories"
	"knowledgebase/services"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SearchServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	service  services.SearchService
	redactor *models.User
	category *models.Category
}

func (suite *SearchServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())

	suite.service = services.NewSearchService(
		repositories.NewArticleRepository(suite.db),
		repositories.NewAnalyticsRepository(suite.db),
		services.NewAssistService(nil, ""),
	)

	suite.redactor = createUser(suite.T(), suite.db, "writer", models.GroupRedactors)
	suite.category = createCategory(suite.T(), suite.db, "Printers")
}

func (suite *SearchServiceTestSuite) search(query string) *models.SearchResponse {
	response, err := suite.service.Search(context.Background(), query, nil, "127.0.0.1")
	suite.Require().NoError(err)
	return response
}

func (suite *SearchServiceTestSuite) searchLog() []models.Search {
	var rows []models.Search
	suite.db.Find(&rows)
	return rows
}

func (suite *SearchServiceTestSuite) TestEmptyQueryNotLogged() {
	response := suite.search("")

	suite.Empty(response.Results)
	suite.Empty(suite.searchLog())
}

func (suite *SearchServiceTestSuite) TestZeroResultsStillLogged() {
	response := suite.search("toner")

	suite.Empty(response.Results)

	rows := suite.searchLog()
	suite.Require().Len(rows, 1)
	suite.Equal("toner", rows[0].Term)
	suite.Equal(0, rows[0].ResultsFound)
}

func (suite *SearchServiceTestSuite) TestMatchesTitleAndContent() {
	createArticle(suite.T(), suite.db, "Printer jam", "Open the tray",
		models.StatusPublished, suite.category.ID, suite.redactor.ID)
	createArticle(suite.T(), suite.db, "Scanner help", "The printer driver matters",
		models.StatusPublished, suite.category.ID, suite.redactor.ID)

	response := suite.search("printer")
	suite.Len(response.Results, 2)
}

func (suite *SearchServiceTestSuite) TestCaseInsensitive() {
	createArticle(suite.T(), suite.db, "PRINTER Setup", "Body",
		models.StatusPublished, suite.category.ID, suite.redactor.ID)

	response := suite.search("printer")
	suite.Len(response.Results, 1)
}

func (suite *SearchServiceTestSuite) TestOnlyPublishedSearched() {
	createArticle(suite.T(), suite.db, "Printer draft", "Body",
		models.StatusDraft, suite.category.ID, suite.redactor.ID)
	createArticle(suite.T(), suite.db, "Printer pending", "Body",
		models.StatusPending, suite.category.ID, suite.redactor.ID)

	response := suite.search("printer")
	suite.Empty(response.Results)

	rows := suite.searchLog()
	suite.Require().Len(rows, 1)
	suite.Equal(0, rows[0].ResultsFound)
}

// An article matching on both fields shows up once in the results but twice
// in the logged count. The divergence is part of the analytics contract.
func (suite *SearchServiceTestSuite) TestLoggedCountDoubleCountsOverlap() {
	createArticle(suite.T(), suite.db, "Printer guide", "Everything about the printer",
		models.StatusPublished, suite.category.ID, suite.redactor.ID)

	response := suite.search("printer")
	suite.Len(response.Results, 1)

	rows := suite.searchLog()
	suite.Require().Len(rows, 1)
	suite.Equal(2, rows[0].ResultsFound)
}

func (suite *SearchServiceTestSuite) TestWildcardCharactersMatchLiterally() {
	createArticle(suite.T(), suite.db, "Printer jam", "Open the tray",
		models.StatusPublished, suite.category.ID, suite.redactor.ID)

	// LIKE metacharacters in the query are plain text, not wildcards.
	for _, query := range []string{"%", "_rinter", "p%jam", `\`} {
		response := suite.search(query)
		suite.Empty(response.Results, "query %q must not act as a wildcard", query)
	}

	var rows []models.Search
	suite.db.Find(&rows)
	suite.Require().Len(rows, 4)
	for _, row := range rows {
		suite.Equal(0, row.ResultsFound)
	}
}

func (suite *SearchServiceTestSuite) TestLiteralPercentInTitle() {
	createArticle(suite.T(), suite.db, "100% CPU usage", "Check the task manager",
		models.StatusPublished, suite.category.ID, suite.redactor.ID)

	response := suite.search("100% cpu")
	suite.Len(response.Results, 1)

	rows := suite.searchLog()
	suite.Require().Len(rows, 1)
	suite.Equal(1, rows[0].ResultsFound)
}

func (suite *SearchServiceTestSuite) TestLogAttributesUser() {
	userID := suite.redactor.ID
	_, err := suite.service.Search(context.Background(), "anything", &userID, "10.1.2.3")
	suite.NoError(err)

	rows := suite.searchLog()
	suite.Require().Len(rows, 1)
	suite.Require().NotNil(rows[0].UserID)
	suite.Equal(userID, *rows[0].UserID)
	suite.Equal("10.1.2.3", rows[0].IPAddress)
}

func (suite *SearchServiceTestSuite) TestRepeatQueriesAppendRows() {
	suite.search("vpn")
	suite.search("vpn")

	suite.Len(suite.searchLog(), 2)
}

func (suite *SearchServiceTestSuite) TestAssistDisabledWithoutClient() {
	createArticle(suite.T(), suite.db, "Printer guide", "Body",
		models.StatusPublished, suite.category.ID, suite.redactor.ID)

	response := suite.search("printer")
	suite.Empty(response.AIAnswer)
}

func TestSearchServiceSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}
