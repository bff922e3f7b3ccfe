package services_test

import (
	"testing"
	"time"

	"knowledgebase/config"
	"knowledgebase/models"
	"knowledgebase/repositories"
	"knowledgebase/services"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service services.AuthService
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	config.JWTSecret = []byte("test-secret")
	config.JWTExpiration = 24 * time.Hour
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = services.NewAuthService(repositories.NewUserRepository(suite.db))
}

func (suite *AuthServiceTestSuite) TestRegisterHashesPassword() {
	response, err := suite.service.Register(models.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})

	suite.NoError(err)
	suite.NotEmpty(response.Token)
	suite.NotEqual("password123", response.User.Password)

	var stored models.User
	suite.db.Where("email = ?", "bob@example.com").First(&stored)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	_, err := suite.service.Register(models.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Register(models.RegisterRequest{
		Username: "bob2",
		Email:    "bob@example.com",
		Password: "password123",
	})
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestRegisterAsRedactor() {
	response, err := suite.service.Register(models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "password123",
		Redactor: true,
	})
	suite.Require().NoError(err)

	user, err := suite.service.GetUserByID(response.User.ID)
	suite.NoError(err)
	suite.True(services.IsRedactor(user))
	suite.False(services.IsAdmin(user))
}

func (suite *AuthServiceTestSuite) TestLogin() {
	_, err := suite.service.Register(models.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	suite.Require().NoError(err)

	response, err := suite.service.Login(models.LoginRequest{
		Email:    "bob@example.com",
		Password: "password123",
	})
	suite.NoError(err)
	suite.NotEmpty(response.Token)
	suite.Equal("bob", response.User.Username)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.service.Register(models.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Login(models.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})
	suite.EqualError(err, "invalid credentials")
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	suite.EqualError(err, "invalid credentials")
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
