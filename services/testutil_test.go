package services_test

import (
	"fmt"
	"testing"

	"knowledgebase/config"
	"knowledgebase/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSequence int

// openTestDB gives each suite its own in-memory SQLite database. The named
// shared-cache DSN keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSequence++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSequence)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, groups ...string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}

	for _, name := range groups {
		var group models.Group
		if err := db.Where(models.Group{Name: name}).FirstOrCreate(&group).Error; err != nil {
			t.Fatalf("Failed to fetch group %s: %v", name, err)
		}
		if err := db.Model(user).Association("Groups").Append(&group); err != nil {
			t.Fatalf("Failed to add %s to %s: %v", username, name, err)
		}
	}

	return user
}

func createSuperuser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:    username,
		Email:       username + "@example.com",
		Password:    "hashed",
		IsSuperuser: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create superuser %s: %v", username, err)
	}
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create category %s: %v", name, err)
	}
	return category
}

func createArticle(t *testing.T, db *gorm.DB, title, content string, status models.ArticleStatus, categoryID, authorID uint) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:      title,
		Content:    content,
		Status:     status,
		Version:    1,
		CategoryID: categoryID,
		AuthorID:   authorID,
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("Failed to create article %s: %v", title, err)
	}
	return article
}
