package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"knowledgebase/models"
)

func InitDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(GlobalConfig.Database.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// AutoMigrate is shared with the test suites, which run it against SQLite.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Profile{},
		&models.Category{},
		&models.Article{},
		&models.Solution{},
		&models.Comment{},
		&models.ArticleView{},
		&models.Search{},
		&models.Feedback{},
		&models.AdminNote{},
	); err != nil {
		return err
	}
	return seedGroups(db)
}

func seedGroups(db *gorm.DB) error {
	for _, name := range []string{models.GroupAdministrators, models.GroupRedactors} {
		var group models.Group
		if err := db.Where(models.Group{Name: name}).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}
	return nil
}
