package db

import (
	"log"

	"askhub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and runs migrations.
func Open(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connection established")

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	seedTags(conn)
	return conn, nil
}

// Migrate runs the schema migration for all models. Exposed separately so
// tests can run it against their own database.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Question{},
		&models.QuestionMetaData{},
		&models.Answer{},
		&models.QuestionVote{},
		&models.AnswerVote{},
	)
}

func seedTags(conn *gorm.DB) {
	var count int64
	conn.Model(&models.Tag{}).Count(&count)
	if count > 0 {
		return
	}

	tags := []models.Tag{
		{Name: "general"},
		{Name: "installation"},
		{Name: "crash"},
		{Name: "sync"},
		{Name: "privacy"},
	}
	for _, tag := range tags {
		if err := conn.Create(&tag).Error; err != nil {
			log.Printf("Failed to create tag %s: %v", tag.Name, err)
		}
	}
	log.Println("Initial tag vocabulary created")
}
