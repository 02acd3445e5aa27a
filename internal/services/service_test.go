package services

import (
	"testing"
	"time"

	"askhub/internal/db"
	"askhub/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	return conn
}

func createUser(t *testing.T, conn *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}
	require.NoError(t, conn.Create(&user).Error)
	return &user
}

func createQuestion(t *testing.T, conn *gorm.DB, creator *models.User, title string) *models.Question {
	t.Helper()
	question := models.Question{
		Title:     title,
		Content:   "something broke",
		CreatorID: creator.ID,
	}
	require.NoError(t, conn.Create(&question).Error)
	return &question
}

func createAnswer(t *testing.T, conn *gorm.DB, question *models.Question, creator *models.User, createdAt time.Time) *models.Answer {
	t.Helper()
	answer := models.Answer{
		QuestionID: question.ID,
		CreatorID:  creator.ID,
		Content:    "try this",
		CreatedAt:  createdAt,
	}
	require.NoError(t, conn.Create(&answer).Error)
	return &answer
}

func reloadQuestion(t *testing.T, conn *gorm.DB, id uint) *models.Question {
	t.Helper()
	var question models.Question
	require.NoError(t, conn.First(&question, id).Error)
	return &question
}
