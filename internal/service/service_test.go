package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one in-memory database per test, one connection so it stays alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Medicine{},
		&models.Disease{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
	))

	return &repo.GormRepo{DB: db}
}

func createMedicine(t *testing.T, r *repo.GormRepo, name string, price, stock int64) *models.Medicine {
	t.Helper()
	med := &models.Medicine{
		Name:        name,
		Description: "test medicine",
		Category:    "Test",
		Price:       price,
		Stock:       stock,
	}
	require.NoError(t, r.DB.Create(med).Error)
	return med
}
