package services

import (
	"context"
	"errors"

	"salon-sync-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenStore persists one OAuth token record per stylist email.
type TokenStore interface {
	// Get returns (nil, nil) when no record exists for the email.
	Get(ctx context.Context, email string) (*models.StylistToken, error)
	// Save creates the record or updates it in place.
	Save(ctx context.Context, token *models.StylistToken) error
}

type gormTokenStore struct {
	db *gorm.DB
}

func NewTokenStore(db *gorm.DB) TokenStore {
	return &gormTokenStore{db: db}
}

func (s *gormTokenStore) Get(ctx context.Context, email string) (*models.StylistToken, error) {
	var token models.StylistToken
	err := s.db.WithContext(ctx).First(&token, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *gormTokenStore) Save(ctx context.Context, token *models.StylistToken) error {
	// Upsert keyed by email: refresh events overwrite the existing record.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			UpdateAll: true,
		}).
		Create(token).Error
}
