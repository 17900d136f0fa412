package services

import (
	"context"
	"errors"
	"time"

	"salon-sync-backend/models"

	"gorm.io/gorm"
)

// ReservationStore persists reservation requests. Listing order is createdAt
// descending; relative order of records created at the same instant is
// unspecified (no secondary sort key).
type ReservationStore interface {
	Create(ctx context.Context, r *models.ReservationRequest) error
	// Get returns (nil, nil) when no record exists for the id.
	Get(ctx context.Context, id string) (*models.ReservationRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.ReservationRequest, error)
	ListAll(ctx context.Context) ([]models.ReservationRequest, error)
	// TransitionStatus updates status (and optionally the calendar event id)
	// only if the current status still equals from, and reports whether the
	// update was applied. This closes the check-then-act race between two
	// near-simultaneous approvals.
	TransitionStatus(ctx context.Context, id string, from, to models.ReservationStatus, eventID string) (bool, error)
}

type gormReservationStore struct {
	db *gorm.DB
}

func NewReservationStore(db *gorm.DB) ReservationStore {
	return &gormReservationStore{db: db}
}

func (s *gormReservationStore) Create(ctx context.Context, r *models.ReservationRequest) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *gormReservationStore) Get(ctx context.Context, id string) (*models.ReservationRequest, error) {
	var r models.ReservationRequest
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormReservationStore) ListByCustomer(ctx context.Context, customerID string) ([]models.ReservationRequest, error) {
	var reservations []models.ReservationRequest
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (s *gormReservationStore) ListAll(ctx context.Context) ([]models.ReservationRequest, error) {
	var reservations []models.ReservationRequest
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (s *gormReservationStore) TransitionStatus(ctx context.Context, id string, from, to models.ReservationStatus, eventID string) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if eventID != "" {
		updates["google_calendar_event_id"] = eventID
	}

	res := s.db.WithContext(ctx).
		Model(&models.ReservationRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
