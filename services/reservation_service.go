package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"salon-sync-backend/models"
)

// ReservationService governs the requested → fixed | rejected lifecycle.
// Approval's calendar write is the only side effect; a rejected request
// touches nothing outside the store.
type ReservationService struct {
	store    ReservationStore
	tokens   TokenStore
	auth     *GoogleAuthService
	calendar CalendarAPI
}

func NewReservationService(store ReservationStore, tokens TokenStore, auth *GoogleAuthService, calendar CalendarAPI) *ReservationService {
	return &ReservationService{
		store:    store,
		tokens:   tokens,
		auth:     auth,
		calendar: calendar,
	}
}

type CreateReservationInput struct {
	CustomerID        string `json:"customerId"`
	CustomerName      string `json:"customerName"`
	RequestedDateTime string `json:"requestedDateTime"`
	Menu              string `json:"menu"`
}

// ApprovalResult carries the external references of the created event.
type ApprovalResult struct {
	CalendarEventID   string
	CalendarEventLink string
}

// Create validates the input and stores a new reservation in state requested.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (*models.ReservationRequest, error) {
	details := map[string]string{}
	if input.CustomerID == "" {
		details["customerId"] = "必須"
	}
	if input.CustomerName == "" {
		details["customerName"] = "必須"
	}
	if input.Menu == "" {
		details["menu"] = "必須"
	}
	switch {
	case input.RequestedDateTime == "":
		details["requestedDateTime"] = "必須"
	default:
		if _, err := time.Parse(time.RFC3339, input.RequestedDateTime); err != nil {
			details["requestedDateTime"] = "日時の形式が正しくありません"
		}
	}
	if len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	r := &models.ReservationRequest{
		CustomerID:        input.CustomerID,
		CustomerName:      input.CustomerName,
		RequestedDateTime: input.RequestedDateTime,
		Menu:              input.Menu,
		Status:            models.StatusRequested,
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return r, nil
}

// Approve writes a calendar event into the stylist's selected calendar and
// transitions the reservation to fixed. On any provider failure the record
// stays requested so the stylist can simply retry.
func (s *ReservationService) Approve(ctx context.Context, id, stylistEmail string) (*ApprovalResult, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if r == nil {
		return nil, ErrNotFound
	}
	if r.Status != models.StatusRequested {
		return nil, ErrAlreadyProcessed
	}

	token, err := s.tokens.Get(ctx, stylistEmail)
	if err != nil {
		return nil, fmt.Errorf("load stylist token: %w", err)
	}
	if token == nil || token.AccessToken == "" {
		return nil, ErrAuthRequired
	}

	fresh, err := s.auth.FreshToken(ctx, token)
	if err != nil {
		return nil, err
	}

	event, err := BuildReservationEvent(r)
	if err != nil {
		return nil, err
	}

	calendarID := fresh.SelectedCalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := s.calendar.InsertEvent(ctx, fresh.OAuthToken(), calendarID, event)
	if err != nil {
		// Reservation stays requested; the stylist retries after fixing
		// whatever the provider complained about.
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}

	applied, err := s.store.TransitionStatus(ctx, id, models.StatusRequested, models.StatusFixed, created.Id)
	if err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
	if !applied {
		// A concurrent approve or reject won the conditional update. The
		// calendar event already exists; log its id for manual cleanup.
		log.Printf("reservation %s transitioned concurrently, orphan calendar event %s", id, created.Id)
		return nil, ErrAlreadyProcessed
	}

	return &ApprovalResult{
		CalendarEventID:   created.Id,
		CalendarEventLink: created.HtmlLink,
	}, nil
}

// Reject transitions the reservation to rejected. No external side effect.
func (s *ReservationService) Reject(ctx context.Context, id string) error {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load reservation: %w", err)
	}
	if r == nil {
		return ErrNotFound
	}
	if r.Status != models.StatusRequested {
		return ErrAlreadyProcessed
	}

	applied, err := s.store.TransitionStatus(ctx, id, models.StatusRequested, models.StatusRejected, "")
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if !applied {
		return ErrAlreadyProcessed
	}
	return nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*models.ReservationRequest, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *ReservationService) ListByCustomer(ctx context.Context, customerID string) ([]models.ReservationRequest, error) {
	return s.store.ListByCustomer(ctx, customerID)
}

func (s *ReservationService) ListAll(ctx context.Context) ([]models.ReservationRequest, error) {
	return s.store.ListAll(ctx)
}

// NextFixed returns the customer's nearest upcoming fixed reservation, or nil
// when none exists. RequestedDateTime is stored as the submitted string, so
// the comparison happens here after parsing rather than in SQL.
func (s *ReservationService) NextFixed(ctx context.Context, customerID string, now time.Time) (*models.ReservationRequest, error) {
	reservations, err := s.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	type upcoming struct {
		at time.Time
		r  models.ReservationRequest
	}
	var candidates []upcoming
	for _, r := range reservations {
		if r.Status != models.StatusFixed {
			continue
		}
		at, err := time.Parse(time.RFC3339, r.RequestedDateTime)
		if err != nil || at.Before(now) {
			continue
		}
		candidates = append(candidates, upcoming{at: at, r: r})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].at.Before(candidates[j].at)
	})
	next := candidates[0].r
	return &next, nil
}
