package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"salon-sync-backend/models"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
)

// In-memory stand-ins for the gorm stores and the Calendar API.

type fakeReservationStore struct {
	records map[string]*models.ReservationRequest
	seq     int
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{records: map[string]*models.ReservationRequest{}}
}

func (s *fakeReservationStore) Create(ctx context.Context, r *models.ReservationRequest) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.UpdatedAt = r.CreatedAt
	clone := *r
	s.records[r.ID.String()] = &clone
	return nil
}

func (s *fakeReservationStore) Get(ctx context.Context, id string) (*models.ReservationRequest, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (s *fakeReservationStore) list(filter func(*models.ReservationRequest) bool) []models.ReservationRequest {
	var out []models.ReservationRequest
	for _, r := range s.records {
		if filter(r) {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *fakeReservationStore) ListByCustomer(ctx context.Context, customerID string) ([]models.ReservationRequest, error) {
	return s.list(func(r *models.ReservationRequest) bool { return r.CustomerID == customerID }), nil
}

func (s *fakeReservationStore) ListAll(ctx context.Context) ([]models.ReservationRequest, error) {
	return s.list(func(r *models.ReservationRequest) bool { return true }), nil
}

func (s *fakeReservationStore) TransitionStatus(ctx context.Context, id string, from, to models.ReservationStatus, eventID string) (bool, error) {
	r, ok := s.records[id]
	if !ok || r.Status != from {
		return false, nil
	}
	r.Status = to
	if eventID != "" {
		r.GoogleCalendarEventID = eventID
	}
	r.UpdatedAt = time.Now()
	return true, nil
}

type fakeTokenStore struct {
	tokens map[string]*models.StylistToken
	saves  int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*models.StylistToken{}}
}

func (s *fakeTokenStore) Get(ctx context.Context, email string) (*models.StylistToken, error) {
	t, ok := s.tokens[email]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (s *fakeTokenStore) Save(ctx context.Context, token *models.StylistToken) error {
	clone := *token
	s.tokens[token.Email] = &clone
	s.saves++
	return nil
}

type insertedEvent struct {
	calendarID string
	event      *calendar.Event
}

type fakeCalendarAPI struct {
	inserted  []insertedEvent
	calendars []*calendar.CalendarListEntry
	failWith  error
}

func (f *fakeCalendarAPI) InsertEvent(ctx context.Context, token *oauth2.Token, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.inserted = append(f.inserted, insertedEvent{calendarID: calendarID, event: event})
	return &calendar.Event{
		Id:       "evt-123",
		HtmlLink: "https://calendar.google.com/event?eid=evt-123",
	}, nil
}

func (f *fakeCalendarAPI) ListCalendars(ctx context.Context, token *oauth2.Token) ([]*calendar.CalendarListEntry, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.calendars, nil
}

var errProviderDown = errors.New("googleapi: Error 403: Rate Limit Exceeded")
