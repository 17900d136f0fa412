package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarAPI is the slice of the Google Calendar API the backend uses.
type CalendarAPI interface {
	InsertEvent(ctx context.Context, token *oauth2.Token, calendarID string, event *calendar.Event) (*calendar.Event, error)
	ListCalendars(ctx context.Context, token *oauth2.Token) ([]*calendar.CalendarListEntry, error)
}

type googleCalendarAPI struct {
	config *oauth2.Config
}

func NewCalendarAPI(config *oauth2.Config) CalendarAPI {
	return &googleCalendarAPI{config: config}
}

func (g *googleCalendarAPI) service(ctx context.Context, token *oauth2.Token) (*calendar.Service, error) {
	if token == nil {
		return nil, fmt.Errorf("token cannot be nil")
	}

	client := g.config.Client(ctx, token)
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return service, nil
}

func (g *googleCalendarAPI) InsertEvent(ctx context.Context, token *oauth2.Token, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	service, err := g.service(ctx, token)
	if err != nil {
		return nil, err
	}
	return service.Events.Insert(calendarID, event).Context(ctx).Do()
}

func (g *googleCalendarAPI) ListCalendars(ctx context.Context, token *oauth2.Token) ([]*calendar.CalendarListEntry, error) {
	service, err := g.service(ctx, token)
	if err != nil {
		return nil, err
	}
	list, err := service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}
