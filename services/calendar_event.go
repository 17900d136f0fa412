package services

import (
	"fmt"
	"time"

	"salon-sync-backend/models"
	"salon-sync-backend/utils"

	"google.golang.org/api/calendar/v3"
)

const eventTimeZone = "Asia/Tokyo"

// BuildReservationEvent maps a reservation into a calendar event draft. Pure:
// no I/O, no clock reads. The "submitted at" line uses the stored CreatedAt,
// so the same reservation always produces the same event body.
func BuildReservationEvent(r *models.ReservationRequest) (*calendar.Event, error) {
	start, err := time.Parse(time.RFC3339, r.RequestedDateTime)
	if err != nil {
		return nil, fmt.Errorf("parse requested date time: %w", err)
	}

	duration := models.MenuDuration(r.Menu)
	end := start.Add(time.Duration(duration) * time.Minute)

	event := &calendar.Event{
		Summary: fmt.Sprintf("[予約] %s様 - %s", r.CustomerName, r.Menu),
		Description: "【Salon Calendar Sync】\n" +
			"メニュー: " + r.Menu + "\n" +
			"お客様: " + r.CustomerName + "\n" +
			"連絡手段: LINE\n" +
			"リクエスト送信日時: " + utils.FormatJSTDateTime(r.CreatedAt),
		Start: &calendar.EventDateTime{
			DateTime: r.RequestedDateTime,
			TimeZone: eventTimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: eventTimeZone,
		},
		// Private correlation block so the originating reservation can be
		// looked up from the event later.
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				"app":        "salon-calendar-sync",
				"source":     "app",
				"requestId":  r.ID.String(),
				"lineUserId": r.CustomerID,
				"menu":       r.Menu,
				"contact":    "LINE",
			},
		},
	}
	return event, nil
}
