package controllers

import (
	"errors"
	"net/http"

	"salon-sync-backend/services"
	"salon-sync-backend/utils"

	"github.com/gin-gonic/gin"
)

// StylistController handles the stylist dashboard endpoints: reviewing
// reservation requests and approving or rejecting them.
type StylistController struct {
	Reservations *services.ReservationService
}

// ListRequests returns all reservation requests, newest first.
func (sc *StylistController) ListRequests(c *gin.Context) {
	reservations, err := sc.Reservations.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "予約リクエストの取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// GetRequest returns one reservation request by id.
func (sc *StylistController) GetRequest(c *gin.Context) {
	reservation, err := sc.Reservations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "予約リクエストが見つかりません")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "予約リクエストの取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// ApproveRequest transitions a request to fixed and writes the calendar event.
func (sc *StylistController) ApproveRequest(c *gin.Context) {
	email, ok := utils.StylistEmailFromSession(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Google認証が必要です")
		return
	}

	result, err := sc.Reservations.Approve(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "予約リクエストが見つかりません")
		case errors.Is(err, services.ErrAlreadyProcessed):
			utils.RespondWithError(c, http.StatusBadRequest, "この予約リクエストは既に処理済みです")
		case errors.Is(err, services.ErrAuthRequired), errors.Is(err, services.ErrReauthRequired):
			utils.RespondWithError(c, http.StatusUnauthorized, "Google認証が必要です")
		default:
			// Surfaces the provider's message so the stylist can diagnose
			// quota or revoked-consent failures before retrying.
			utils.RespondWithError(c, http.StatusInternalServerError, "承認処理に失敗しました: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "予約を承認し、Googleカレンダーに登録しました",
		"calendarEventId":   result.CalendarEventID,
		"calendarEventLink": result.CalendarEventLink,
	})
}

// RejectRequest transitions a request to rejected.
func (sc *StylistController) RejectRequest(c *gin.Context) {
	err := sc.Reservations.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "予約リクエストが見つかりません")
		case errors.Is(err, services.ErrAlreadyProcessed):
			utils.RespondWithError(c, http.StatusBadRequest, "この予約リクエストは既に処理済みです")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "却下処理に失敗しました")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "予約リクエストを却下しました"})
}
