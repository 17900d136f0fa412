package controllers

import (
	"errors"
	"net/http"
	"time"

	"salon-sync-backend/services"
	"salon-sync-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReservationController handles the customer-facing endpoints. The customer
// identity (LINE user ID and display name) comes from the mini-app client and
// is trusted as-is at MVP scale.
type ReservationController struct {
	Reservations *services.ReservationService
}

// CreateReservation creates a new request in state requested.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input services.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	r, err := rc.Reservations.Create(c.Request.Context(), input)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "必須項目が不足しています",
				"details": verr.Details,
			})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "予約リクエストの作成に失敗しました")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": r.ID})
}

// MyReservations lists a customer's requests, newest first.
func (rc *ReservationController) MyReservations(c *gin.Context) {
	customerID := c.Query("customerId")
	if customerID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "customerId パラメータが必要です")
		return
	}

	reservations, err := rc.Reservations.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "予約リクエストの取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// NextReservation returns the customer's nearest upcoming fixed reservation,
// or null when none exists.
func (rc *ReservationController) NextReservation(c *gin.Context) {
	customerID := c.Query("customerId")
	if customerID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "customerId パラメータが必要です")
		return
	}

	reservation, err := rc.Reservations.NextFixed(c.Request.Context(), customerID, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "次回予約の取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}
