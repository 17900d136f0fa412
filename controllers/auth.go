package controllers

import (
	"net/http"
	"os"

	"salon-sync-backend/services"
	"salon-sync-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthController handles the Google OAuth consent flow and calendar selection
// for the stylist dashboard.
type AuthController struct {
	Auth     *services.GoogleAuthService
	Tokens   services.TokenStore
	Calendar services.CalendarAPI
}

type SelectCalendarInput struct {
	CalendarID   string `json:"calendarId" binding:"required"`
	CalendarName string `json:"calendarName"`
}

func frontendURL(path string) string {
	return os.Getenv("FRONTEND_BASE_URL") + path
}

// GoogleLogin redirects the stylist to the Google consent screen.
func (a *AuthController) GoogleLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, a.Auth.AuthCodeURL())
}

// GoogleCallback handles the provider redirect: exchanges the code, derives
// the stylist identity from the ID token, persists the token record, and
// opens a session. All failures redirect back to the auth page with an error
// code in the query string.
func (a *AuthController) GoogleCallback(c *gin.Context) {
	if errCode := c.Query("error"); errCode != "" {
		c.Redirect(http.StatusFound, frontendURL("/stylist/auth?error=auth_denied"))
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, frontendURL("/stylist/auth?error=no_code"))
		return
	}

	token, err := a.Auth.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusFound, frontendURL("/stylist/auth?error=token_exchange_failed"))
		return
	}

	idToken, _ := token.Extra("id_token").(string)
	email, err := a.Auth.EmailFromIDToken(idToken)
	if err != nil {
		c.Redirect(http.StatusFound, frontendURL("/stylist/auth?error=no_email"))
		return
	}

	record, err := a.Auth.SaveExchangedToken(c.Request.Context(), email, token)
	if err != nil {
		c.Redirect(http.StatusFound, frontendURL("/stylist/auth?error=token_save_failed"))
		return
	}

	if err := utils.SetStylistSession(c, email); err != nil {
		c.Redirect(http.StatusFound, frontendURL("/stylist/auth?error=session_failed"))
		return
	}

	// First-time stylists pick a destination calendar; returning ones go
	// straight to the request list.
	if record.SelectedCalendarID == "" {
		c.Redirect(http.StatusFound, frontendURL("/stylist/calendar-select"))
		return
	}
	c.Redirect(http.StatusFound, frontendURL("/stylist/requests"))
}

// GoogleStatus reports whether the stylist session holds a usable token.
func (a *AuthController) GoogleStatus(c *gin.Context) {
	email, ok := utils.StylistEmailFromSession(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	token, err := a.Tokens.Get(c.Request.Context(), email)
	if err != nil || token == nil || token.AccessToken == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated":        true,
		"email":                email,
		"selectedCalendarId":   token.SelectedCalendarID,
		"selectedCalendarName": token.SelectedCalendarName,
	})
}

// ListCalendars returns the stylist's writable calendars.
func (a *AuthController) ListCalendars(c *gin.Context) {
	email, ok := utils.StylistEmailFromSession(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Google認証が必要です")
		return
	}

	token, err := a.Tokens.Get(c.Request.Context(), email)
	if err != nil || token == nil || token.AccessToken == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Google認証が必要です")
		return
	}

	fresh, err := a.Auth.FreshToken(c.Request.Context(), token)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Google認証が必要です")
		return
	}

	items, err := a.Calendar.ListCalendars(c.Request.Context(), fresh.OAuthToken())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "カレンダー一覧の取得に失敗しました")
		return
	}

	calendars := make([]gin.H, 0, len(items))
	for _, item := range items {
		if item.AccessRole != "writer" && item.AccessRole != "owner" {
			continue
		}
		calendars = append(calendars, gin.H{
			"id":              item.Id,
			"summary":         item.Summary,
			"backgroundColor": item.BackgroundColor,
			"primary":         item.Primary,
		})
	}

	c.JSON(http.StatusOK, gin.H{"calendars": calendars})
}

// SelectCalendar persists the stylist's destination calendar choice.
func (a *AuthController) SelectCalendar(c *gin.Context) {
	email, ok := utils.StylistEmailFromSession(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Google認証が必要です")
		return
	}

	var input SelectCalendarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "calendarId は必須です")
		return
	}

	token, err := a.Tokens.Get(c.Request.Context(), email)
	if err != nil || token == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Google認証が必要です")
		return
	}

	token.SelectedCalendarID = input.CalendarID
	token.SelectedCalendarName = input.CalendarName
	if err := a.Tokens.Save(c.Request.Context(), token); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "カレンダーの保存に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "カレンダーを保存しました"})
}
