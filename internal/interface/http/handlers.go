package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mergington-hub/school-events-hub/internal/application/command"
	"github.com/mergington-hub/school-events-hub/internal/application/query"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

// Handlers bundles the application handlers behind the REST surface.
type Handlers struct {
	ListEvents  *query.ListEventsHandler
	GetEvent    *query.GetEventHandler
	Leaderboard *query.GetLeaderboardHandler
	UserRanking *query.GetUserRankingHandler
	ListBadges  *query.ListBadgesHandler
	UserBadges  *query.GetUserBadgesHandler

	Register   *command.RegisterParticipantHandler
	Unregister *command.UnregisterParticipantHandler
	Attendance *command.MarkAttendanceHandler
	Complete   *command.CompleteEventHandler
}

// respondError maps domain error kinds onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case shared.IsNotFound(err):
		c.JSON(http.StatusNotFound, errorBody("not_found", err.Error()))
	case shared.IsCapacityExceeded(err):
		c.JSON(http.StatusConflict, errorBody("capacity_exceeded", err.Error()))
	case shared.IsConflict(err):
		c.JSON(http.StatusConflict, errorBody("conflict", err.Error()))
	case shared.IsPreconditionFailed(err):
		c.JSON(http.StatusBadRequest, errorBody("precondition_failed", err.Error()))
	case shared.IsValidation(err):
		c.JSON(http.StatusBadRequest, errorBody("validation_error", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// EVENTS
// ══════════════════════════════════════════════════════════════════════════════

func (h *Handlers) listEvents(c *gin.Context) {
	events, err := h.ListEvents.Handle(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": out, "total": len(out)})
}

func (h *Handlers) getEvent(c *gin.Context) {
	e, err := h.GetEvent.Handle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(e))
}

type registerRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

func (h *Handlers) registerParticipant(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", "email is required: "+err.Error()))
		return
	}

	res, err := h.Register.Handle(c.Request.Context(), command.RegisterParticipantCommand{
		EventID:   c.Param("id"),
		UserEmail: body.Email,
		UserName:  body.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Registered for " + res.EventName,
		"event_id":      res.EventID,
		"email":         res.UserEmail,
		"points_earned": res.PointsEarned,
		"total_points":  res.TotalPoints,
		"early_bird":    res.EarlyBird,
		"chat_group":    res.ChatGroup,
	})
}

type emailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handlers) unregisterParticipant(c *gin.Context) {
	var body emailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", "email is required: "+err.Error()))
		return
	}

	res, err := h.Unregister.Handle(c.Request.Context(), command.UnregisterParticipantCommand{
		EventID:   c.Param("id"),
		UserEmail: body.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Unregistered from event",
		"event_id": res.EventID,
		"email":    res.UserEmail,
		"removed":  res.Removed,
	})
}

func (h *Handlers) markAttendance(c *gin.Context) {
	var body emailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", "email is required: "+err.Error()))
		return
	}

	res, err := h.Attendance.Handle(c.Request.Context(), command.MarkAttendanceCommand{
		EventID:   c.Param("id"),
		UserEmail: body.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Attendance recorded",
		"event_id":      res.EventID,
		"email":         res.UserEmail,
		"points_earned": res.PointsEarned,
	})
}

func (h *Handlers) completeEvent(c *gin.Context) {
	var body emailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("validation_error", "email is required: "+err.Error()))
		return
	}

	res, err := h.Complete.Handle(c.Request.Context(), command.CompleteEventCommand{
		EventID:   c.Param("id"),
		UserEmail: body.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Event completion recorded",
		"event_id":      res.EventID,
		"email":         res.UserEmail,
		"points_earned": res.PointsEarned,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// LEADERBOARD
// ══════════════════════════════════════════════════════════════════════════════

func (h *Handlers) getLeaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, errorBody("validation_error", "limit must be a positive integer"))
			return
		}
		limit = n
	}

	res, err := h.Leaderboard.Handle(c.Request.Context(), query.GetLeaderboardQuery{Limit: limit})
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]leaderboardEntryResponse, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, toLeaderboardEntryResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{
		"leaderboard":  entries,
		"total_ranked": res.TotalRanked,
	})
}

func (h *Handlers) getUserRanking(c *gin.Context) {
	res, err := h.UserRanking.Handle(c.Request.Context(), query.GetUserRankingQuery{
		UserEmail: c.Param("email"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	history := make([]pointRecordResponse, 0, len(res.History))
	for _, r := range res.History {
		history = append(history, toPointRecordResponse(r))
	}

	badgeIDs := make([]string, 0, len(res.Badges))
	for _, b := range res.Badges {
		badgeIDs = append(badgeIDs, b.BadgeID)
	}

	c.JSON(http.StatusOK, gin.H{
		"entry":   toLeaderboardEntryResponse(res.Entry),
		"history": history,
		"badges":  badgeIDs,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// BADGES
// ══════════════════════════════════════════════════════════════════════════════

func (h *Handlers) listBadges(c *gin.Context) {
	badges, err := h.ListBadges.Handle(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]badgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, badgeResponse{
			ID:           b.ID,
			BadgeType:    b.Type,
			Name:         b.Name,
			Description:  b.Description,
			IconURL:      b.IconURL,
			Requirements: b.Requirements,
		})
	}
	c.JSON(http.StatusOK, gin.H{"badges": out})
}

func (h *Handlers) getUserBadges(c *gin.Context) {
	earned, err := h.UserBadges.Handle(c.Request.Context(), query.GetUserBadgesQuery{
		UserEmail: c.Param("email"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]earnedBadgeResponse, 0, len(earned))
	for _, eb := range earned {
		out = append(out, toEarnedBadgeResponse(eb))
	}
	c.JSON(http.StatusOK, gin.H{"badges": out})
}
