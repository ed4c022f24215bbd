package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mergington-hub/school-events-hub/internal/application/query"
	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/internal/domain/leaderboard"
	"github.com/mergington-hub/school-events-hub/internal/domain/points"
	"github.com/mergington-hub/school-events-hub/pkg/timeutil"
)

// errorBody is the uniform error envelope.
func errorBody(code, message string) gin.H {
	return gin.H{
		"error":   code,
		"message": message,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// RESPONSE SHAPES
// ══════════════════════════════════════════════════════════════════════════════

type participantResponse struct {
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Points         int       `json:"points"`
	ChatGroup      string    `json:"chat_group,omitempty"`
}

type eventResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	Organizer       string                `json:"organizer"`
	OrganizerEmail  string                `json:"organizer_email"`
	Schedule        string                `json:"schedule"`
	EventDate       string                `json:"event_date"`
	MaxParticipants int                   `json:"max_participants"`
	SpotsLeft       int                   `json:"spots_left"`
	EventType       string                `json:"event_type"`
	Fee             float64               `json:"fee"`
	ChatGroup       string                `json:"chat_group,omitempty"`
	Status          string                `json:"status"`
	Participants    []participantResponse `json:"participants"`
}

func toEventResponse(e *event.Event) eventResponse {
	participants := make([]participantResponse, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, participantResponse{
			Email:          p.Email,
			Name:           p.Name,
			EnrollmentDate: p.EnrollmentDate,
			Points:         p.Points,
			ChatGroup:      p.ChatGroup,
		})
	}

	spotsLeft := e.MaxParticipants - len(e.Participants)
	if spotsLeft < 0 {
		spotsLeft = 0
	}

	return eventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		Organizer:       e.Organizer,
		OrganizerEmail:  e.OrganizerEmail,
		Schedule:        e.Schedule,
		EventDate:       timeutil.FormatDateStr(e.Date),
		MaxParticipants: e.MaxParticipants,
		SpotsLeft:       spotsLeft,
		EventType:       string(e.Type),
		Fee:             e.Fee,
		ChatGroup:       e.ChatGroup,
		Status:          string(e.Status),
		Participants:    participants,
	}
}

type leaderboardEntryResponse struct {
	Rank           int    `json:"rank"`
	UserEmail      string `json:"user_email"`
	UserName       string `json:"user_name"`
	TotalPoints    int    `json:"total_points"`
	BadgesCount    int    `json:"badges_count"`
	RecentActivity string `json:"recent_activity"`
}

func toLeaderboardEntryResponse(e leaderboard.Entry) leaderboardEntryResponse {
	return leaderboardEntryResponse{
		Rank:           int(e.Rank),
		UserEmail:      e.Email,
		UserName:       e.Name,
		TotalPoints:    e.TotalPoints,
		BadgesCount:    e.BadgesCount,
		RecentActivity: e.RecentActivity,
	}
}

type pointRecordResponse struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id,omitempty"`
	PointsEarned int       `json:"points_earned"`
	PointType    string    `json:"point_type"`
	Reason       string    `json:"reason"`
	DateAwarded  time.Time `json:"date_awarded"`
}

func toPointRecordResponse(r points.Record) pointRecordResponse {
	return pointRecordResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		PointsEarned: r.Points,
		PointType:    string(r.Type),
		Reason:       r.Reason,
		DateAwarded:  r.AwardedAt,
	}
}

type badgeResponse struct {
	ID           string `json:"id"`
	BadgeType    string `json:"badge_type"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IconURL      string `json:"icon_url,omitempty"`
	Requirements string `json:"requirements"`
}

type earnedBadgeResponse struct {
	badgeResponse
	EarnedDate time.Time `json:"earned_date"`
	Level      int       `json:"badge_level"`
}

func toEarnedBadgeResponse(eb query.EarnedBadge) earnedBadgeResponse {
	return earnedBadgeResponse{
		badgeResponse: badgeResponse{
			ID:           eb.Badge.ID,
			BadgeType:    eb.Badge.Type,
			Name:         eb.Badge.Name,
			Description:  eb.Badge.Description,
			IconURL:      eb.Badge.IconURL,
			Requirements: eb.Badge.Requirements,
		},
		EarnedDate: eb.EarnedAt,
		Level:      eb.Level,
	}
}
