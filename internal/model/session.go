package model

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SessionStatus = string

const (
	StatusActive    SessionStatus = "active"
	StatusStarted   SessionStatus = "started"
	StatusCompleted SessionStatus = "completed"
	StatusExpired   SessionStatus = "expired"
)

// ShortCodeLen is the length of the human shareable session code.
const ShortCodeLen = 8

type Session struct {
	ID             uuid.UUID
	HostID         string
	ParticipantIDs []string
	Status         SessionStatus
	Pool           []MovieID
	Filters        Filters
	MatchedMovieID *MovieID
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

func (s Session) ShortCode() string {
	return ShortCode(s.ID)
}

func ShortCode(id uuid.UUID) string {
	return strings.ToLower(id.String()[:ShortCodeLen])
}

func (s Session) IsHost(userID string) bool {
	return userID != "" && s.HostID == userID
}

func (s Session) IsParticipant(userID string) bool {
	return userID != "" && slices.Contains(s.ParticipantIDs, userID)
}

func (s Session) InPool(movieID MovieID) bool {
	return slices.Contains(s.Pool, movieID)
}

// EffectiveStatus reports expired for sessions past their deadline
// that never matched. Storage never persists the expired status.
func (s Session) EffectiveStatus(now time.Time) SessionStatus {
	if s.Status != StatusCompleted && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
		return StatusExpired
	}
	return s.Status
}

// ParticipantsInfo is what a polling client needs to leave the lobby.
type ParticipantsInfo struct {
	Count   int
	Status  SessionStatus
	Started bool
}

// Match is an append-only history fact.
type Match struct {
	SessionID uuid.UUID
	MovieID   MovieID
	MatchedAt time.Time
}

// MergeParticipants keeps the host first and drops blanks and duplicates.
func MergeParticipants(hostID string, invited []string) []string {
	out := make([]string, 0, len(invited)+1)
	out = append(out, hostID)
	for _, id := range invited {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
