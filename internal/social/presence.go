package social

import (
	"strings"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/models"
)

type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceAway    Presence = "away"
	PresenceOffline Presence = "offline"
)

// OnlineWindow is how recent the last activity must be to count as online.
const OnlineWindow = 5 * time.Minute

// ResolvePresence derives a presence label from a last-active time. Anything
// older than OnlineWindow is Away; a user who was never active is Offline.
func ResolvePresence(lastActive *time.Time, now time.Time) Presence {
	if lastActive == nil || lastActive.IsZero() {
		return PresenceOffline
	}
	if now.UTC().Sub(lastActive.UTC()) < OnlineWindow {
		return PresenceOnline
	}
	return PresenceAway
}

var storedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ResolvePresenceString is ResolvePresence for a stored timestamp string.
// Zone-less values are read as UTC; unparseable values yield Offline.
func ResolvePresenceString(raw string, now time.Time) Presence {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PresenceOffline
	}
	for _, layout := range storedTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ResolvePresence(&t, now)
		}
	}
	return PresenceOffline
}

// UserView is a user's public card annotated with presence.
type UserView struct {
	models.UserCompact
	Status Presence `json:"status"`
}

func AnnotateUser(u models.User, now time.Time) UserView {
	return UserView{
		UserCompact: u.ToCompact(),
		Status:      ResolvePresence(u.LastActive, now),
	}
}
