package social

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anonto42/y2k-space/backend/internal/models"
)

func TestResolvePresence(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name       string
		lastActive *time.Time
		want       Presence
	}{
		{"never active", nil, PresenceOffline},
		{"just now", at(0), PresenceOnline},
		{"one minute ago", at(time.Minute), PresenceOnline},
		{"just under the window", at(OnlineWindow - time.Second), PresenceOnline},
		{"exactly the window", at(OnlineWindow), PresenceAway},
		{"an hour ago", at(time.Hour), PresenceAway},
		{"last year", at(365 * 24 * time.Hour), PresenceAway},
		{"clock skew", at(-time.Minute), PresenceOnline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePresence(tt.lastActive, now))
		})
	}
}

func TestResolvePresence_IgnoresZone(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	dhaka := time.FixedZone("BDT", 6*60*60)
	ts := time.Date(2024, 3, 1, 17, 58, 0, 0, dhaka)

	assert.Equal(t, PresenceOnline, ResolvePresence(&ts, now))
}

func TestResolvePresenceString(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		raw  string
		want Presence
	}{
		{"", PresenceOffline},
		{"   ", PresenceOffline},
		{"not a timestamp", PresenceOffline},
		{"2024-03-01T11:58:00Z", PresenceOnline},
		{"2024-03-01T11:58:00.123456Z", PresenceOnline},
		{"2024-03-01 11:58:00", PresenceOnline},
		{"2024-03-01 11:58:00.000001", PresenceOnline},
		{"2024-03-01T11:58:00", PresenceOnline},
		{"2024-03-01 11:00:00", PresenceAway},
		{"2024-03-01T17:58:00+06:00", PresenceOnline},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePresenceString(tt.raw, now))
		})
	}
}

func TestAnnotateUser(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Minute)
	u := models.User{ID: 7, Username: "neo", DisplayName: "Neo", AvatarURL: "a.png", LastActive: &recent}

	view := AnnotateUser(u, now)

	assert.Equal(t, uint(7), view.ID)
	assert.Equal(t, "neo", view.Username)
	assert.Equal(t, "Neo", view.DisplayName)
	assert.Equal(t, PresenceOnline, view.Status)

	u.LastActive = nil
	assert.Equal(t, PresenceOffline, AnnotateUser(u, now).Status)
}
