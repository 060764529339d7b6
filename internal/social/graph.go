package social

import "github.com/anonto42/y2k-space/backend/internal/models"

// Graph is a snapshot of the friend and block edges touching one user. The
// rules in this package read it and never touch the store.
type Graph struct {
	Friendships []models.Friendship `json:"friendships"`
	Blocks      []models.Block      `json:"blocks"`
}

// FriendEdge returns the friend edge between a and b in either direction.
func (g Graph) FriendEdge(a, b uint) *models.Friendship {
	for i := range g.Friendships {
		if g.Friendships[i].Involves(a, b) {
			return &g.Friendships[i]
		}
	}
	return nil
}

// AreFriends reports an accepted friend edge between a and b.
func (g Graph) AreFriends(a, b uint) bool {
	edge := g.FriendEdge(a, b)
	return edge != nil && edge.Status == models.FriendshipAccepted
}

// HasBlocked reports whether blocker has blocked blocked.
func (g Graph) HasBlocked(blocker, blocked uint) bool {
	for _, b := range g.Blocks {
		if b.BlockerID == blocker && b.BlockedID == blocked {
			return true
		}
	}
	return false
}

func (g Graph) BlockedEitherWay(a, b uint) bool {
	return g.HasBlocked(a, b) || g.HasBlocked(b, a)
}

// FriendIDs lists the users with an accepted edge to userID.
func (g Graph) FriendIDs(userID uint) []uint {
	var ids []uint
	for _, f := range g.Friendships {
		if f.Status != models.FriendshipAccepted {
			continue
		}
		switch userID {
		case f.SenderID:
			ids = append(ids, f.ReceiverID)
		case f.ReceiverID:
			ids = append(ids, f.SenderID)
		}
	}
	return ids
}

// PendingFor lists the pending requests userID has received.
func (g Graph) PendingFor(userID uint) []models.Friendship {
	var out []models.Friendship
	for _, f := range g.Friendships {
		if f.Status == models.FriendshipPending && f.ReceiverID == userID {
			out = append(out, f)
		}
	}
	return out
}
