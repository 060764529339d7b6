package social

import "github.com/anonto42/y2k-space/backend/internal/models"

type Relationship string

const (
	// RelationshipUnresolved is returned for self-views and anonymous viewers,
	// where no relationship is computed.
	RelationshipUnresolved      Relationship = ""
	RelationshipNone            Relationship = "none"
	RelationshipRequestSent     Relationship = "request_sent"
	RelationshipRequestReceived Relationship = "request_received"
	RelationshipFriends         Relationship = "friends"
	RelationshipBlocked         Relationship = "blocked"
)

// ResolveRelationship computes how viewerID relates to targetID. viewerID 0 is
// an anonymous viewer. ErrAccessDenied is returned when the target has
// blocked the viewer; that check wins over every other state.
func ResolveRelationship(viewerID, targetID uint, g Graph) (Relationship, error) {
	if viewerID == 0 || viewerID == targetID {
		return RelationshipUnresolved, nil
	}
	if g.HasBlocked(targetID, viewerID) {
		return RelationshipUnresolved, ErrAccessDenied
	}
	if g.HasBlocked(viewerID, targetID) {
		return RelationshipBlocked, nil
	}

	edge := g.FriendEdge(viewerID, targetID)
	switch {
	case edge == nil:
		return RelationshipNone, nil
	case edge.Status == models.FriendshipAccepted:
		return RelationshipFriends, nil
	case edge.SenderID == viewerID:
		return RelationshipRequestSent, nil
	default:
		return RelationshipRequestReceived, nil
	}
}
