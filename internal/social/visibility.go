package social

import "github.com/anonto42/y2k-space/backend/internal/models"

// CanView reports whether viewerID may see post. Public posts are visible to
// everyone, friends-only posts to the author and the author's friends.
func CanView(viewerID uint, post models.Post, g Graph) bool {
	switch {
	case post.Visibility == models.VisibilityPublic:
		return true
	case viewerID == 0:
		return false
	case post.AuthorID == viewerID:
		return true
	case post.Visibility == models.VisibilityFriends:
		return g.AreFriends(viewerID, post.AuthorID)
	default:
		return false
	}
}

// FilterVisiblePosts keeps the posts viewerID may see, preserving order.
// g must contain the viewer's edges.
func FilterVisiblePosts(viewerID uint, posts []models.Post, g Graph) []models.Post {
	visible := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if CanView(viewerID, p, g) {
			visible = append(visible, p)
		}
	}
	return visible
}
