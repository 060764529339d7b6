package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/internal/social"
)

// EnrichedPost is a post with its author, like state and comments.
type EnrichedPost struct {
	models.Post
	Author    social.UserView   `json:"author"`
	LikeCount int64             `json:"like_count"`
	IsLiked   bool              `json:"is_liked"`
	Comments  []EnrichedComment `json:"comments"`
}

type EnrichedComment struct {
	models.Comment
	Author    social.UserView `json:"author"`
	LikeCount int64           `json:"like_count"`
	IsLiked   bool            `json:"is_liked"`
}

// postEnricher batches the lookups needed to render posts for a viewer.
// Callers must pass posts that already passed the visibility filter.
type postEnricher struct {
	users    repositories.UserRepository
	comments repositories.CommentRepository
	likes    repositories.LikeRepository
}

func newPostEnricher(users repositories.UserRepository, comments repositories.CommentRepository, likes repositories.LikeRepository) *postEnricher {
	return &postEnricher{users: users, comments: comments, likes: likes}
}

func commentKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (e *postEnricher) enrichPosts(ctx context.Context, viewerID uint, posts []models.Post) ([]EnrichedPost, error) {
	out := make([]EnrichedPost, 0, len(posts))
	if len(posts) == 0 {
		return out, nil
	}

	postIDs := make([]string, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID.Hex()
	}

	comments, err := e.comments.GetCommentsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	enrichedComments, err := e.enrichComments(ctx, viewerID, comments)
	if err != nil {
		return nil, err
	}
	byPost := make(map[string][]EnrichedComment, len(posts))
	for _, c := range enrichedComments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}

	authorIDs := make([]uint, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.AuthorID)
	}
	authors, err := e.userViews(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	counts, err := e.likes.CountByTargets(ctx, models.LikeTargetPost, postIDs)
	if err != nil {
		return nil, err
	}
	liked, err := e.likes.LikedTargets(ctx, viewerID, models.LikeTargetPost, postIDs)
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		pid := p.ID.Hex()
		item := EnrichedPost{
			Post:      p,
			Author:    authors[p.AuthorID],
			LikeCount: counts[pid],
			IsLiked:   liked[pid],
			Comments:  byPost[pid],
		}
		if item.Comments == nil {
			item.Comments = []EnrichedComment{}
		}
		out = append(out, item)
	}
	return out, nil
}

func (e *postEnricher) enrichComments(ctx context.Context, viewerID uint, comments []models.Comment) ([]EnrichedComment, error) {
	out := make([]EnrichedComment, 0, len(comments))
	if len(comments) == 0 {
		return out, nil
	}

	ids := make([]string, len(comments))
	authorIDs := make([]uint, len(comments))
	for i, c := range comments {
		ids[i] = commentKey(c.ID)
		authorIDs[i] = c.AuthorID
	}

	authors, err := e.userViews(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	counts, err := e.likes.CountByTargets(ctx, models.LikeTargetComment, ids)
	if err != nil {
		return nil, err
	}
	liked, err := e.likes.LikedTargets(ctx, viewerID, models.LikeTargetComment, ids)
	if err != nil {
		return nil, err
	}

	for i, c := range comments {
		out = append(out, EnrichedComment{
			Comment:   c,
			Author:    authors[c.AuthorID],
			LikeCount: counts[ids[i]],
			IsLiked:   liked[ids[i]],
		})
	}
	return out, nil
}

// userViews loads the given users and annotates them with presence.
func (e *postEnricher) userViews(ctx context.Context, ids []uint) (map[uint]social.UserView, error) {
	return loadUserViews(ctx, e.users, ids, timeNow())
}

func loadUserViews(ctx context.Context, users repositories.UserRepository, ids []uint, now time.Time) (map[uint]social.UserView, error) {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	views := make(map[uint]social.UserView, len(unique))
	if len(unique) == 0 {
		return views, nil
	}
	found, err := users.GetUsersByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, u := range found {
		views[u.ID] = social.AnnotateUser(u, now)
	}
	return views, nil
}
