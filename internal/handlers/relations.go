package handlers

import (
	"context"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/internal/social"
)

// viewerGraph loads the viewer's edges. Anonymous viewers have none.
func viewerGraph(ctx context.Context, relations repositories.RelationshipRepository, viewerID uint) (social.Graph, error) {
	if viewerID == 0 {
		return social.Graph{}, nil
	}
	return relations.GraphFor(ctx, viewerID)
}

// loadVisiblePost fetches a post and checks the viewer may see it. Hidden
// posts are reported as missing.
func loadVisiblePost(ctx context.Context, posts repositories.PostRepository, relations repositories.RelationshipRepository, postID string, viewerID uint) (*models.Post, error) {
	post, err := posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Visibility == models.VisibilityPublic || post.AuthorID == viewerID {
		return post, nil
	}
	graph, err := viewerGraph(ctx, relations, viewerID)
	if err != nil {
		return nil, err
	}
	if !social.CanView(viewerID, *post, graph) {
		return nil, repositories.ErrPostNotFound
	}
	return post, nil
}
