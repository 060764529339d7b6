package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/social"
)

type feedResponse struct {
	Data struct {
		Posts []EnrichedPost `json:"posts"`
	} `json:"data"`
	Meta struct {
		TotalItems  int  `json:"totalItems"`
		TotalPages  int  `json:"totalPages"`
		HasNextPage bool `json:"hasNextPage"`
	} `json:"meta"`
}

// expectEnrichment stubs the batch lookups for posts without comments.
func expectEnrichment(r repos, authors ...models.User) {
	r.comments.EXPECT().GetCommentsByPostIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
	r.users.EXPECT().GetUsersByIDs(gomock.Any(), gomock.Any()).Return(authors, nil)
	r.likes.EXPECT().CountByTargets(gomock.Any(), models.LikeTargetPost, gomock.Any()).Return(map[string]int64{}, nil)
	r.likes.EXPECT().LikedTargets(gomock.Any(), gomock.Any(), models.LikeTargetPost, gomock.Any()).Return(map[string]bool{}, nil)
}

func TestFeedHandler_GetFeed(t *testing.T) {
	posts := []models.Post{
		newPost(bobID, models.VisibilityFriends, "bob friends", time.Minute),
		newPost(bobID, models.VisibilityPublic, "bob public", 2*time.Minute),
		newPost(3, models.VisibilityFriends, "carol friends", 3*time.Minute),
		newPost(aliceID, models.VisibilityFriends, "alice friends", 4*time.Minute),
	}

	t.Run("anonymous sees public posts", func(t *testing.T) {
		r := newRepos(t)
		r.posts.EXPECT().GetAllPosts(gomock.Any()).Return(posts, nil)
		expectEnrichment(r, bob)

		c, rec := request(http.MethodGet, "", 0)
		require.NoError(t, NewFeedHandler(r.posts, r.users, r.comments, r.likes, r.relations).GetFeed(c))

		var resp feedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Posts, 1)
		assert.Equal(t, "bob public", resp.Data.Posts[0].Content)
		assert.Equal(t, "bob", resp.Data.Posts[0].Author.Username)
		assert.Equal(t, 1, resp.Meta.TotalItems)
	})

	t.Run("friend sees friends-only posts, paged", func(t *testing.T) {
		r := newRepos(t)
		r.posts.EXPECT().GetAllPosts(gomock.Any()).Return(posts, nil)
		r.relations.EXPECT().GraphFor(gomock.Any(), aliceID).Return(friendsGraph(), nil)
		expectEnrichment(r, bob)

		c, rec := request(http.MethodGet, "", aliceID)
		withQuery(c, "limit", "2")
		require.NoError(t, NewFeedHandler(r.posts, r.users, r.comments, r.likes, r.relations).GetFeed(c))

		var resp feedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Posts, 2)
		assert.Equal(t, "bob friends", resp.Data.Posts[0].Content)
		assert.Equal(t, "bob public", resp.Data.Posts[1].Content)
		assert.Equal(t, 3, resp.Meta.TotalItems)
		assert.Equal(t, 2, resp.Meta.TotalPages)
		assert.True(t, resp.Meta.HasNextPage)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		r := newRepos(t)
		r.posts.EXPECT().GetAllPosts(gomock.Any()).Return(posts, nil)

		c, rec := request(http.MethodGet, "", 0)
		withQuery(c, "page", "9")
		require.NoError(t, NewFeedHandler(r.posts, r.users, r.comments, r.likes, r.relations).GetFeed(c))

		var resp feedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data.Posts)
	})
}

func TestPostEnricher_Comments(t *testing.T) {
	r := newRepos(t)
	post := newPost(bobID, models.VisibilityPublic, "hello", time.Minute)
	pid := post.ID.Hex()
	recent := testNow.Add(-time.Minute)
	bobActive := bob
	bobActive.LastActive = &recent

	r.comments.EXPECT().GetCommentsByPostIDs(gomock.Any(), []string{pid}).Return([]models.Comment{
		{ID: 9, PostID: pid, AuthorID: aliceID, Content: "nice"},
	}, nil)
	r.users.EXPECT().GetUsersByIDs(gomock.Any(), []uint{aliceID}).Return([]models.User{alice}, nil)
	r.likes.EXPECT().CountByTargets(gomock.Any(), models.LikeTargetComment, []string{"9"}).Return(map[string]int64{"9": 2}, nil)
	r.likes.EXPECT().LikedTargets(gomock.Any(), aliceID, models.LikeTargetComment, []string{"9"}).Return(map[string]bool{"9": true}, nil)
	r.users.EXPECT().GetUsersByIDs(gomock.Any(), []uint{bobID}).Return([]models.User{bobActive}, nil)
	r.likes.EXPECT().CountByTargets(gomock.Any(), models.LikeTargetPost, []string{pid}).Return(map[string]int64{pid: 5}, nil)
	r.likes.EXPECT().LikedTargets(gomock.Any(), aliceID, models.LikeTargetPost, []string{pid}).Return(map[string]bool{}, nil)

	enriched, err := newPostEnricher(r.users, r.comments, r.likes).enrichPosts(context.Background(), aliceID, []models.Post{post})
	require.NoError(t, err)
	require.Len(t, enriched, 1)

	got := enriched[0]
	assert.Equal(t, int64(5), got.LikeCount)
	assert.False(t, got.IsLiked)
	assert.Equal(t, social.PresenceOnline, got.Author.Status)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "alice", got.Comments[0].Author.Username)
	assert.Equal(t, int64(2), got.Comments[0].LikeCount)
	assert.True(t, got.Comments[0].IsLiked)
}
