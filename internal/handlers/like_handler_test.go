package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/internal/social"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
)

func newLikeHandler(r repos) *LikeHandler {
	return NewLikeHandler(r.likes, r.posts, r.comments, r.relations)
}

func TestLikeHandler_ToggleLike(t *testing.T) {
	t.Run("post", func(t *testing.T) {
		r := newRepos(t)
		post := newPost(bobID, models.VisibilityPublic, "hi", time.Minute)
		pid := post.ID.Hex()
		r.posts.EXPECT().GetPostByID(gomock.Any(), pid).Return(&post, nil)
		r.likes.EXPECT().ToggleLike(gomock.Any(), aliceID, models.LikeTargetPost, pid).Return(true, nil)
		r.likes.EXPECT().CountByTargets(gomock.Any(), models.LikeTargetPost, []string{pid}).Return(map[string]int64{pid: 3}, nil)

		c, rec := request(http.MethodPost, "", aliceID, "kind", "post", "id", pid)
		require.NoError(t, newLikeHandler(r).ToggleLike(c))

		var resp struct {
			Liked     bool  `json:"liked"`
			LikeCount int64 `json:"like_count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Liked)
		assert.Equal(t, int64(3), resp.LikeCount)
	})

	t.Run("comment on a hidden post", func(t *testing.T) {
		r := newRepos(t)
		post := newPost(bobID, models.VisibilityFriends, "secret", time.Minute)
		r.comments.EXPECT().GetCommentByID(gomock.Any(), uint(7)).Return(&models.Comment{ID: 7, PostID: post.ID.Hex(), AuthorID: bobID}, nil)
		r.posts.EXPECT().GetPostByID(gomock.Any(), post.ID.Hex()).Return(&post, nil)
		r.relations.EXPECT().GraphFor(gomock.Any(), aliceID).Return(social.Graph{}, nil)

		c, _ := request(http.MethodPost, "", aliceID, "kind", "comment", "id", "7")
		assertHTTPError(t, newLikeHandler(r).ToggleLike(c), http.StatusNotFound, apperrors.CodeNotFound)
	})

	t.Run("unknown kind", func(t *testing.T) {
		r := newRepos(t)
		c, _ := request(http.MethodPost, "", aliceID, "kind", "story", "id", "1")
		assertHTTPError(t, newLikeHandler(r).ToggleLike(c), http.StatusBadRequest, apperrors.CodeInvalidArgument)
	})

	t.Run("missing post", func(t *testing.T) {
		r := newRepos(t)
		r.posts.EXPECT().GetPostByID(gomock.Any(), "nope").Return(nil, repositories.ErrPostNotFound)

		c, _ := request(http.MethodPost, "", aliceID, "kind", "post", "id", "nope")
		assertHTTPError(t, newLikeHandler(r).ToggleLike(c), http.StatusNotFound, apperrors.CodeNotFound)
	})
}
