package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anonto42/y2k-space/backend/internal/middleware"
	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories/mocks"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
	"github.com/anonto42/y2k-space/backend/validators"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	timeNow = func() time.Time { return testNow }
	m.Run()
}

type repos struct {
	users     *mocks.MockUserRepository
	posts     *mocks.MockPostRepository
	comments  *mocks.MockCommentRepository
	likes     *mocks.MockLikeRepository
	relations *mocks.MockRelationshipRepository
	messages  *mocks.MockMessageRepository
	settings  *mocks.MockConversationSettingsRepository
}

func newRepos(t *testing.T) repos {
	ctrl := gomock.NewController(t)
	return repos{
		users:     mocks.NewMockUserRepository(ctrl),
		posts:     mocks.NewMockPostRepository(ctrl),
		comments:  mocks.NewMockCommentRepository(ctrl),
		likes:     mocks.NewMockLikeRepository(ctrl),
		relations: mocks.NewMockRelationshipRepository(ctrl),
		messages:  mocks.NewMockMessageRepository(ctrl),
		settings:  mocks.NewMockConversationSettingsRepository(ctrl),
	}
}

// request builds an echo context for method and body, authenticated as
// userID unless it is 0. params alternate name, value.
func request(method, body string, userID uint, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != 0 {
		c.Set(middleware.UserContextKey, &models.JwtCustomClaims{UserID: userID})
	}
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func withQuery(c echo.Context, key, value string) echo.Context {
	q := c.Request().URL.Query()
	q.Set(key, value)
	c.Request().URL.RawQuery = q.Encode()
	return c
}

func assertHTTPError(t *testing.T, err error, status int, code apperrors.Code) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, status, he.Code)
	if code != "" {
		body, ok := he.Message.(echo.Map)
		require.True(t, ok, "expected a coded error body, got %v", he.Message)
		assert.Equal(t, code, body["code"])
	}
}

func user(id uint, username string) models.User {
	return models.User{ID: id, Username: username, DisplayName: strings.ToUpper(username)}
}

func newPost(author uint, v models.Visibility, content string, age time.Duration) models.Post {
	return models.Post{
		ID:         primitive.NewObjectID(),
		AuthorID:   author,
		Content:    content,
		PostType:   models.DefaultPostType,
		Visibility: v,
		CreatedAt:  testNow.Add(-age),
	}
}
