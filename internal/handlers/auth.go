package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/anonto42/y2k-space/backend/internal/middleware"
	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/pkg/apperrors"
	"github.com/anonto42/y2k-space/backend/pkg/firebase"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = apperrors.Unauthorized("invalid username or password")

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	firebaseAuth   firebase.TokenVerifier
	jwtSecret      string
	jwtTTL         time.Duration
}

// NewAuthHandler creates a new AuthHandler. firebaseAuth may be nil, in which
// case Firebase login answers 503.
func NewAuthHandler(userRepo repositories.UserRepository, firebaseAuth firebase.TokenVerifier, jwtSecret string, jwtTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		firebaseAuth:   firebaseAuth,
		jwtSecret:      jwtSecret,
		jwtTTL:         jwtTTL,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
	g.POST("/firebase-login", h.FirebaseLogin)
}

// Signup handles local user registration with username and password
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return toHTTPError(c, fmt.Errorf("hash password: %w", err))
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = req.Username
	}
	user := &models.User{
		Username:    req.Username,
		DisplayName: displayName,
		Password:    string(hashedPassword),
		Role:        models.RoleUser,
		AvatarURL:   models.DefaultAvatarURL,
	}
	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return toHTTPError(c, err)
	}

	return h.respondWithToken(c, http.StatusCreated, user)
}

// SignIn handles local user authentication with username and password
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return toHTTPError(c, errBadCredentials)
		}
		return toHTTPError(c, err)
	}

	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return toHTTPError(c, errBadCredentials)
	}

	return h.respondWithToken(c, http.StatusOK, user)
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// FirebaseLogin verifies a Firebase ID token, creates the local account on
// first login and issues a local JWT.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	if h.firebaseAuth == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Firebase login is not configured")
	}

	var req FirebaseLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	token, err := h.firebaseAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return toHTTPError(c, apperrors.Unauthorized("invalid Firebase ID token"))
	}
	identity := firebase.IdentityFromToken(token)

	user, err := h.userRepository.GetUserByFirebaseUID(ctx, identity.UID)
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrUserNotFound):
		user, err = h.createFirebaseUser(c, identity)
		if err != nil {
			return toHTTPError(c, err)
		}
	default:
		return toHTTPError(c, err)
	}

	return h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) createFirebaseUser(c echo.Context, identity firebase.Identity) (*models.User, error) {
	uid := identity.UID
	base := usernameFromIdentity(identity)
	displayName := identity.Name
	if displayName == "" {
		displayName = base
	}

	candidates := []string{base, truncate(base, 40) + truncate(strings.ToLower(uid), 8)}
	for _, username := range candidates {
		user := &models.User{
			Username:    username,
			DisplayName: truncate(displayName, 50),
			Role:        models.RoleUser,
			AvatarURL:   models.DefaultAvatarURL,
			FirebaseUID: &uid,
		}
		err := h.userRepository.CreateUser(c.Request().Context(), user)
		switch {
		case err == nil:
			return user, nil
		case errors.Is(err, repositories.ErrFirebaseLinked):
			// A concurrent first login created the account.
			return h.userRepository.GetUserByFirebaseUID(c.Request().Context(), uid)
		case !errors.Is(err, repositories.ErrUsernameTaken):
			return nil, err
		}
	}
	return nil, apperrors.AlreadyExists("could not allocate a username for this account")
}

// usernameFromIdentity derives an alphanumeric username from the token's
// email local part, falling back to its display name and then its uid.
func usernameFromIdentity(identity firebase.Identity) string {
	for _, source := range []string{strings.Split(identity.Email, "@")[0], identity.Name, identity.UID} {
		var b strings.Builder
		for _, r := range strings.ToLower(source) {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				b.WriteRune(r)
			}
		}
		if name := b.String(); len(name) >= 3 {
			return truncate(name, 50)
		}
	}
	return "user" + truncate(strings.ToLower(identity.UID), 8)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func (h *AuthHandler) respondWithToken(c echo.Context, status int, user *models.User) error {
	token, err := middleware.GenerateToken(user, h.jwtSecret, h.jwtTTL)
	if err != nil {
		return toHTTPError(c, fmt.Errorf("sign token: %w", err))
	}
	return c.JSON(status, echo.Map{"token": token, "user": user})
}
