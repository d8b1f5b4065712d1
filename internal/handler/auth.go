package handler

import (
	"context"  // provides context with cancellation for storage calls
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts and session lifetimes

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/NOBU6477/tomotrip-platform/internal/config"     // app configuration
	"github.com/NOBU6477/tomotrip-platform/internal/model"      // domain records
	"github.com/NOBU6477/tomotrip-platform/internal/repository" // storage backends
	"github.com/NOBU6477/tomotrip-platform/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Store repository.Storage
}

func NewAuthHandler(cfg config.Config, store repository.Storage) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: store}
}

// ----- DTOs -----

type registerReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeTerms      bool   `json:"agreeTerms"`
	UserType        string `json:"userType"` // sponsor | store_owner
}
type loginReq struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type sessionPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type accountPart struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}
type authResp struct {
	User    accountPart `json:"user"`
	Access  sessionPart `json:"access"`
	Session sessionPart `json:"session"`
}

// Register creates a sponsor account and logs it in immediately.  The
// validation messages mirror the registration form, so they come back in
// Japanese.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "パスワードが一致しません"})
	}
	if !req.AgreeTerms {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "利用規約に同意してください"})
	}
	userType := strings.TrimSpace(req.UserType)
	if userType != model.UserTypeStoreOwner {
		userType = model.UserTypeSponsor
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Store.CreateAccount(ctx, req.Email, req.Password, userType, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}

	return h.issueTokens(c, ctx, acct, false, http.StatusCreated)
}

// Login verifies credentials and opens a new session.  With rememberMe the
// session lives thirty days instead of one.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Store.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !acct.IsActive {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "account disabled"})
	}
	if !utils.VerifyPassword(acct.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	return h.issueTokens(c, ctx, acct, req.RememberMe, http.StatusOK)
}

// issueTokens creates the session record plus a short-lived access token
// and writes the auth response.
func (h *AuthHandler) issueTokens(c echo.Context, ctx context.Context, acct model.Account, remember bool, status int) error {
	lifetime := time.Duration(h.Cfg.SessionTTLHours) * time.Hour
	if remember {
		lifetime = time.Duration(h.Cfg.RememberTTLDays) * 24 * time.Hour
	}

	session, err := utils.NewSessionToken(lifetime)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	if _, err := h.Store.CreateSession(ctx, acct.ID, utils.HashSessionRaw(session.Raw), acct.UserType, session.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acct.ID, acct.UserType, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(status, authResp{
		User:    accountPart{ID: acct.ID, Email: acct.Email, UserType: acct.UserType},
		Access:  sessionPart{Token: access.Token, Expires: access.Exp},
		Session: sessionPart{Token: session.Raw, Expires: session.Exp}, // raw back to client
	})
}

// Session reports the login state for the bearer session token.  An
// expired session is revoked on sight and answered as logged out, so a
// stale token held by a returning browser clears itself on the first
// check.
func (h *AuthHandler) Session(c echo.Context) error {
	raw := bearerToken(c)
	if raw == "" {
		return c.JSON(http.StatusOK, echo.Map{"loggedIn": false})
	}
	hash := utils.HashSessionRaw(raw)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess, err := h.Store.GetSessionByHash(ctx, hash)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusOK, echo.Map{"loggedIn": false})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if sess.Expired(time.Now().UTC()) {
		_ = h.Store.RevokeSession(ctx, hash)
		return c.JSON(http.StatusOK, echo.Map{"loggedIn": false, "reason": "expired"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"loggedIn": true,
		"userId":   sess.UserID,
		"userType": sess.UserType,
		"expires":  sess.ExpiresAt,
	})
}

// Logout revokes the bearer session token.  Revoking an unknown token is
// still a successful logout from the client's point of view.
func (h *AuthHandler) Logout(c echo.Context) error {
	raw := bearerToken(c)
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.RevokeSession(ctx, utils.HashSessionRaw(raw)); err != nil && err != repository.ErrNotFound {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Dashboard resolves where a logged-in account lands after login: owners
// of a store get the store dashboard, everyone else the operations one.
func (h *AuthHandler) Dashboard(c echo.Context) error {
	raw := bearerToken(c)
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess, err := h.Store.GetSessionByHash(ctx, utils.HashSessionRaw(raw))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
	}
	if sess.Expired(time.Now().UTC()) {
		_ = h.Store.RevokeSession(ctx, utils.HashSessionRaw(raw))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	}

	store, err := h.Store.GetStoreByOwner(ctx, sess.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusOK, echo.Map{
				"dashboard": "operations",
				"url":       "/operations-dashboard.html",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"dashboard": "store",
		"url":       "/sponsor-dashboard.html",
		"storeId":   store.ID,
	})
}

// Me is a simple protected endpoint: it echoes the identity claims the
// JWT middleware put into the context.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"userId":   c.Get("user_id"),
		"userType": c.Get("user_type"),
	})
}

// bearerToken extracts the raw token from an Authorization header.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
