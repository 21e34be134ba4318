package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	repo "github.com/miftad456/task-management-sub001/internal/domain/repository"
	"github.com/miftad456/task-management-sub001/pkg/apperr"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
)

// SessionService orchestrates the authentication session lifecycle:
// registration, login, refresh-token rotation, logout, and profile access.
type SessionService struct {
	Users     repo.UserRepository
	JWT       *helpers.JWTManager
	Redis     *redis.Client
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewSessionService(users repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, gcs *storage.Client, gcsBucket string) *SessionService {
	return &SessionService{Users: users, JWT: jwt, Redis: rdb, Logger: logger, GCS: gcs, GCSBucket: gcsBucket}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Register creates an account. It does not auto-login.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (entity.User, error) {
	u, err := entity.NewUser(in.Name, in.Username, in.Email, in.Password)
	if err != nil {
		return entity.User{}, err
	}

	// Both lookups are probed even when the first already hit, so the
	// caller learns exactly which attribute conflicts.
	byUsername, _ := s.Users.GetByUsername(u.Username)
	byEmail, _ := s.Users.GetByEmail(u.Email)
	switch {
	case byUsername != nil && byEmail != nil:
		return entity.User{}, apperr.Conflict("username and email already exist")
	case byUsername != nil:
		return entity.User{}, apperr.Conflict("username already exists")
	case byEmail != nil:
		return entity.User{}, apperr.Conflict("email already exists")
	}

	hash, err := helpers.HashPassword(u.Password)
	if err != nil {
		return entity.User{}, apperr.Internal("hash password", err)
	}
	u.Password = hash
	if err := s.Users.Create(&u); err != nil {
		return entity.User{}, apperr.Internal("create user", err)
	}
	return u.Sanitized(), nil
}

// Login validates credentials and issues a token pair. Unknown username and
// wrong password return the same error to prevent username enumeration.
func (s *SessionService) Login(ctx context.Context, username, password string) (entity.User, TokenPair, error) {
	u, err := s.Users.GetByUsername(username)
	if err != nil || u == nil {
		return entity.User{}, TokenPair{}, apperr.Auth("invalid credential")
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return entity.User{}, TokenPair{}, apperr.Auth("invalid credential")
	}
	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return entity.User{}, TokenPair{}, err
	}
	return u.Sanitized(), pair, nil
}

// Refresh rotates the token pair. The user is looked up by the presented
// token, not just the decoded identity, so a refresh token superseded by a
// later rotation no longer matches anything and is rejected.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (entity.User, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return entity.User{}, TokenPair{}, apperr.Auth("invalid refresh token")
	}
	u, err := s.Users.GetByRefreshToken(refreshToken)
	if err != nil || u == nil || u.ID != claims.UserID {
		return entity.User{}, TokenPair{}, apperr.Auth("invalid refresh token")
	}
	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return entity.User{}, TokenPair{}, err
	}
	return u.Sanitized(), pair, nil
}

// issueTokens generates a pair and overwrites the stored refresh token:
// one active session per user.
func (s *SessionService) issueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return TokenPair{}, apperr.Internal("sign access token", err)
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, apperr.Internal("sign refresh token", err)
	}
	if err := s.Users.SaveRefreshToken(u.ID, refresh); err != nil {
		return TokenPair{}, apperr.Internal("store refresh token", err)
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":   u.ID,
			"username":  u.Username,
			"email":     u.Email,
			"name":      u.Name,
			"logged_in": true,
			"issued_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Logout revokes the stored refresh token unconditionally; calling it for a
// user with no active session is a no-op.
func (s *SessionService) Logout(ctx context.Context, userID string) error {
	if err := s.Users.RevokeRefreshToken(userID); err != nil {
		return apperr.Internal("revoke refresh token", err)
	}
	if s.Redis != nil {
		if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("redis session delete failed")
		}
	}
	return nil
}

func (s *SessionService) GetProfile(id string) (entity.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil || u == nil {
		return entity.User{}, apperr.NotFound("user not found")
	}
	return u.Sanitized(), nil
}

type UpdateProfileInput struct {
	Name      string
	AvatarURL string
	Password  string
}

// UpdateProfile applies the writable subset of fields. ID, Username and
// CreatedAt are never caller-writable.
func (s *SessionService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (entity.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil || u == nil {
		return entity.User{}, apperr.NotFound("user not found")
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.AvatarURL != "" {
		u.AvatarURL = in.AvatarURL
	}
	if in.Password != "" {
		if len(in.Password) < entity.MinPasswordLength {
			return entity.User{}, apperr.Validationf("password must be at least %d characters", entity.MinPasswordLength)
		}
		hash, herr := helpers.HashPassword(in.Password)
		if herr != nil {
			return entity.User{}, apperr.Internal("hash password", herr)
		}
		u.Password = hash
	}
	if err := s.Users.Update(u); err != nil {
		return entity.User{}, apperr.Internal("update user", err)
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		if err := s.Redis.HSet(ctx, key, map[string]any{
			"name":       u.Name,
			"updated_at": nowRFC3339(),
		}).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("redis session update failed")
		}
	}
	return u.Sanitized(), nil
}

// UploadAvatar streams an avatar image to GCS and stores its public URL.
func (s *SessionService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return "", apperr.NotFound("user not found")
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperr.Internal("gcs not configured", nil)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", apperr.Internal("upload avatar", err)
	}
	u.AvatarURL = url
	if err := s.Users.Update(u); err != nil {
		return "", apperr.Internal("update user", err)
	}
	return url, nil
}
