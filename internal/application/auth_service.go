package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
	"github.com/pogojump/pogojump-api/internal/metrics"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string            `json:"token"`
	User  entity.PublicUser `json:"user"`
}

// PasswordHasher is the bcrypt surface the auth service uses.
type PasswordHasher interface {
	HashPassword(plain string) (string, error)
	CompareHashAndPassword(hash, plain string) bool
	DummyHash() string
}

type AuthService struct {
	Store    *DocumentStore
	JWT      *helpers.JWTManager
	Hasher   PasswordHasher
	IDs      *IDGenerator
	Notifier Notifier
	Logger   *logrus.Logger
	Metrics  *metrics.Metrics
}

func NewAuthService(store *DocumentStore, jwt *helpers.JWTManager, hasher PasswordHasher, ids *IDGenerator, n Notifier, logger *logrus.Logger, m *metrics.Metrics) *AuthService {
	if n == nil {
		n = NoopNotifier{}
	}
	return &AuthService{Store: store, JWT: jwt, Hasher: hasher, IDs: ids, Notifier: n, Logger: logger, Metrics: m}
}

// Register creates an account. The very first account becomes the admin.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := checkInput(in, fixed("All fields are required")); err != nil {
		return nil, err
	}

	// hash outside the store lock
	hash, err := s.Hasher.HashPassword(in.Password)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return nil, Validation("Password must be at most 72 bytes", map[string]string{"password": "is too long"})
	}
	if err != nil {
		helpers.LogError(s.Logger, "hash password failed", err, nil)
		return nil, StorageFailure(err)
	}

	var user entity.User
	err = s.Store.Update(ctx, func(doc *entity.Document) error {
		if doc.UserByEmail(in.Email) != nil {
			return ErrEmailTaken
		}
		user = entity.User{
			ID:        s.IDs.Next(doc.MaxID()),
			Email:     in.Email,
			Name:      in.Name,
			Password:  hash,
			IsAdmin:   len(doc.Users) == 0,
			CreatedAt: time.Now().UTC(),
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Metrics.Event("user_registered")

	res, err := s.issue(&user)
	if err != nil {
		return nil, err
	}
	if err := s.Notifier.UserRegistered(ctx, res.User); err != nil {
		helpers.LogError(s.Logger, "welcome notification failed", err, logrus.Fields{"user_id": user.ID})
	}
	return res, nil
}

// Login verifies credentials. Unknown email and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := checkInput(in, fixed("Email and password required")); err != nil {
		return nil, err
	}
	var (
		user  entity.User
		found bool
	)
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		if u := doc.UserByEmail(in.Email); u != nil {
			user, found = *u, true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// unknown emails still pay for one bcrypt comparison
	hash := s.Hasher.DummyHash()
	if found {
		hash = user.Password
	}
	if !s.Hasher.CompareHashAndPassword(hash, in.Password) || !found {
		return nil, ErrInvalidCredentials
	}
	return s.issue(&user)
}

// Me returns the caller's public profile.
func (s *AuthService) Me(ctx context.Context, id Identity) (entity.PublicUser, error) {
	var out entity.PublicUser
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		u := doc.UserByID(id.ID)
		if u == nil {
			return ErrUserNotFound
		}
		out = u.Public()
		return nil
	})
	return out, err
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, _, err := s.JWT.GenerateToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		helpers.LogError(s.Logger, "sign token failed", err, logrus.Fields{"user_id": u.ID})
		return nil, StorageFailure(err)
	}
	return &AuthResult{Token: token, User: u.Public()}, nil
}
