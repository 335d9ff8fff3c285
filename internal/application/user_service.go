package application

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
	"github.com/pogojump/pogojump-api/pkg/validation"
)

const minNameLength = 2

// UpdateProfileInput separates omitted fields from explicit ones: an absent
// avatar is left alone, "" stores an empty string and null clears it.
type UpdateProfileInput struct {
	Name   validation.Optional[string] `json:"name"`
	Avatar validation.Optional[string] `json:"avatar"`
	Flag   validation.Optional[string] `json:"flag"`
}

func (in UpdateProfileInput) Validate() error {
	if !in.Name.Present {
		return nil
	}
	if in.Name.Null || utf8.RuneCountInString(strings.TrimSpace(in.Name.Value)) < minNameLength {
		return Validation("Name must be at least 2 characters", map[string]string{"name": "must be at least 2 characters long"})
	}
	return nil
}

type UserService struct {
	Store  *DocumentStore
	Logger *logrus.Logger
}

func NewUserService(store *DocumentStore, logger *logrus.Logger) *UserService {
	return &UserService{Store: store, Logger: logger}
}

// List returns every account with its creation time.
func (s *UserService) List(ctx context.Context) ([]entity.PublicUser, error) {
	out := []entity.PublicUser{}
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		for i := range doc.Users {
			out = append(out, doc.Users[i].PublicWithCreatedAt())
		}
		return nil
	})
	return out, err
}

// UpdateProfile edits the caller's own name, avatar and flag. Email and the
// admin flag are never touched.
func (s *UserService) UpdateProfile(ctx context.Context, caller Identity, in UpdateProfileInput) (entity.PublicUser, error) {
	var out entity.PublicUser
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		u := doc.UserByID(caller.ID)
		if u == nil {
			return ErrUserNotFound
		}
		if err := in.Validate(); err != nil {
			return err
		}
		if in.Name.Present {
			u.Name = strings.TrimSpace(in.Name.Value)
		}
		if in.Avatar.Present {
			u.Avatar = in.Avatar.Ptr()
		}
		if in.Flag.Present {
			u.Flag = in.Flag.Ptr()
		}
		out = u.Public()
		return nil
	})
	return out, err
}
