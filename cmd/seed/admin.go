package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/internal/domain/entity"
)

var (
	errNotAdmin        = errors.New("account is not an admin")
	errPasswordMissing = errors.New("-admin-password is required with -admin-email")
)

func checkAdminFlags(email, password string) error {
	if email != "" && password == "" {
		return errPasswordMissing
	}
	return nil
}

// registerAdmin signs email up through the normal register operation, so the
// account is an admin only when it is the first user in the store. Existing
// accounts are reported, never modified.
func registerAdmin(ctx context.Context, auth *application.AuthService, store *application.DocumentStore, email, password, name string) (entity.PublicUser, bool, error) {
	res, err := auth.Register(ctx, application.RegisterInput{Email: email, Password: password, Name: name})
	switch {
	case err == nil:
		if !res.User.IsAdmin {
			return res.User, true, fmt.Errorf("%s was created but is not the first user: %w", email, errNotAdmin)
		}
		return res.User, true, nil
	case !errors.Is(err, application.ErrEmailTaken):
		return entity.PublicUser{}, false, err
	}

	var existing entity.PublicUser
	err = store.View(ctx, func(doc *entity.Document) error {
		u := doc.UserByEmail(email)
		if u == nil {
			return application.ErrUserNotFound
		}
		existing = u.Public()
		return nil
	})
	if err != nil {
		return entity.PublicUser{}, false, err
	}
	if !existing.IsAdmin {
		return existing, false, fmt.Errorf("%s already exists: %w", email, errNotAdmin)
	}
	return existing, false, nil
}
