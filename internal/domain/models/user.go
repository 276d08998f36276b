package models

import (
	"context"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
)

// User is the authenticated caller extracted from an access token.
type User struct {
	ID   string
	Role types.UserRole
}

func (u *User) IsAnonymous() bool {
	return u == nil || u.ID == ""
}

func AnonymousUser() *User {
	return &User{}
}

type userCtxKey struct{}

func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}
