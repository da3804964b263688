package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"
	RoleStudent   = "student"
)

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

var ErrNoAuthContext = errors.New("no auth context")

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", ErrNoAuthContext
	}
	return name, nil
}

func UserRole(ctx context.Context) (string, error) {
	role, ok := ctx.Value(userRoleKey).(string)
	if !ok || role == "" {
		return "", ErrNoAuthContext
	}
	return role, nil
}

// IsStaff reports whether the role may perform administrative operations.
func IsStaff(role string) bool {
	return role == RoleAdmin || role == RoleLibrarian
}
