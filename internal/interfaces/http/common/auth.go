package common

import "context"

type contextKey string

const authUserContextKey contextKey = "authUser"

// AuthenticatedUser represents the JWT-derived principal.
type AuthenticatedUser struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Role    string   `json:"role,omitempty"`
	Regions []string `json:"regions,omitempty"`
}

// IsAdmin reports whether the principal carries the Admin role.
func (u AuthenticatedUser) IsAdmin() bool {
	return u.Role == "Admin"
}

// PrimaryRegion は担当地域の先頭を返す。未割り当てなら空文字。
func (u AuthenticatedUser) PrimaryRegion() string {
	if len(u.Regions) == 0 {
		return ""
	}
	return u.Regions[0]
}

// ContextWithUser stores the authenticated user into context.
func ContextWithUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authUserContextKey, user)
}

// UserFromContext extracts the authenticated user from context.
func UserFromContext(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(AuthenticatedUser)
	return user, ok
}
