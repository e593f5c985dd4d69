package context

import (
	"github.com/kendymann/leftover-love/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for storing the authenticated user's ID.
	KeyUserID ContextKey = "user_id"

	// KeyUserRole is the key for storing the authenticated user's role.
	KeyUserRole ContextKey = "user_role"

	// KeyUserEmail is the key for storing the authenticated user's email.
	KeyUserEmail ContextKey = "user_email"
)

// SetAuthenticatedUser stores the verified token identity on the request.
func SetAuthenticatedUser(c echo.Context, userID uuid.UUID, role entity.Role, email string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUserRole), role)
	c.Set(string(KeyUserEmail), email)
}

// GetUserID extracts the authenticated user's ID from echo.Context.
// The second return value is false when the request is unauthenticated.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok
}

// GetUserRole extracts the authenticated user's role from echo.Context.
func GetUserRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(string(KeyUserRole)).(entity.Role)

	return role, ok
}

// GetUserEmail extracts the authenticated user's email from echo.Context.
func GetUserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(string(KeyUserEmail)).(string)

	return email, ok
}
