// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity is the caller identity established by AuthRequired. Handlers use
// it to attribute published messages without depending on Gin context keys.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

type identity struct {
	userID        uuid.UUID
	authenticated bool
}

func (i *identity) UserID() uuid.UUID {
	return i.userID
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, ok := c.Get(ContextUserIDKey)
	if !ok {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	return &identity{userID: uid, authenticated: true}
}
