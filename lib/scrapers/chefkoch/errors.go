package chefkoch

import (
	"errors"
	"fmt"
)

// ErrConnection reports a non-success status from the search endpoint.
var ErrConnection = errors.New("chefkoch: request did not succeed")

// UserNotFoundError means the profile page explicitly reported an
// invalid user id.
type UserNotFoundError struct {
	UserID string
}

func (e UserNotFoundError) Error() string {
	return fmt.Sprintf("chefkoch: no user with id %q", e.UserID)
}

// RecipeNotFoundError means the recipe detail endpoint answered with a
// non-success status.
type RecipeNotFoundError struct {
	RecipeID string
}

func (e RecipeNotFoundError) Error() string {
	return fmt.Sprintf("chefkoch: no recipe with id %q", e.RecipeID)
}

// LoginError means authentication was rejected. It must surface before
// the session is used for anything else.
type LoginError struct {
	Username string
}

func (e LoginError) Error() string {
	return fmt.Sprintf("chefkoch: failed to log in as %q", e.Username)
}

// MalformedRatingError means a rating row is missing the indicator
// element or its state class. Unlike absent optional sections this
// signals page-structure drift and has to propagate.
type MalformedRatingError struct {
	RecipeID string
	Row      int
}

func (e MalformedRatingError) Error() string {
	return fmt.Sprintf("chefkoch: malformed rating row %d for recipe %q", e.Row, e.RecipeID)
}
