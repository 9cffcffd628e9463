package newsroom

import (
	"time"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

type Category struct {
	db.Category
}

type Story struct {
	db.Story
	Category *Category
}

type User struct {
	db.User
}

// AuthSession is an issued login session: an opaque bearer token plus its
// expiry and the authenticated user.
type AuthSession struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
