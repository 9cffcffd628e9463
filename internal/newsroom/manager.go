package newsroom

import (
	"time"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

// DefaultSessionTTL is used when no session lifetime is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Manager implements the newsroom domain operations on top of the storage
// repository: categories, stories and admin authentication.
type Manager struct {
	db         db.IRepository
	sessionTTL time.Duration
	now        func() time.Time
}

func NewManager(repo db.IRepository, sessionTTL time.Duration) *Manager {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &Manager{
		db:         repo,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}
