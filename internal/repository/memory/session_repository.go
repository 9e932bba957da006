package memory

import (
	"time"

	"classrecord-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle out after an hour; expired ones are purged every
	// ten minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the live session for the id, creating an idle one
// on first contact. Every hit refreshes the expiration so an active
// conversation never dies mid-dialogue.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if x, found := r.cache.Get(sessionID); found {
		sess := x.(*store.Session)
		r.cache.Set(sessionID, sess, cache.DefaultExpiration)
		return sess
	}
	sess := store.NewSession(sessionID)
	r.cache.Set(sessionID, sess, cache.DefaultExpiration)
	return sess
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
