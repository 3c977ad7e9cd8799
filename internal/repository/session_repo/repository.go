package session_repo

import (
	"context"
	"fmt"
	"oracle_predict/internal/model"
	"oracle_predict/internal/repository"
	"oracle_predict/pkg/token"
	"sync"
	"time"
)

type repo struct {
	mtx         sync.Mutex
	sessions    map[string]*model.Session
	ttl         time.Duration
	maxSessions int

	now   func() time.Time
	newID func() (string, error)
}

// NewSessionRepository хранилище сессий в памяти процесса.
// ttl <= 0 - сессии не истекают, maxSessions <= 0 - без ограничения.
func NewSessionRepository(ttl time.Duration, maxSessions int) repository.SessionRepository {
	return newRepo(ttl, maxSessions, time.Now)
}

func newRepo(ttl time.Duration, maxSessions int, now func() time.Time) *repo {
	return &repo{
		sessions:    make(map[string]*model.Session),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         now,
		newID:       token.GenerateSessionID,
	}
}

// Create - создает сессию с переданным состоянием.
// При достижении лимита вытесняется сессия, к которой дольше всего не обращались.
func (r *repo) Create(ctx context.Context, state model.SessionState) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := r.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	now := r.now()
	r.evictExpired(now)
	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.evictOldest()
	}

	sess := &model.Session{
		ID:        id,
		State:     state.Clone(),
		CreatedAt: now,
		LastSeen:  now,
	}
	r.sessions[id] = sess

	return copySession(sess), nil
}

// Get - возвращает копию сессии по ID
func (r *repo) Get(ctx context.Context, id string) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	sess, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	return copySession(sess), nil
}

// Update - применяет fn к копии состояния под блокировкой.
// Если fn вернул ошибку, сохраненное состояние не меняется.
func (r *repo) Update(ctx context.Context, id string, fn func(state *model.SessionState) error) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	sess, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	next := sess.State.Clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	sess.State = next

	return copySession(sess), nil
}

// Delete - удаляет сессию. Удаление несуществующей сессии не ошибка.
func (r *repo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, id)
	return nil
}

// Count количество живых сессий
func (r *repo) Count() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.evictExpired(r.now())
	return len(r.sessions)
}

// lookup вызывается под r.mtx, обновляет LastSeen
func (r *repo) lookup(id string) (*model.Session, error) {
	now := r.now()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	if r.expired(sess, now) {
		delete(r.sessions, id)
		return nil, model.ErrSessionNotFound
	}
	sess.LastSeen = now
	return sess, nil
}

func (r *repo) expired(sess *model.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(sess.LastSeen) > r.ttl
}

func (r *repo) evictExpired(now time.Time) {
	for id, sess := range r.sessions {
		if r.expired(sess, now) {
			delete(r.sessions, id)
		}
	}
}

func (r *repo) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, sess := range r.sessions {
		if oldestID == "" || sess.LastSeen.Before(oldest) {
			oldestID = id
			oldest = sess.LastSeen
		}
	}
	if oldestID != "" {
		delete(r.sessions, oldestID)
	}
}

func copySession(sess *model.Session) *model.Session {
	out := *sess
	out.State = sess.State.Clone()
	return &out
}
