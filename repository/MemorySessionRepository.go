package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type memorySession struct {
	userId    int
	isAdmin   bool
	expiresAt time.Time
}

// MemorySessionRepo keeps sessions in-process for single-binary runs and
// tests. Sessions do not survive a restart, which matches the original
// behavior of logging the user out on a fresh load without a snapshot.
type MemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

func NewMemorySessionRepository() SessionRepository {
	return &MemorySessionRepo{sessions: make(map[string]memorySession)}
}

func (s *MemorySessionRepo) CreateSession(userId int, isAdmin bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessionId := uuid.NewString()
	s.sessions[sessionId] = memorySession{
		userId:    userId,
		isAdmin:   isAdmin,
		expiresAt: time.Now().Add(sessionTTL),
	}
	return sessionId, nil
}

func (s *MemorySessionRepo) CheckSession(sessionId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live(sessionId)
	return ok, nil
}

func (s *MemorySessionRepo) DeleteSession(sessionId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionId)
	return nil
}

func (s *MemorySessionRepo) RefreshSession(sessionId string, expirationTime time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.live(sessionId); ok {
		sess.expiresAt = time.Now().Add(expirationTime)
		s.sessions[sessionId] = sess
	}
	return nil
}

func (s *MemorySessionRepo) GetSessionInfo(sessionId string) (userId int, isAdmin bool, exists bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.live(sessionId)
	if !ok {
		return
	}
	return sess.userId, sess.isAdmin, true, nil
}

func (s *MemorySessionRepo) live(sessionId string) (memorySession, bool) {
	sess, ok := s.sessions[sessionId]
	if !ok {
		return memorySession{}, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, sessionId)
		return memorySession{}, false
	}
	return sess, true
}
