package service

import "sync"

// SessionRegistry tracks which session ids are live, mapping each session id
// (the token's "jti" claim) to the account that opened it.
//
// A cryptographically valid token whose session id is absent from the
// registry is treated as logged off even before the token expires. This is
// what makes logoff and account deletion observable immediately.
type SessionRegistry struct {
	mu   sync.RWMutex
	byID map[string]int64
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{byID: make(map[string]int64)}
}

// Add registers a freshly opened session for the given account.
func (r *SessionRegistry) Add(sessionID string, userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[sessionID] = userID
}

// Revoke closes a single session. Unknown ids are ignored.
func (r *SessionRegistry) Revoke(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, sessionID)
}

// RevokeUser closes every session held by the given account.
func (r *SessionRegistry) RevokeUser(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for sessionID, owner := range r.byID {
		if owner == userID {
			delete(r.byID, sessionID)
		}
	}
}

// Resolve returns the account that owns the session, if it is still open.
func (r *SessionRegistry) Resolve(sessionID string) (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byID[sessionID]
	return userID, ok
}
