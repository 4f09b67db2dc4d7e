package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traPin/utils/random"
)

type memorySession struct {
	t         string
	refID     uuid.UUID
	userID    int
	createdAt time.Time
}

func (s *memorySession) Token() string {
	return s.t
}

func (s *memorySession) RefID() uuid.UUID {
	return s.refID
}

func (s *memorySession) UserID() int {
	return s.userID
}

func (s *memorySession) CreatedAt() time.Time {
	return s.createdAt
}

func (s *memorySession) LoggedIn() bool {
	return s.userID > 0
}

func (s *memorySession) Expired() bool {
	return isExpired(s.createdAt)
}

func (s *memorySession) Refreshable() bool {
	return isRefreshable(s.createdAt)
}

type memoryStore struct {
	sessions map[string]*memorySession
	sync.RWMutex
}

// NewMemorySessionStore メモリ上にセッションを保持するStoreを生成します
func NewMemorySessionStore() Store {
	return &memoryStore{
		sessions: map[string]*memorySession{},
	}
}

func (ms *memoryStore) GetSession(c echo.Context) (Session, error) {
	return getSession(ms, c)
}

func (ms *memoryStore) GetSessionByToken(token string) (Session, error) {
	if len(token) == 0 {
		return nil, ErrSessionNotFound
	}

	ms.RLock()
	defer ms.RUnlock()
	s, ok := ms.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (ms *memoryStore) RevokeSession(c echo.Context) error {
	cookie, err := c.Cookie(CookieName)
	if err != nil || len(cookie.Value) == 0 {
		return nil
	}

	ms.Lock()
	delete(ms.sessions, cookie.Value)
	ms.Unlock()

	clearCookie(c, cookie)
	return nil
}

func (ms *memoryStore) RenewSession(c echo.Context, userID int) (Session, error) {
	cookie, _ := c.Cookie(CookieName)
	if cookie != nil && len(cookie.Value) > 0 {
		ms.Lock()
		delete(ms.sessions, cookie.Value)
		ms.Unlock()
	} else {
		cookie = &http.Cookie{}
	}

	s, err := ms.IssueSession(userID)
	if err != nil {
		return nil, err
	}
	setCookie(c, cookie, s.Token())
	return s, nil
}

func (ms *memoryStore) IssueSession(userID int) (Session, error) {
	s := &memorySession{
		t:         random.SecureAlphaNumeric(50),
		refID:     uuid.Must(uuid.NewV7()),
		userID:    userID,
		createdAt: time.Now(),
	}
	ms.Lock()
	ms.sessions[s.Token()] = s
	ms.Unlock()
	return s, nil
}

func (ms *memoryStore) PurgeExpiredSessions() (int64, error) {
	ms.Lock()
	defer ms.Unlock()
	var n int64
	for k, s := range ms.sessions {
		if !s.Refreshable() {
			delete(ms.sessions, k)
			n++
		}
	}
	return n, nil
}

func getSession(store Store, c echo.Context) (Session, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || len(cookie.Value) == 0 {
		return nil, nil
	}

	s, err := store.GetSessionByToken(cookie.Value)
	if err != nil && err != ErrSessionNotFound {
		return nil, err
	}

	if s != nil {
		if !s.Expired() {
			return s, nil
		}
		if s.Refreshable() {
			return store.RenewSession(c, s.UserID())
		}
	}

	return nil, store.RevokeSession(c)
}

func setCookie(c echo.Context, cookie *http.Cookie, token string) {
	cookie.Name = CookieName
	cookie.Value = token
	cookie.Expires = time.Now().Add(time.Duration(sessionMaxAge+sessionKeepAge) * time.Second)
	cookie.MaxAge = sessionMaxAge + sessionKeepAge
	cookie.Path = "/"
	cookie.HttpOnly = true
	c.SetCookie(cookie)
}

func clearCookie(c echo.Context, cookie *http.Cookie) {
	cookie.Value = ""
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	cookie.Path = "/"
	c.SetCookie(cookie)
}
