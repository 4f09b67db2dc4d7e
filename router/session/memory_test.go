package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: CookieName, Value: token}
}

func findCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestMemoryStore_GetSession(t *testing.T) {
	t.Parallel()

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()
		store := NewMemorySessionStore()
		c, rec := newContext(nil)

		s, err := store.GetSession(c)
		assert.NoError(t, err)
		assert.Nil(t, s)
		assert.Nil(t, findCookie(rec))
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		store := NewMemorySessionStore()
		c, rec := newContext(sessionCookie("unknown"))

		s, err := store.GetSession(c)
		assert.NoError(t, err)
		assert.Nil(t, s)
		if cookie := findCookie(rec); assert.NotNil(t, cookie) {
			assert.Empty(t, cookie.Value)
			assert.Equal(t, -1, cookie.MaxAge)
		}
	})

	t.Run("valid session", func(t *testing.T) {
		t.Parallel()
		store := NewMemorySessionStore()
		issued, err := store.IssueSession(3)
		require.NoError(t, err)

		c, _ := newContext(sessionCookie(issued.Token()))
		s, err := store.GetSession(c)
		require.NoError(t, err)
		if assert.NotNil(t, s) {
			assert.Equal(t, issued.Token(), s.Token())
			assert.Equal(t, 3, s.UserID())
			assert.True(t, s.LoggedIn())
		}
	})

	t.Run("expired but refreshable", func(t *testing.T) {
		t.Parallel()
		store := NewMemorySessionStore()
		issued, err := store.IssueSession(3)
		require.NoError(t, err)
		issued.(*memorySession).createdAt = time.Now().Add(-time.Duration(sessionMaxAge+60) * time.Second)

		c, rec := newContext(sessionCookie(issued.Token()))
		s, err := store.GetSession(c)
		require.NoError(t, err)
		if assert.NotNil(t, s) {
			assert.NotEqual(t, issued.Token(), s.Token())
			assert.Equal(t, 3, s.UserID())
		}
		if cookie := findCookie(rec); assert.NotNil(t, cookie) {
			assert.Equal(t, s.Token(), cookie.Value)
			assert.True(t, cookie.HttpOnly)
		}
		_, err = store.GetSessionByToken(issued.Token())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("not refreshable", func(t *testing.T) {
		t.Parallel()
		store := NewMemorySessionStore()
		issued, err := store.IssueSession(3)
		require.NoError(t, err)
		issued.(*memorySession).createdAt = time.Now().Add(-time.Duration(sessionMaxAge+sessionKeepAge+60) * time.Second)

		c, _ := newContext(sessionCookie(issued.Token()))
		s, err := store.GetSession(c)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestMemoryStore_RenewSession(t *testing.T) {
	t.Parallel()
	store := NewMemorySessionStore()
	old, err := store.IssueSession(5)
	require.NoError(t, err)

	c, rec := newContext(sessionCookie(old.Token()))
	s, err := store.RenewSession(c, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, s.UserID())

	if cookie := findCookie(rec); assert.NotNil(t, cookie) {
		assert.Equal(t, s.Token(), cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, sessionMaxAge+sessionKeepAge, cookie.MaxAge)
	}
	_, err = store.GetSessionByToken(old.Token())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_RevokeSession(t *testing.T) {
	t.Parallel()
	store := NewMemorySessionStore()

	t.Run("without cookie", func(t *testing.T) {
		t.Parallel()
		c, rec := newContext(nil)
		assert.NoError(t, store.RevokeSession(c))
		assert.Nil(t, findCookie(rec))
	})

	t.Run("with cookie", func(t *testing.T) {
		t.Parallel()
		s, err := store.IssueSession(1)
		require.NoError(t, err)

		c, rec := newContext(sessionCookie(s.Token()))
		assert.NoError(t, store.RevokeSession(c))
		_, err = store.GetSessionByToken(s.Token())
		assert.ErrorIs(t, err, ErrSessionNotFound)
		if cookie := findCookie(rec); assert.NotNil(t, cookie) {
			assert.Empty(t, cookie.Value)
		}
	})
}

func TestMemoryStore_PurgeExpiredSessions(t *testing.T) {
	t.Parallel()
	store := NewMemorySessionStore()

	alive, _ := store.IssueSession(1)
	dead, _ := store.IssueSession(1)
	dead.(*memorySession).createdAt = time.Now().Add(-time.Duration(sessionMaxAge+sessionKeepAge+60) * time.Second)

	n, err := store.PurgeExpiredSessions()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = store.GetSessionByToken(alive.Token())
	assert.NoError(t, err)
	_, err = store.GetSessionByToken(dead.Token())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
