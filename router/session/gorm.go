package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/motoki317/sc"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/utils/random"
)

type session struct {
	t         string
	refID     uuid.UUID
	userID    int
	createdAt time.Time
}

func (s *session) Token() string {
	return s.t
}

func (s *session) RefID() uuid.UUID {
	return s.refID
}

func (s *session) UserID() int {
	return s.userID
}

func (s *session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *session) LoggedIn() bool {
	return s.userID > 0
}

func (s *session) Expired() bool {
	return isExpired(s.createdAt)
}

func (s *session) Refreshable() bool {
	return isRefreshable(s.createdAt)
}

type sessionStore struct {
	db    *gorm.DB
	cache *sc.Cache[string, *session]
}

// NewGormStore DBにセッションを保持するStoreを生成します
func NewGormStore(db *gorm.DB) Store {
	ss := &sessionStore{db: db}
	ss.cache = sc.NewMust(ss.loadSession, time.Hour, time.Hour, sc.With2QBackend(cacheSize))
	return ss
}

func (ss *sessionStore) loadSession(ctx context.Context, token string) (*session, error) {
	var r model.SessionRecord
	err := ss.db.WithContext(ctx).Where("token = ?", token).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session{t: r.Token, refID: r.ReferenceID, userID: r.UserID, createdAt: r.Created}, nil
}

func (ss *sessionStore) GetSession(c echo.Context) (Session, error) {
	return getSession(ss, c)
}

func (ss *sessionStore) GetSessionByToken(token string) (Session, error) {
	if len(token) == 0 {
		return nil, ErrSessionNotFound
	}
	s, err := ss.cache.Get(context.Background(), token)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (ss *sessionStore) RevokeSession(c echo.Context) error {
	cookie, err := c.Cookie(CookieName)
	if err != nil || len(cookie.Value) == 0 {
		return nil
	}

	if err := ss.deleteByToken(cookie.Value); err != nil {
		return err
	}
	clearCookie(c, cookie)
	return nil
}

func (ss *sessionStore) RenewSession(c echo.Context, userID int) (Session, error) {
	cookie, _ := c.Cookie(CookieName)
	if cookie != nil && len(cookie.Value) > 0 {
		if err := ss.deleteByToken(cookie.Value); err != nil {
			return nil, err
		}
	} else {
		cookie = &http.Cookie{}
	}

	s, err := ss.IssueSession(userID)
	if err != nil {
		return nil, err
	}
	setCookie(c, cookie, s.Token())
	return s, nil
}

func (ss *sessionStore) IssueSession(userID int) (Session, error) {
	r := &model.SessionRecord{
		Token:       random.SecureAlphaNumeric(50),
		ReferenceID: uuid.Must(uuid.NewV4()),
		UserID:      userID,
		Created:     time.Now(),
	}
	if err := ss.db.Create(r).Error; err != nil {
		return nil, err
	}
	return &session{t: r.Token, refID: r.ReferenceID, userID: r.UserID, createdAt: r.Created}, nil
}

func (ss *sessionStore) PurgeExpiredSessions() (int64, error) {
	deadline := refreshDeadline()
	var tokens []string
	if err := ss.db.Model(&model.SessionRecord{}).Where("created <= ?", deadline).Pluck("token", &tokens).Error; err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}
	result := ss.db.Where("token IN ?", tokens).Delete(&model.SessionRecord{})
	if result.Error != nil {
		return 0, result.Error
	}
	for _, t := range tokens {
		ss.cache.Forget(t)
	}
	return result.RowsAffected, nil
}

func (ss *sessionStore) deleteByToken(token string) error {
	if err := ss.db.Where("token = ?", token).Delete(&model.SessionRecord{}).Error; err != nil {
		return err
	}
	ss.cache.Forget(token)
	return nil
}
