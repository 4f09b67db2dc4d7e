package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/traPin/repository/mock_repository"
	"github.com/traPtitech/traPin/router/auth"
	"github.com/traPtitech/traPin/router/extension"
	"github.com/traPtitech/traPin/router/session"
)

const (
	testUserID  = 1
	otherUserID = 2
)

// Setup テストセットアップ
//
// リポジトリはモック、セッションストアはインメモリです
func Setup(t *testing.T) (*mock_repository.MockRepository, session.Store, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockRepository(ctrl)
	ss := session.NewMemorySessionStore()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	e.Use(extension.Wrap())

	handlers := &Handlers{
		Repo:          repo,
		SessStore:     ss,
		Authenticator: auth.NewLocalAuthenticator(repo, zap.NewNop()),
		Logger:        zap.NewNop(),
	}
	handlers.Setup(e.Group("/api"))

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return repo, ss, server
}

// S 指定ユーザーのセッショントークンを発行
func S(t *testing.T, ss session.Store, userID int) string {
	t.Helper()
	sess, err := ss.IssueSession(userID)
	require.NoError(t, err)
	return sess.Token()
}

// loggedIn userIDのユーザーが存在する状態にします
func loggedIn(repo *mock_repository.MockRepository, userID int) {
	repo.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil).AnyTimes()
}

// R リクエストテスターを作成
func R(t *testing.T, server *httptest.Server) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
			httpexpect.NewDebugPrinter(t, true),
		},
		Client: &http.Client{
			Jar:     nil, // クッキーは保持しない
			Timeout: time.Second * 30,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	})
}

// expectMessage {"message": msg} であることを確認
func expectMessage(res *httpexpect.Response, code int, msg string) {
	res.Status(code).JSON().Object().Value("message").String().Equal(msg)
}
