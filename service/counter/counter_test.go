package counter

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/migration"
	"github.com/traPtitech/traPin/repository"
	gormRepo "github.com/traPtitech/traPin/repository/gorm"
	"github.com/traPtitech/traPin/testutils"
	"github.com/traPtitech/traPin/utils/optional"
	"github.com/traPtitech/traPin/utils/random"
)

var (
	db   *gorm.DB
	h    *hub.Hub
	repo repository.Repository
)

func TestMain(m *testing.M) {
	mariadb, err := testutils.SetupMariaDB()
	if err != nil {
		panic(err)
	}
	if err := mariadb.CreateDatabases("pin-test-counter-", "common"); err != nil {
		panic(err)
	}
	db, err = mariadb.Open("pin-test-counter-common")
	if err != nil {
		panic(err)
	}
	if err := migration.DropAll(db); err != nil {
		panic(err)
	}
	h = hub.New()
	repo, _, err = gormRepo.NewGormRepository(db, h, zap.NewNop(), true)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	h.Close()
	if err := mariadb.Close(); err != nil {
		fmt.Println("failed to purge mariadb container:", err)
	}
	os.Exit(code)
}

func mustMakeUser(t *testing.T) int {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), repository.CreateUserArgs{
		Email:    random.AlphaNumeric(20) + "@example.com",
		Nickname: random.AlphaNumeric(10),
		Password: "testpassword",
	})
	require.NoError(t, err)
	return u.ID
}

func TestUserCounter(t *testing.T) {
	mustMakeUser(t)

	c, err := NewUserCounter(db, h)
	require.NoError(t, err)
	initial := c.Get()
	assert.GreaterOrEqual(t, initial, int64(1))

	mustMakeUser(t)
	mustMakeUser(t)
	assert.Eventually(t, func() bool { return c.Get() == initial+2 }, time.Second, 10*time.Millisecond)
}

func TestPinCounter(t *testing.T) {
	ctx := context.Background()
	userID := mustMakeUser(t)

	c, err := NewPinCounter(db, h, zap.NewNop())
	require.NoError(t, err)
	initial := c.Get()

	g, err := repo.CreateGroup(ctx, userID, "group")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := repo.CreatePin(ctx, userID, repository.CreatePinArgs{Name: "pin", CategoryID: 1, EmotionID: 1, GroupID: optional.From(g.ID)})
		require.NoError(t, err)
	}
	p, err := repo.CreatePin(ctx, userID, repository.CreatePinArgs{Name: "pin", CategoryID: 1, EmotionID: 1})
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return c.Get() == initial+4 }, time.Second, 10*time.Millisecond)

	require.NoError(t, repo.DeletePin(ctx, p.ID))
	assert.Eventually(t, func() bool { return c.Get() == initial+3 }, time.Second, 10*time.Millisecond)

	require.NoError(t, repo.DeleteGroup(ctx, g.ID))
	assert.Eventually(t, func() bool { return c.Get() == initial }, time.Second, 10*time.Millisecond)
}

func TestFollowCounter(t *testing.T) {
	ctx := context.Background()
	u1 := mustMakeUser(t)
	u2 := mustMakeUser(t)

	c, err := NewFollowCounter(db, h)
	require.NoError(t, err)
	initial := c.Get()

	_, err = repo.CreateFollow(ctx, u1, u2)
	require.NoError(t, err)
	_, err = repo.CreateFollow(ctx, u2, u1)
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return c.Get() == initial+2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, repo.DeleteFollow(ctx, u1, u2))
	assert.Eventually(t, func() bool { return c.Get() == initial+1 }, time.Second, 10*time.Millisecond)
}
