package counter

import (
	"fmt"
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/event"
	"github.com/traPtitech/traPin/model"
)

var usersCounter = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "pin",
	Name:      "users_count",
})

// UserCounter 全ユーザー数カウンタ
type UserCounter interface {
	// Get 全ユーザー数を返します
	Get() int64
}

type userCounterImpl struct {
	count int64
	sync.RWMutex
}

// NewUserCounter 全ユーザー数カウンタを生成します
func NewUserCounter(db *gorm.DB, hub *hub.Hub) (UserCounter, error) {
	counter := &userCounterImpl{}
	if err := db.Model(&model.User{}).Count(&counter.count).Error; err != nil {
		return nil, fmt.Errorf("failed to load users count: %w", err)
	}
	usersCounter.Set(float64(counter.count))
	sub := hub.Subscribe(1, event.UserCreated)
	go func() {
		for range sub.Receiver {
			counter.inc()
		}
	}()
	return counter, nil
}

func (c *userCounterImpl) Get() int64 {
	c.RLock()
	defer c.RUnlock()
	return c.count
}

func (c *userCounterImpl) inc() {
	c.Lock()
	c.count++
	c.Unlock()
	usersCounter.Inc()
}
