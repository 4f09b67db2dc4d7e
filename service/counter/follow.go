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

var followsCounter = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "pin",
	Name:      "follows_count",
})

// FollowCounter 全フォロー数カウンタ
type FollowCounter interface {
	// Get 全フォロー数を返します
	Get() int64
}

type followCounterImpl struct {
	count int64
	sync.RWMutex
}

// NewFollowCounter 全フォロー数カウンタを生成します
func NewFollowCounter(db *gorm.DB, hub *hub.Hub) (FollowCounter, error) {
	counter := &followCounterImpl{}
	if err := db.Model(&model.Follow{}).Count(&counter.count).Error; err != nil {
		return nil, fmt.Errorf("failed to load follows count: %w", err)
	}
	followsCounter.Set(float64(counter.count))
	sub := hub.Subscribe(1, event.FollowCreated, event.FollowDeleted)
	go func() {
		for e := range sub.Receiver {
			if e.Topic() == event.FollowCreated {
				counter.add(1)
			} else {
				counter.add(-1)
			}
		}
	}()
	return counter, nil
}

func (c *followCounterImpl) Get() int64 {
	c.RLock()
	defer c.RUnlock()
	return c.count
}

func (c *followCounterImpl) add(delta int64) {
	c.Lock()
	c.count += delta
	c.Unlock()
	followsCounter.Add(float64(delta))
}
