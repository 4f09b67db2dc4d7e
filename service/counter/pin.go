package counter

import (
	"fmt"
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/event"
	"github.com/traPtitech/traPin/model"
)

var pinsCounter = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "pin",
	Name:      "pins_count",
})

// PinCounter 全ピン数カウンタ
type PinCounter interface {
	// Get 全ピン数を返します
	Get() int64
}

type pinCounterImpl struct {
	db     *gorm.DB
	logger *zap.Logger
	count  int64
	sync.RWMutex
}

// NewPinCounter 全ピン数カウンタを生成します
func NewPinCounter(db *gorm.DB, hub *hub.Hub, logger *zap.Logger) (PinCounter, error) {
	counter := &pinCounterImpl{db: db, logger: logger.Named("pin_counter")}
	if err := counter.reload(); err != nil {
		return nil, err
	}
	sub := hub.Subscribe(1, event.PinCreated, event.PinDeleted, event.GroupDeleted)
	go func() {
		for e := range sub.Receiver {
			switch e.Topic() {
			case event.PinCreated:
				counter.add(1)
			case event.PinDeleted:
				counter.add(-1)
			case event.GroupDeleted:
				// グループのピンは外部キー制約で削除されるので数え直す
				if err := counter.reload(); err != nil {
					counter.logger.Error("failed to reload pins count", zap.Error(err))
				}
			}
		}
	}()
	return counter, nil
}

func (c *pinCounterImpl) Get() int64 {
	c.RLock()
	defer c.RUnlock()
	return c.count
}

func (c *pinCounterImpl) reload() error {
	var count int64
	if err := c.db.Model(&model.Pin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to load pins count: %w", err)
	}
	c.Lock()
	c.count = count
	c.Unlock()
	pinsCounter.Set(float64(count))
	return nil
}

func (c *pinCounterImpl) add(delta int64) {
	c.Lock()
	c.count += delta
	c.Unlock()
	pinsCounter.Add(float64(delta))
}
