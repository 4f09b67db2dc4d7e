package service

import (
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/service/counter"
)

// Services サービス群
type Services struct {
	UserCounter   counter.UserCounter
	PinCounter    counter.PinCounter
	FollowCounter counter.FollowCounter
}

// NewServices サービス群を生成します
func NewServices(db *gorm.DB, hub *hub.Hub, logger *zap.Logger) (*Services, error) {
	uc, err := counter.NewUserCounter(db, hub)
	if err != nil {
		return nil, err
	}
	pc, err := counter.NewPinCounter(db, hub, logger)
	if err != nil {
		return nil, err
	}
	fc, err := counter.NewFollowCounter(db, hub)
	if err != nil {
		return nil, err
	}
	return &Services{
		UserCounter:   uc,
		PinCounter:    pc,
		FollowCounter: fc,
	}, nil
}
