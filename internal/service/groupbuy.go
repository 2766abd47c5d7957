package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/herblink/herb-market/internal/model"
	"github.com/herblink/herb-market/internal/repository"
	"github.com/herblink/herb-market/pkg/logger"
)

// GroupBuy 团购活动查询与过期清扫
type GroupBuy struct {
	store         *repository.DemoStore
	sweepInterval time.Duration
}

func NewGroupBuy(store *repository.DemoStore, sweepInterval time.Duration) *GroupBuy {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &GroupBuy{store: store, sweepInterval: sweepInterval}
}

// Activities 返回全部团购活动
func (g *GroupBuy) Activities() []model.GroupBuyActivity {
	g.store.Mu.Lock()
	defer g.store.Mu.Unlock()
	return g.store.GroupBuys.All()
}

// StartSweeper 启动后台清扫：周期性把过了截止时间的 active 活动
// 标记为 expired。返回停止函数。
func (g *GroupBuy) StartSweeper() func(context.Context) error {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(g.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.SweepExpired(time.Now())
			case <-stopCh:
				return
			}
		}
	}()
	return func(ctx context.Context) error {
		close(stopCh)
		return nil
	}
}

// SweepExpired 单次清扫，返回标记为过期的活动数
func (g *GroupBuy) SweepExpired(now time.Time) int {
	g.store.Mu.Lock()
	defer g.store.Mu.Unlock()

	activities := g.store.GroupBuys.All()
	expired := 0
	for i := range activities {
		if activities[i].Status == model.GroupBuyStatusActive && activities[i].EndDate.Before(now) {
			activities[i].Status = model.GroupBuyStatusExpired
			expired++
		}
	}
	if expired > 0 {
		g.store.GroupBuys.Replace(activities)
		logger.Info("groupbuy: marked expired activities", zap.Int("count", expired))
	}
	return expired
}
