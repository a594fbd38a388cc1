package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
)

// Scheduler 发布单过期兜底调度器。
// 每个发布单在创建时已经安排了精确到临期时间点的 asynq 任务，
// 这里的周期性扫描只是 worker 或 Redis 故障时的安全网。
type Scheduler struct {
	cron  *cron.Cron
	store db.Store
	spec  string
}

// NewScheduler 创建过期扫描调度器
func NewScheduler(store db.Store, spec string) *Scheduler {
	if spec == "" {
		// 默认每10分钟扫描一次
		spec = "*/10 * * * *"
	}
	return &Scheduler{
		cron:  cron.New(),
		store: store,
		spec:  spec,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.SweepExpiredOffers(ctx); err != nil {
			log.Error().Err(err).Msg("failed to sweep expired offers")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("spec", s.spec).Msg("offer expiry sweeper started")

	// 启动时立即执行一次
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.SweepExpiredOffers(ctx); err != nil {
			log.Error().Err(err).Msg("failed to run initial expiry sweep")
		}
	}()

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("offer expiry sweeper stopped")
}

// SweepExpiredOffers 扫描并过期所有已过临期时间的发布单
func (s *Scheduler) SweepExpiredOffers(ctx context.Context) error {
	result, err := s.store.ExpireOffersTx(ctx, db.ExpireOffersTxParams{
		Now: time.Now(),
	})
	if err != nil {
		return err
	}

	if len(result.Expired) > 0 {
		log.Info().Int("expired_count", len(result.Expired)).Msg("expired overdue offers")
	}

	return nil
}
