package svc

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/base/stores/gdb"
	"github.com/locey/BurnWin/catalog"
	"github.com/locey/BurnWin/config"
	"github.com/locey/BurnWin/contract"
	"github.com/locey/BurnWin/dao"
	"github.com/locey/BurnWin/engagement"
	"github.com/locey/BurnWin/events"
	"github.com/locey/BurnWin/ledger"
	"github.com/locey/BurnWin/metrics"
	"github.com/locey/BurnWin/verification"
	"github.com/locey/BurnWin/verification/provider"
)

// StakeChecker answers whether a wallet staked into a campaign's burn pool and
// whether the pool is paused.
type StakeChecker interface {
	HasStaked(ctx context.Context, campaignID *big.Int, account string) (bool, error)
	Paused(ctx context.Context) (bool, error)
}

type ServerCtx struct {
	C            *config.Config
	Dao          *dao.Dao
	Catalog      *catalog.Catalog
	Engagement   engagement.Store
	Ledger       *ledger.Ledger
	Orchestrator *verification.Orchestrator
	Metrics      *metrics.Metrics
	// BurnPool is nil when no rpc endpoint is configured.
	BurnPool StakeChecker

	closers []func()
}

func NewServiceContext(ctx context.Context, c *config.Config) (*ServerCtx, error) {
	s := &ServerCtx{C: c, Metrics: metrics.New()}
	if err := s.init(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *ServerCtx) init(ctx context.Context) error {
	c := s.C
	cat, err := catalog.Load(c.Catalog.Path)
	if err != nil {
		return err
	}
	s.Catalog = cat

	var store ledger.Store = ledger.NewMemoryStore()
	if c.DB.Enabled {
		db, err := gdb.NewDB(c.DB)
		if err != nil {
			return err
		}
		s.Dao = dao.New(ctx, db)
		if err := s.Dao.AutoMigrate(); err != nil {
			return errors.Wrap(err, "failed on migrate ledger")
		}
		store = s.Dao
		s.closers = append(s.closers, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
	}

	s.Engagement = engagement.NewMemoryStore()
	if c.Redis.Enabled {
		rdb, err := engagement.DialRedis(ctx, c.Redis.RedisConfig)
		if err != nil {
			return err
		}
		s.Engagement = engagement.NewRedisStore(rdb, c.Redis.Prefix, c.Redis.TTL)
		s.closers = append(s.closers, func() { _ = rdb.Close() })
	}

	var pub events.Publisher = events.NopPublisher{}
	if c.NATS.Enabled {
		np, err := events.NewNATSPublisher(c.NATS.NATSConfig)
		if err != nil {
			return err
		}
		pub = np
		s.closers = append(s.closers, np.Close)
	}
	s.Ledger = ledger.New(cat, store, ledger.WithPublisher(pub))

	if c.Contract.RPCEndpoint != "" {
		pool, err := contract.DialBurnPool(ctx, c.Contract.RPCEndpoint, c.Contract.BurnPoolAddress, c.Contract.ABIPath)
		if err != nil {
			return err
		}
		s.BurnPool = pool
		s.closers = append(s.closers, pool.Close)
	}

	adapters := provider.NewAdapters(c.ProviderConfig(), s.Engagement, nil)
	s.Orchestrator = verification.NewOrchestrator(adapters, c.OrchestratorOptions(s.Metrics))
	if s.Orchestrator.MockMode() {
		xzap.WithContext(ctx).Warn("verification mock mode enabled, provider adapters are bypassed",
			zap.String("env", c.Verification.Env))
	}
	return nil
}

// Close releases connections in reverse order of creation.
func (s *ServerCtx) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
