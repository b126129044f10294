package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/fuelpos/internal/clock"
	"github.com/smallbiznis/fuelpos/internal/observability/metrics"
	"github.com/smallbiznis/fuelpos/internal/pricing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("pricing.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// UpdateFuelPrice writes the audit row and the new price in one transaction.
// A failure on either side rolls both back, so the ledger never shows a
// price without its history entry.
func (s *Service) UpdateFuelPrice(ctx context.Context, productID snowflake.ID, newPrice float64) (domain.PriceChange, error) {
	if newPrice <= 0 {
		return domain.PriceChange{}, domain.ErrInvalidPrice
	}

	var change domain.PriceChange
	err := s.db.Transaction(func(tx *gorm.DB) error {
		oldPrice, err := s.repo.FindCurrentPrice(ctx, tx, productID)
		if err != nil {
			return err
		}
		if oldPrice == nil {
			return domain.ErrNotFound
		}

		change = domain.PriceChange{
			ID:         s.genID.Generate(),
			ProductID:  productID,
			OldPrice:   *oldPrice,
			NewPrice:   newPrice,
			ChangeDate: s.clock.Now(),
		}
		if err := s.repo.Insert(ctx, tx, &change); err != nil {
			return err
		}
		return s.repo.UpdateProductPrice(ctx, tx, productID, newPrice)
	})
	if err != nil {
		return domain.PriceChange{}, err
	}

	s.metrics.RecordPriceChange(ctx)
	s.log.Info("fuel price updated",
		zap.Int64("product_id", int64(productID)),
		zap.Float64("old_price", change.OldPrice),
		zap.Float64("new_price", change.NewPrice),
	)
	return change, nil
}

func (s *Service) History(ctx context.Context, productID snowflake.ID) ([]domain.PriceChange, error) {
	return s.repo.ListByProduct(ctx, s.db, productID)
}
