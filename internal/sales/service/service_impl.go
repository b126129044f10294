package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/fuelpos/internal/clock"
	"github.com/smallbiznis/fuelpos/internal/observability/metrics"
	"github.com/smallbiznis/fuelpos/internal/sales/domain"
	"github.com/smallbiznis/fuelpos/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultRecentLimit = 5

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
		log:     p.Log.Named("sales.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// Record decrements the product stock and inserts the sale row in one
// transaction. Selling more than the available stock is rejected, so stock
// can never go negative through this path.
func (s *Service) Record(ctx context.Context, req domain.RecordSaleRequest) (domain.Sale, error) {
	quantity := money.Round2(req.Quantity)
	if quantity <= 0 {
		return domain.Sale{}, domain.ErrInvalidQuantity
	}
	if req.TotalPrice < 0 {
		return domain.Sale{}, domain.ErrInvalidAmount
	}

	var sale domain.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		stock, err := s.repo.FindProductStock(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if quantity > *stock {
			return domain.ErrInsufficientStock
		}

		if err := s.repo.UpdateProductStock(ctx, tx, req.ProductID, money.Round2(*stock-quantity)); err != nil {
			return err
		}

		sale = domain.Sale{
			ID:         s.genID.Generate(),
			ProductID:  req.ProductID,
			Quantity:   quantity,
			TotalPrice: req.TotalPrice,
			SaleDate:   s.clock.Now(),
		}
		return s.repo.Insert(ctx, tx, &sale)
	})
	if err != nil {
		return domain.Sale{}, err
	}

	s.metrics.RecordSale(ctx)
	s.log.Info("sale recorded",
		zap.Int64("product_id", int64(req.ProductID)),
		zap.Float64("quantity", quantity),
		zap.Float64("total_price", req.TotalPrice),
	)
	return sale, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.SaleWithProduct, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.ListRecent(ctx, s.db, limit)
}

func (s *Service) MonthlyReport(ctx context.Context, year, month int) ([]domain.MonthlyProductSales, error) {
	if year <= 0 || month < 1 || month > 12 {
		return nil, domain.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.repo.AggregateRange(ctx, s.db, from, to)
}
