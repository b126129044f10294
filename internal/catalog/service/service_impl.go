package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/fuelpos/internal/catalog/domain"
	"github.com/smallbiznis/fuelpos/internal/clock"
	"github.com/smallbiznis/fuelpos/internal/observability/metrics"
	"github.com/smallbiznis/fuelpos/pkg/money"
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
		log:     p.Log.Named("catalog.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// Upsert merges stock into an existing product by exact name, or inserts a
// new product row. A merge keeps the price from the first insert.
func (s *Service) Upsert(ctx context.Context, req domain.UpsertProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if req.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidStock
	}
	if req.Price <= 0 {
		return domain.Product{}, domain.ErrInvalidPrice
	}

	stock := money.Round2(req.Stock)

	existing, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return domain.Product{}, err
	}
	if existing != nil {
		existing.Stock = money.Round2(existing.Stock + stock)
		if err := s.repo.SetStock(ctx, s.db, existing.ID, existing.Stock); err != nil {
			return domain.Product{}, err
		}
		s.metrics.RecordCatalogUpsert(ctx, true)
		s.log.Info("stock merged",
			zap.String("name", name),
			zap.Float64("added", stock),
			zap.Float64("stock", existing.Stock),
		)
		return *existing, nil
	}

	product := domain.Product{
		ID:             s.genID.Generate(),
		Name:           name,
		Stock:          stock,
		Price:          req.Price,
		FuelCategoryID: req.FuelCategoryID,
		CreatedAt:      s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}
	s.metrics.RecordCatalogUpsert(ctx, false)
	s.log.Info("product added", zap.String("name", name), zap.Float64("stock", stock))
	return product, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}

func (s *Service) Search(ctx context.Context, fragment string) ([]domain.Product, error) {
	return s.repo.Search(ctx, s.db, strings.TrimSpace(fragment))
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if req.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidStock
	}
	if req.Price <= 0 {
		return domain.Product{}, domain.ErrInvalidPrice
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.Product{}, err
	}
	if existing == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	existing.Name = name
	existing.Stock = money.Round2(req.Stock)
	existing.Price = req.Price
	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Product{}, err
	}
	s.log.Info("product updated", zap.Int64("id", int64(req.ID)), zap.String("name", name))
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	// Sales and price history rows keep their product id; the reference
	// goes dangling on purpose.
	affected, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	s.log.Info("product deleted", zap.Int64("id", int64(id)))
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.FuelCategory, error) {
	return s.repo.ListCategories(ctx, s.db)
}

func (s *Service) GetCategory(ctx context.Context, id snowflake.ID) (domain.FuelCategory, error) {
	category, err := s.repo.FindCategoryByID(ctx, s.db, id)
	if err != nil {
		return domain.FuelCategory{}, err
	}
	if category == nil {
		return domain.FuelCategory{}, domain.ErrNotFound
	}
	return *category, nil
}

func (s *Service) ListFuelProducts(ctx context.Context) ([]domain.FuelProduct, error) {
	return s.repo.ListFuelProducts(ctx, s.db)
}
