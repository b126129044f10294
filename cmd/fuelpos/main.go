package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/fuelpos/internal/catalog"
	"github.com/smallbiznis/fuelpos/internal/clock"
	"github.com/smallbiznis/fuelpos/internal/config"
	"github.com/smallbiznis/fuelpos/internal/migration"
	"github.com/smallbiznis/fuelpos/internal/observability"
	"github.com/smallbiznis/fuelpos/internal/pricing"
	"github.com/smallbiznis/fuelpos/internal/sales"
	salesdomain "github.com/smallbiznis/fuelpos/internal/sales/domain"
	"github.com/smallbiznis/fuelpos/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	reportYear  = flag.Int("report-year", 0, "print the monthly sales report for this year")
	reportMonth = flag.Int("report-month", 0, "print the monthly sales report for this month (1-12)")
)

func main() {
	flag.Parse()

	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,
		db.Module,
		migration.Module,

		// Ledger domains
		catalog.Module,
		pricing.Module,
		sales.Module,

		fx.Invoke(run),
	)
	app.Run()
}

// run boots the ledger, optionally prints a report, and shuts down. The
// interactive shell is a separate consumer of the same services.
func run(lc fx.Lifecycle, sd fx.Shutdowner, svc salesdomain.Service, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if *reportYear != 0 || *reportMonth != 0 {
				rows, err := svc.MonthlyReport(ctx, *reportYear, *reportMonth)
				if err != nil {
					return err
				}
				for _, row := range rows {
					fmt.Printf("%s\tqty=%.2f\ttotal=%.2f\n", row.ProductName, row.TotalQuantity, row.TotalRevenue)
				}
			}
			log.Info("ledger ready")
			return sd.Shutdown()
		},
	})
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
