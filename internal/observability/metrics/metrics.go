package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	catalogUpserts metric.Int64Counter
	priceChanges   metric.Int64Counter
	salesRecorded  metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "fuelpos"
	}
	meter := provider.Meter(name)

	catalogUpserts, err := meter.Int64Counter("fuelpos_catalog_upserts_total")
	if err != nil {
		return nil, err
	}
	priceChanges, err := meter.Int64Counter("fuelpos_price_changes_total")
	if err != nil {
		return nil, err
	}
	salesRecorded, err := meter.Int64Counter("fuelpos_sales_recorded_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		catalogUpserts: catalogUpserts,
		priceChanges:   priceChanges,
		salesRecorded:  salesRecorded,
	}, nil
}

// RecordCatalogUpsert increments the upsert count, split by merge vs insert.
func (m *Metrics) RecordCatalogUpsert(ctx context.Context, merged bool) {
	if m == nil {
		return
	}
	m.catalogUpserts.Add(ctx, 1, metric.WithAttributes(attribute.Bool("merged", merged)))
}

// RecordPriceChange increments the price change count.
func (m *Metrics) RecordPriceChange(ctx context.Context) {
	if m == nil {
		return
	}
	m.priceChanges.Add(ctx, 1)
}

// RecordSale increments the recorded sale count.
func (m *Metrics) RecordSale(ctx context.Context) {
	if m == nil {
		return
	}
	m.salesRecorded.Add(ctx, 1)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}
