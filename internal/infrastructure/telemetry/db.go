package telemetry

import (
	"errors"
	"time"

	"github.com/ceilingworks/erp/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const startedAtKey = "erp:query_started_at"

// DBPlugin is a GORM plugin that times every statement into Prometheus,
// marks slow and failed statements on the current span and, when database
// tracing is enabled, creates a span per statement through otelgorm.
type DBPlugin struct {
	cfg      config.TelemetryConfig
	slow     time.Duration
	reg      prometheus.Registerer
	logger   *zap.Logger
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewDBPlugin creates the plugin. Statements slower than slow get a
// slow_query span event.
func NewDBPlugin(cfg config.TelemetryConfig, slow time.Duration, reg prometheus.Registerer, logger *zap.Logger) *DBPlugin {
	if logger == nil {
		logger = zap.NewNop()
	}
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return &DBPlugin{
		cfg:    cfg,
		slow:   slow,
		reg:    reg,
		logger: logger,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of database statements by operation and table.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		}, []string{"operation", "table"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Failed database statements by operation and table.",
		}, []string{"operation", "table"}),
	}
}

// Name implements gorm.Plugin
func (p *DBPlugin) Name() string {
	return "erp:db_telemetry"
}

// Initialize implements gorm.Plugin
func (p *DBPlugin) Initialize(db *gorm.DB) error {
	if p.cfg.Enabled && p.cfg.DBTraceEnabled {
		opts := []otelgorm.Option{otelgorm.WithDBName(db.Dialector.Name())}
		if !p.cfg.DBLogFullSQL {
			opts = append(opts, otelgorm.WithoutQueryVariables())
		}
		if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
			return err
		}
		p.logger.Info("Database tracing enabled", zap.Bool("log_full_sql", p.cfg.DBLogFullSQL))
	}

	if p.reg != nil {
		if err := p.reg.Register(p.duration); err != nil {
			return err
		}
		if err := p.reg.Register(p.failures); err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := p.reg.Register(collectors.NewDBStatsCollector(sqlDB, db.Dialector.Name())); err != nil {
				return err
			}
		}
	}

	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("erp_telemetry:before_create", p.before); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("erp_telemetry:before_query", p.before); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("erp_telemetry:before_update", p.before); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("erp_telemetry:before_delete", p.before); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("erp_telemetry:before_row", p.before); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("erp_telemetry:before_raw", p.before); err != nil {
		return err
	}

	if err := cb.Create().After("gorm:create").Register("erp_telemetry:after_create", p.after("create")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("erp_telemetry:after_query", p.after("query")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("erp_telemetry:after_update", p.after("update")); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("erp_telemetry:after_delete", p.after("delete")); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("erp_telemetry:after_row", p.after("row")); err != nil {
		return err
	}
	if err := cb.Raw().After("gorm:raw").Register("erp_telemetry:after_raw", p.after("raw")); err != nil {
		return err
	}
	return nil
}

func (p *DBPlugin) before(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func (p *DBPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		started, ok := v.(time.Time)
		if !ok {
			return
		}
		elapsed := time.Since(started)
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}

		p.duration.WithLabelValues(op, table).Observe(elapsed.Seconds())
		failed := db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound)
		if failed {
			p.failures.WithLabelValues(op, table).Inc()
		}

		if db.Statement.Context == nil {
			return
		}
		span := trace.SpanFromContext(db.Statement.Context)
		if !span.IsRecording() {
			return
		}
		span.SetAttributes(
			attribute.String("db.sql.table", table),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		)
		if failed {
			RecordError(span, db.Error)
		}
		if elapsed > p.slow {
			span.AddEvent("slow_query", trace.WithAttributes(
				attribute.String("db.operation", op),
				attribute.Int64("duration_ms", elapsed.Milliseconds()),
				attribute.Int64("threshold_ms", p.slow.Milliseconds()),
			))
		}
	}
}
