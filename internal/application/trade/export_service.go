package trade

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/domain/trade"
	"github.com/ceilingworks/erp/internal/infrastructure/telemetry"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Orders"

var exportHeader = []any{
	"ID",
	"Summary",
	"Order date",
	"Due date",
	"Status",
	"Customer",
	"Manager",
	"Facility",
	"Address",
	"Material lines",
	"Service lines",
	"Total",
}

// OrderExporter writes customer orders, with their labels and totals, to an
// xlsx workbook. orders must load order lines, otherwise totals are zero.
type OrderExporter struct {
	orders shared.Repository[trade.CustomerOrder]
	logger *zap.Logger
}

// NewOrderExporter creates an exporter over a repository that loads order lines
func NewOrderExporter(orders shared.Repository[trade.CustomerOrder], logger *zap.Logger) *OrderExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderExporter{orders: orders, logger: logger}
}

// Export writes every order matching filter's conditions, in filter's sort
// order, as one sheet. Paging fields of filter are ignored.
func (e *OrderExporter) Export(ctx context.Context, filter shared.Filter, w io.Writer) (rows int, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order_export", "export")
	defer func() {
		telemetry.SetAttributes(span, "rows", rows)
		telemetry.RecordError(span, err)
		span.End()
	}()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), exportSheet); err != nil {
		return 0, fmt.Errorf("export orders: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return 0, fmt.Errorf("export orders: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(exportSheet, 1, 1, style)
	}

	filter.Page = 1
	filter.PageSize = shared.MaxPageSize
	row := 2
	for {
		orders, err := e.orders.FindAll(ctx, filter)
		if err != nil {
			return 0, err
		}
		for i := range orders {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return 0, fmt.Errorf("export orders: %w", err)
			}
			values := exportRow(&orders[i])
			if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
				return 0, fmt.Errorf("export orders: %w", err)
			}
			row++
		}
		if len(orders) < filter.PageSize {
			break
		}
		filter.Page++
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	e.logger.Debug("exported customer orders", zap.Int("rows", row-2))
	return row - 2, nil
}

func exportRow(o *trade.CustomerOrder) []any {
	dto := ToCustomerOrderDTO(o)
	status := ""
	if o.Status != nil {
		status = string(*o.Status)
	}
	return []any{
		o.ID,
		o.OrderSummary,
		dateCell(o.OrderDate),
		dateCell(o.DueDate),
		status,
		text(dto.CustomerCustomerSummary),
		text(dto.ManagerEmployeeName),
		text(dto.FacilityFacilityName),
		text(o.Address),
		len(o.Materials),
		len(o.Services),
		o.Total().InexactFloat64(),
	}
}

func dateCell(t *time.Time) any {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
