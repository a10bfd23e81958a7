package trade

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ceilingworks/erp/internal/domain/partner"
	"github.com/ceilingworks/erp/internal/domain/shared"
	"github.com/ceilingworks/erp/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type pagedOrders struct {
	orders []trade.CustomerOrder
	pages  []int
	err    error
}

func (r *pagedOrders) FindByID(context.Context, int64) (*trade.CustomerOrder, error) {
	return nil, shared.ErrNotFound
}

func (r *pagedOrders) FindAll(_ context.Context, f shared.Filter) ([]trade.CustomerOrder, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.pages = append(r.pages, f.Page)
	start := f.Offset()
	if start >= len(r.orders) {
		return nil, nil
	}
	end := start + f.PageSize
	if end > len(r.orders) {
		end = len(r.orders)
	}
	return r.orders[start:end], nil
}

func (r *pagedOrders) Count(context.Context, shared.Filter) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *pagedOrders) Save(context.Context, *trade.CustomerOrder) error { return nil }
func (r *pagedOrders) Delete(context.Context, int64) error               { return nil }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestOrderExporter_Export(t *testing.T) {
	status := trade.OrderStatusAccepted
	due := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	repo := &pagedOrders{orders: []trade.CustomerOrder{
		{
			BaseEntity:   shared.BaseEntity{ID: 1},
			OrderSummary: "Lobby ceiling",
			DueDate:      &due,
			Status:       &status,
			Customer:     shared.LoadedRef(&partner.Customer{BaseEntity: shared.BaseEntity{ID: 3}, CustomerSummary: "Acme"}),
			Manager:      shared.RefTo[partner.Employee](5),
			Materials: []trade.OrderMaterial{
				{Quantity: dec("10"), UnitPrice: dec("12.5")},
			},
			Services: []trade.OrderService{
				{Quantity: dec("2"), UnitPrice: dec("10")},
			},
		},
		{BaseEntity: shared.BaseEntity{ID: 2}, OrderSummary: "Office"},
	}}

	var buf bytes.Buffer
	n, err := NewOrderExporter(repo, nil).Export(context.Background(), shared.DefaultFilter(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Summary", rows[0][1])
	assert.Equal(t, []string{"1", "Lobby ceiling", "", "2024-05-20", "ACCEPTED", "Acme", "", "", "", "1", "1", "145"}, rows[1])
	assert.Equal(t, "Office", rows[2][1])
}

func TestOrderExporter_Pages(t *testing.T) {
	orders := make([]trade.CustomerOrder, shared.MaxPageSize+1)
	for i := range orders {
		orders[i] = trade.CustomerOrder{BaseEntity: shared.BaseEntity{ID: int64(i + 1)}, OrderSummary: "o"}
	}
	repo := &pagedOrders{orders: orders}

	var buf bytes.Buffer
	n, err := NewOrderExporter(repo, nil).Export(context.Background(), shared.DefaultFilter(), &buf)
	require.NoError(t, err)
	assert.Equal(t, shared.MaxPageSize+1, n)
	assert.Equal(t, []int{1, 2}, repo.pages)
}

func TestOrderExporter_RepositoryError(t *testing.T) {
	repo := &pagedOrders{err: errors.New("db down")}

	var buf bytes.Buffer
	_, err := NewOrderExporter(repo, nil).Export(context.Background(), shared.DefaultFilter(), &buf)
	assert.EqualError(t, err, "db down")
	assert.Zero(t, buf.Len())
}
