package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/myfoodtruck/pos-api/internal/domain/entity"
	"github.com/myfoodtruck/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
// Los items se guardan como JSONB: la venta es una foto inmutable, no filas normalizadas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador del libro de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta. No existe Update ni Delete para sales.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		INSERT INTO sales (id, items, total, payment_method, date, seller_id, seller_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, items, sale.Total, sale.PaymentMethod, sale.Date, sale.SellerID, sale.SellerName,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByDateRange devuelve ventas ordenadas por fecha descendente. Con start/end
// dados, el filtro es inclusivo en ambos extremos.
func (r *SaleRepo) ListByDateRange(start, end *time.Time) ([]*entity.Sale, error) {
	query := `SELECT id, items, total, payment_method, date, seller_id, seller_name FROM sales`
	args := []any{}
	if start != nil && end != nil {
		query += ` WHERE date >= $1 AND date <= $2`
		args = append(args, *start, *end)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var items []byte
		if err := rows.Scan(&s.ID, &items, &s.Total, &s.PaymentMethod, &s.Date, &s.SellerID, &s.SellerName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
