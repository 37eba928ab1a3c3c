package repository

import (
	"context"
	"database/sql"
	"strings"
)

// OrderFilters defines list filters.
type OrderFilters struct {
	Stage  string
	Search string
	Limit  int // 0 = no limit
	Offset int
}

// OrderRepo handles orders, their shipments and items.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Insert(ctx context.Context, o Order) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO orders(id, reference, customer_name, email, stage, total, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, o.ID, o.Reference, o.CustomerName, o.Email, o.Stage, o.TotalCents)
	if err != nil {
		return err
	}
	for _, s := range o.Shipping {
		_, err = r.db.ExecContext(ctx, `
		INSERT INTO shipments(id, order_id, carrier, tracking_number, packed, shipped, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
		`, s.ID, o.ID, s.Carrier, s.TrackingNumber, s.Packed, s.Shipped)
		if err != nil {
			return err
		}
	}
	for _, it := range o.Items {
		_, err = r.db.ExecContext(ctx, `
		INSERT INTO order_items(id, order_id, product_id, variant_id, title, quantity, price)
		VALUES(?, ?, ?, ?, ?, ?, ?);
		`, it.ID, o.ID, it.ProductID, it.VariantID, it.Title, it.Quantity, it.PriceCents)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, reference, customer_name, email, stage, total, created_at, updated_at
	FROM orders WHERE id = ?`, id)
	var o Order
	if err := row.Scan(&o.ID, &o.Reference, &o.CustomerName, &o.Email, &o.Stage, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.attach(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context, f OrderFilters) ([]Order, error) {
	var where []string
	var args []interface{}

	if f.Stage != "" {
		where = append(where, "stage = ?")
		args = append(args, f.Stage)
	}
	if f.Search != "" {
		where = append(where, "(reference LIKE ? OR customer_name LIKE ?)")
		args = append(args, "%"+f.Search+"%", "%"+f.Search+"%")
	}

	query := "SELECT id, reference, customer_name, email, stage, total, created_at, updated_at FROM orders"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"
	if f.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.CustomerName, &o.Email, &o.Stage, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.attach(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SetShipmentPacked flips the packed flag of a shipment.
func (r *OrderRepo) SetShipmentPacked(ctx context.Context, shipmentID string, packed bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE shipments SET packed = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, packed, shipmentID)
	return err
}

// SetShipmentShipped marks a shipment shipped.
func (r *OrderRepo) SetShipmentShipped(ctx context.Context, shipmentID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE shipments SET shipped = 1, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, shipmentID)
	return err
}

// SetWorkflowStage moves an order to a named fulfillment stage.
func (r *OrderRepo) SetWorkflowStage(ctx context.Context, orderID, stage string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE orders SET stage = ?, updated_at=CURRENT_TIMESTAMP WHERE id = ?`, stage, orderID)
	return err
}

func (r *OrderRepo) attach(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, order_id, carrier, tracking_number, packed, shipped, updated_at
	FROM shipments WHERE order_id = ? ORDER BY updated_at, id`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var s Shipment
		if err := rows.Scan(&s.ID, &s.OrderID, &s.Carrier, &s.TrackingNumber, &s.Packed, &s.Shipped, &s.UpdatedAt); err != nil {
			return err
		}
		o.Shipping = append(o.Shipping, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	itemRows, err := r.db.QueryContext(ctx, `
	SELECT id, order_id, product_id, variant_id, title, quantity, price
	FROM order_items WHERE order_id = ? ORDER BY id`, o.ID)
	if err != nil {
		return err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.VariantID, &it.Title, &it.Quantity, &it.PriceCents); err != nil {
			return err
		}
		o.Items = append(o.Items, it)
	}
	return itemRows.Err()
}
