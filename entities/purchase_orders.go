package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// PurchaseOrder is an order placed with a supplier. The detail collections
// are only filled by the details search.
type PurchaseOrder struct {
	ID          int64             `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	Supplier    *string           `json:"supplier"`
	Status      *string           `json:"status"`
	Total       *float64          `json:"total"`
	IsPaid      bool              `json:"isPaid"`
	OrderedAt   *time.Time        `json:"orderedAt"`
	CreatedAt   time.Time         `json:"createdAt"`
	Packages    []OrderPackage    `json:"packages,omitempty"`
	Attachments []OrderAttachment `json:"attachments,omitempty"`
	Payments    []OrderPayment    `json:"payments,omitempty"`
}

// OrderPackage is a line of a purchase order.
type OrderPackage struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
}

// OrderAttachment is a document attached to a purchase order.
type OrderAttachment struct {
	ID       int64   `json:"id"`
	FileName string  `json:"fileName"`
	URL      *string `json:"url"`
}

// OrderPayment is a payment made against a purchase order.
type OrderPayment struct {
	ID     int64      `json:"id"`
	Amount float64    `json:"amount"`
	PaidAt *time.Time `json:"paidAt"`
}

// PurchaseOrders searches purchase orders without their details. See
// PurchaseOrderDetails for the loaders.
func PurchaseOrders(s *filterql.Schema) repository.Entity {
	o := s.T("purchase_orders", "o")

	return repository.Entity{
		Name:       "purchase-orders",
		Table:      o,
		PrimaryKey: s.F(o, "id"),
		Tenant:     s.F(o, "tenant_id"),
		SoftDelete: ptr(s.F(o, "is_deleted")),
		Select:     fields(s, o, "id", "order_number", "supplier", "status", "total", "is_paid", "ordered_at", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":          s.F(o, "id"),
			"orderNumber": s.F(o, "order_number"),
			"supplier":    s.F(o, "supplier"),
			"status":      s.F(o, "status"),
			"total":       s.F(o, "total"),
			"isPaid":      s.F(o, "is_paid"),
			"orderedAt":   s.F(o, "ordered_at"),
			"createdAt":   s.F(o, "created_at"),
		}).
			Numbers("id", "total").
			Booleans("isPaid").
			Dates("orderedAt", "createdAt"),
	}
}

func scanPurchaseOrder(row repository.Row) (PurchaseOrder, error) {
	var v PurchaseOrder
	err := row.Scan(&v.ID, &v.OrderNumber, &v.Supplier, &v.Status, &v.Total, &v.IsPaid, &v.OrderedAt, &v.CreatedAt)
	return v, err
}

func purchaseOrderID(o PurchaseOrder) int64 { return o.ID }

// PurchaseOrderDetails returns the loaders for packages, attachments and
// payments, in that order.
func PurchaseOrderDetails(s *filterql.Schema) []repository.Loader[PurchaseOrder] {
	i := s.T("order_packages", "i")
	a := s.T("order_attachments", "a")
	y := s.T("order_payments", "y")

	return []repository.Loader[PurchaseOrder]{
		repository.HasMany[PurchaseOrder, OrderPackage]{
			Name:       "order packages",
			Table:      i,
			ForeignKey: s.F(i, "purchase_order_id"),
			PrimaryKey: s.F(i, "id"),
			Tenant:     ptr(s.F(i, "tenant_id")),
			Select:     fields(s, i, "id", "description", "quantity", "purchase_order_id"),
			Scan: func(row repository.Row) (OrderPackage, int64, error) {
				var v OrderPackage
				var parent int64
				err := row.Scan(&v.ID, &v.Description, &v.Quantity, &parent)
				return v, parent, err
			},
			ParentID: purchaseOrderID,
			Attach:   func(o *PurchaseOrder, c []OrderPackage) { o.Packages = c },
		},
		repository.HasMany[PurchaseOrder, OrderAttachment]{
			Name:       "order attachments",
			Table:      a,
			ForeignKey: s.F(a, "purchase_order_id"),
			PrimaryKey: s.F(a, "id"),
			Tenant:     ptr(s.F(a, "tenant_id")),
			SoftDelete: ptr(s.F(a, "is_deleted")),
			Select:     fields(s, a, "id", "file_name", "url", "purchase_order_id"),
			Scan: func(row repository.Row) (OrderAttachment, int64, error) {
				var v OrderAttachment
				var parent int64
				err := row.Scan(&v.ID, &v.FileName, &v.URL, &parent)
				return v, parent, err
			},
			ParentID: purchaseOrderID,
			Attach:   func(o *PurchaseOrder, c []OrderAttachment) { o.Attachments = c },
		},
		repository.HasMany[PurchaseOrder, OrderPayment]{
			Name:       "order payments",
			Table:      y,
			ForeignKey: s.F(y, "purchase_order_id"),
			PrimaryKey: s.F(y, "id"),
			Tenant:     ptr(s.F(y, "tenant_id")),
			Select:     fields(s, y, "id", "amount", "paid_at", "purchase_order_id"),
			Scan: func(row repository.Row) (OrderPayment, int64, error) {
				var v OrderPayment
				var parent int64
				err := row.Scan(&v.ID, &v.Amount, &v.PaidAt, &parent)
				return v, parent, err
			},
			ParentID: purchaseOrderID,
			Attach:   func(o *PurchaseOrder, c []OrderPayment) { o.Payments = c },
		},
	}
}
