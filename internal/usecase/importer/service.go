package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	domorder "example.com/dropship-manager/internal/domain/order"
	domproduct "example.com/dropship-manager/internal/domain/product"
	domsupplier "example.com/dropship-manager/internal/domain/supplier"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error)
}

type SupplierRepository interface {
	GetByType(ctx context.Context, supplierType string) (*domsupplier.Supplier, error)
}

type Service struct {
	productRepo  ProductRepository
	orderRepo    OrderRepository
	supplierRepo SupplierRepository
}

func NewService(productRepo ProductRepository, orderRepo OrderRepository, supplierRepo SupplierRepository) *Service {
	return &Service{
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
	}
}

// RowError pins an import failure to its 1-based data row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result summarizes a bulk import. Failed rows are skipped, not fatal: one
// bad line in a supplier feed should not discard the rest of it.
type Result struct {
	Total    int        `json:"total"`
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors,omitempty"`
}

// ImportProducts creates one product per row, stamped with the supplier
// configured for supplierType. Expected columns: name, price and sku
// required; description, cost, stock_quantity, image_url, category,
// product_type, supplier_product_id optional.
func (s *Service) ImportProducts(ctx context.Context, supplierType string, rows []Row) (*Result, error) {
	sup, err := s.supplierRepo.GetByType(ctx, supplierType)
	if err != nil {
		return nil, err
	}

	result := &Result{Total: len(rows)}
	for i, row := range rows {
		p, err := productFromRow(row)
		if err != nil {
			result.fail(i, err)
			continue
		}
		p.SupplierID = sup.ID
		if _, err := s.productRepo.Create(ctx, p); err != nil {
			result.fail(i, err)
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportOrders creates one pending order per row. Expected columns:
// customer_name, customer_email, product_id, quantity, total_amount.
func (s *Service) ImportOrders(ctx context.Context, supplierType string, rows []Row) (*Result, error) {
	// The supplier type is validated even though orders do not reference it
	// directly; an unknown type means the operator picked the wrong feed.
	if _, err := s.supplierRepo.GetByType(ctx, supplierType); err != nil {
		return nil, err
	}

	result := &Result{Total: len(rows)}
	for i, row := range rows {
		o, err := orderFromRow(row)
		if err != nil {
			result.fail(i, err)
			continue
		}
		if _, err := s.orderRepo.Create(ctx, o); err != nil {
			result.fail(i, err)
			continue
		}
		result.Imported++
	}
	return result, nil
}

func (r *Result) fail(idx int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: idx + 1, Message: err.Error()})
}

func productFromRow(row Row) (*domproduct.Product, error) {
	name := strings.TrimSpace(row["name"])
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}
	sku := strings.TrimSpace(row["sku"])
	if sku == "" {
		return nil, fmt.Errorf("missing sku")
	}

	price, err := parsePrice(row["price"])
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}

	p := &domproduct.Product{
		Name:              name,
		Description:       row["description"],
		SKU:               sku,
		Price:             price,
		SupplierProductID: strings.TrimSpace(row["supplier_product_id"]),
		ImageURL:          strings.TrimSpace(row["image_url"]),
		Category:          strings.TrimSpace(row["category"]),
		ProductType:       strings.TrimSpace(row["product_type"]),
		Status:            domproduct.StatusActive,
	}

	if v := strings.TrimSpace(row["cost"]); v != "" {
		cost, err := parsePrice(v)
		if err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
		p.Cost = cost
	}
	if v := strings.TrimSpace(row["stock_quantity"]); v != "" {
		stock, err := strconv.ParseInt(v, 10, 64)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock_quantity %q", v)
		}
		p.StockQuantity = stock
	}
	return p, nil
}

func orderFromRow(row Row) (*domorder.Order, error) {
	name := strings.TrimSpace(row["customer_name"])
	email := strings.TrimSpace(row["customer_email"])
	if name == "" || email == "" {
		return nil, fmt.Errorf("missing customer_name or customer_email")
	}

	productID, err := strconv.ParseInt(strings.TrimSpace(row["product_id"]), 10, 64)
	if err != nil || productID <= 0 {
		return nil, fmt.Errorf("invalid product_id %q", row["product_id"])
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(row["quantity"]), 10, 64)
	if err != nil || quantity <= 0 {
		return nil, fmt.Errorf("invalid quantity %q", row["quantity"])
	}
	total, err := parsePrice(row["total_amount"])
	if err != nil {
		return nil, fmt.Errorf("total_amount: %w", err)
	}

	return &domorder.Order{
		CustomerName:  name,
		CustomerEmail: email,
		ProductID:     productID,
		Quantity:      quantity,
		TotalAmount:   total,
		Status:        domorder.StatusPending,
	}, nil
}

func parsePrice(raw string) (float64, error) {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if v == "" {
		return 0, fmt.Errorf("missing value")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid value %q", raw)
	}
	return f, nil
}
