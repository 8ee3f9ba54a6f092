package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domproduct "example.com/dropship-manager/internal/domain/product"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, description, sku, price, cost, supplier_id,
    supplier_product_id, image_url, category, product_type, status,
    stock_quantity, created_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*domproduct.Product, error) {
	var p domproduct.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Price, &p.Cost,
		&p.SupplierID, &p.SupplierProductID, &p.ImageURL, &p.Category,
		&p.ProductType, &p.Status, &p.StockQuantity, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO products (name, description, sku, price, cost, supplier_id,
            supplier_product_id, image_url, category, product_type, status, stock_quantity)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, p.Name, p.Description, p.SKU, p.Price, p.Cost, p.SupplierID,
		p.SupplierProductID, p.ImageURL, p.Category, p.ProductType, p.Status, p.StockQuantity)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, domproduct.ErrSKUExists
		}
		return nil, err
	}
	p.ID, _ = res.LastInsertId()
	return r.GetByID(ctx, p.ID)
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET name = ?, description = ?, sku = ?, price = ?, cost = ?,
            supplier_id = ?, supplier_product_id = ?, image_url = ?, category = ?,
            product_type = ?, status = ?, stock_quantity = ?
        WHERE id = ?
    `, p.Name, p.Description, p.SKU, p.Price, p.Cost, p.SupplierID,
		p.SupplierProductID, p.ImageURL, p.Category, p.ProductType, p.Status,
		p.StockQuantity, p.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, domproduct.ErrSKUExists
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		// RowsAffected is also zero for a no-change update, so confirm the
		// row really is missing.
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+productColumns+` FROM products WHERE id = ?
    `, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	var clauses []string
	var args []any

	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.SupplierID > 0 {
		clauses = append(clauses, "supplier_id = ?")
		args = append(args, filter.SupplierID)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(name LIKE ? OR sku LIKE ?)")
		like := fmt.Sprintf("%%%s%%", filter.Search)
		args = append(args, like, like)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}
