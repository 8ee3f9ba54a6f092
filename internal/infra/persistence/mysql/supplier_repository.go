package mysql

import (
	"context"
	"database/sql"
	"errors"

	domsupplier "example.com/dropship-manager/internal/domain/supplier"
)

type SupplierRepository struct {
	db *sql.DB
}

func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domsupplier.Supplier) (*domsupplier.Supplier, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO suppliers (name, type, contact_email, website_url, active)
        VALUES (?, ?, ?, ?, ?)
    `, s.Name, s.Type, s.ContactEmail, s.WebsiteURL, s.Active)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, domsupplier.ErrTypeExists
		}
		return nil, err
	}
	s.ID, _ = res.LastInsertId()
	return r.GetByID(ctx, s.ID)
}

func (r *SupplierRepository) Update(ctx context.Context, s *domsupplier.Supplier) (*domsupplier.Supplier, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE suppliers SET name = ?, type = ?, contact_email = ?, website_url = ?, active = ?
        WHERE id = ?
    `, s.Name, s.Type, s.ContactEmail, s.WebsiteURL, s.Active, s.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, domsupplier.ErrTypeExists
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, s.ID)
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	var refs int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE supplier_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domsupplier.ErrSupplierInUse
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domsupplier.ErrSupplierNotFound
	}
	return nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*domsupplier.Supplier, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, type, contact_email, website_url, active, created_at
        FROM suppliers WHERE id = ?
    `, id)
	return scanSupplier(row)
}

func (r *SupplierRepository) GetByType(ctx context.Context, supplierType string) (*domsupplier.Supplier, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, type, contact_email, website_url, active, created_at
        FROM suppliers WHERE type = ?
    `, supplierType)
	return scanSupplier(row)
}

func (r *SupplierRepository) List(ctx context.Context) ([]*domsupplier.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, type, contact_email, website_url, active, created_at
        FROM suppliers ORDER BY id DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*domsupplier.Supplier
	for rows.Next() {
		var s domsupplier.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.ContactEmail, &s.WebsiteURL, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

func scanSupplier(row *sql.Row) (*domsupplier.Supplier, error) {
	var s domsupplier.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Type, &s.ContactEmail, &s.WebsiteURL, &s.Active, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domsupplier.ErrSupplierNotFound
		}
		return nil, err
	}
	return &s, nil
}
