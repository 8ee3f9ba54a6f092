package supplier

import "errors"

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSupplierInUse    = errors.New("supplier still referenced by products")
	ErrTypeExists       = errors.New("supplier type already configured")
)
