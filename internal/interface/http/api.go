package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/dropship-manager/internal/domain/cart"
	domorder "example.com/dropship-manager/internal/domain/order"
	domproduct "example.com/dropship-manager/internal/domain/product"
	domsupplier "example.com/dropship-manager/internal/domain/supplier"
	"example.com/dropship-manager/internal/infra/security"
	analyticsuc "example.com/dropship-manager/internal/usecase/analytics"
	cartuc "example.com/dropship-manager/internal/usecase/cart"
	checkoutuc "example.com/dropship-manager/internal/usecase/checkout"
	importeruc "example.com/dropship-manager/internal/usecase/importer"
	orderuc "example.com/dropship-manager/internal/usecase/order"
	productuc "example.com/dropship-manager/internal/usecase/product"
	shopsyncuc "example.com/dropship-manager/internal/usecase/shopsync"
	statusuc "example.com/dropship-manager/internal/usecase/statuscheck"
	supplieruc "example.com/dropship-manager/internal/usecase/supplier"
)

// TokenService verifies dashboard tokens issued by the external identity
// service.
type TokenService interface {
	ParseToken(token string) (*security.Claims, error)
}

// Pinger reports backing-store health for the /health endpoints.
type Pinger func(ctx context.Context) error

type API struct {
	productSvc   *productuc.Service
	supplierSvc  *supplieruc.Service
	orderSvc     *orderuc.Service
	cartSvc      *cartuc.Service
	checkoutSvc  *checkoutuc.Service
	importSvc    *importeruc.Service
	analyticsSvc *analyticsuc.Service
	statusSvc    *statusuc.Service
	syncSvc      *shopsyncuc.Service
	tokenSvc     TokenService
	validator    *validator.Validate
	mysqlPing    Pinger
	pgPing       Pinger
}

type Dependencies struct {
	ProductService     *productuc.Service
	SupplierService    *supplieruc.Service
	OrderService       *orderuc.Service
	CartService        *cartuc.Service
	CheckoutService    *checkoutuc.Service
	ImportService      *importeruc.Service
	AnalyticsService   *analyticsuc.Service
	StatusCheckService *statusuc.Service
	// ShopSyncService is nil when no Shopify store is configured.
	ShopSyncService *shopsyncuc.Service
	TokenService    TokenService
	MySQLPing       Pinger
	PGPing          Pinger
}

func NewAPI(deps Dependencies) *API {
	return &API{
		productSvc:   deps.ProductService,
		supplierSvc:  deps.SupplierService,
		orderSvc:     deps.OrderService,
		cartSvc:      deps.CartService,
		checkoutSvc:  deps.CheckoutService,
		importSvc:    deps.ImportService,
		analyticsSvc: deps.AnalyticsService,
		statusSvc:    deps.StatusCheckService,
		syncSvc:      deps.ShopSyncService,
		tokenSvc:     deps.TokenService,
		validator:    validator.New(),
		mysqlPing:    deps.MySQLPing,
		pgPing:       deps.PGPing,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/mysql", a.handlePing(a.mysqlPing))
	r.Get("/health/pg", a.handlePing(a.pgPing))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)

		r.Post("/status", a.handleCreateStatusCheck)
		r.Get("/status", a.handleListStatusChecks)

		r.Route("/cart", func(cr chi.Router) {
			cr.Get("/", a.handleGetCart)
			cr.Delete("/", a.handleClearCart)
			cr.Post("/items", a.handleAddCartItem)
			cr.Put("/items/{productID}", a.handleSetCartQuantity)
			cr.Delete("/items/{productID}", a.handleRemoveCartItem)
			cr.Post("/checkout", a.handleCheckout)
		})

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)
			ar.Use(a.requireRoles(security.RoleAdmin, security.RoleSuperAdmin))

			ar.Route("/admin", func(admin chi.Router) {
				admin.Route("/products", func(rr chi.Router) {
					rr.Get("/", a.handleListProductsAdmin)
					rr.Post("/", a.handleCreateProduct)
					rr.Get("/{id}", a.handleGetProduct)
					rr.Put("/{id}", a.handleUpdateProduct)
					rr.Delete("/{id}", a.handleDeleteProduct)
				})

				admin.Route("/suppliers", func(rr chi.Router) {
					rr.Get("/", a.handleListSuppliers)
					rr.Post("/", a.handleCreateSupplier)
					rr.Get("/{id}", a.handleGetSupplier)
					rr.Put("/{id}", a.handleUpdateSupplier)
					rr.Delete("/{id}", a.handleDeleteSupplier)
				})

				admin.Route("/orders", func(rr chi.Router) {
					rr.Get("/", a.handleListOrders)
					rr.Get("/{id}", a.handleGetOrder)
					rr.Put("/{id}/status", a.handleUpdateOrderStatus)
				})

				admin.Get("/analytics/overview", a.handleAnalyticsOverview)

				admin.Post("/import/products", a.handleImportProducts)
				admin.Post("/import/orders", a.handleImportOrders)

				admin.Post("/shopify/sync", a.handleShopifySync)
				admin.Post("/shopify/fulfillments", a.handleShopifyFulfillment)
			})
		})
	})

	return r
}

func (a *API) handlePing(ping Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping == nil {
			respondError(w, http.StatusServiceUnavailable, errors.New("not configured"))
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			respondError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":                  p.ID,
		"name":                p.Name,
		"description":         p.Description,
		"sku":                 p.SKU,
		"price":               p.Price,
		"cost":                p.Cost,
		"supplier_id":         p.SupplierID,
		"supplier_product_id": p.SupplierProductID,
		"image_url":           p.ImageURL,
		"category":            p.Category,
		"product_type":        p.ProductType,
		"status":              p.Status,
		"stock_quantity":      p.StockQuantity,
		"created_at":          p.CreatedAt,
	}
}

func mapSupplier(s *domsupplier.Supplier) map[string]any {
	return map[string]any{
		"id":            s.ID,
		"name":          s.Name,
		"type":          s.Type,
		"contact_email": s.ContactEmail,
		"website_url":   s.WebsiteURL,
		"active":        s.Active,
		"created_at":    s.CreatedAt,
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	return map[string]any{
		"id":              o.ID,
		"reference":       o.Reference,
		"customer_name":   o.CustomerName,
		"customer_email":  o.CustomerEmail,
		"product_id":      o.ProductID,
		"product_name":    o.ProductName,
		"quantity":        o.Quantity,
		"unit_price":      o.UnitPrice,
		"total_amount":    o.TotalAmount,
		"status":          o.Status,
		"tracking_number": o.TrackingNumber,
		"created_at":      o.CreatedAt,
		"updated_at":      o.UpdatedAt,
	}
}

func mapCart(snap domcart.Snapshot) map[string]any {
	lines := make([]map[string]any, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, map[string]any{
			"product_id": l.ProductID,
			"name":       l.Name,
			"image_url":  l.ImageURL,
			"unit_price": l.UnitPrice,
			"quantity":   l.Quantity,
		})
	}
	return map[string]any{
		"session_id":  snap.SessionID,
		"items":       lines,
		"total_items": snap.TotalItems,
		"total_price": snap.TotalPrice,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domsupplier.ErrSupplierNotFound),
		errors.Is(err, domorder.ErrOrderNotFound),
		errors.Is(err, domcart.ErrLineNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domproduct.ErrSKUExists),
		errors.Is(err, domsupplier.ErrTypeExists),
		errors.Is(err, domsupplier.ErrSupplierInUse):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domproduct.ErrOutOfStock),
		errors.Is(err, domproduct.ErrInvalidStatus),
		errors.Is(err, domorder.ErrInvalidStatus),
		errors.Is(err, domorder.ErrEmptyCheckout),
		errors.Is(err, domcart.ErrInvalidQuantity):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
