package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domproduct "example.com/dropship-manager/internal/domain/product"
)

const apiVersion = "2024-01"

// Client talks to the Shopify Admin REST API for one store. The zero token
// check lives in main: a Client is only constructed when sync is configured.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New builds a client for shopDomain ("example.myshopify.com").
func New(shopDomain, token string) *Client {
	return NewWithBaseURL(fmt.Sprintf("https://%s/admin/api/%s", shopDomain, apiVersion), token)
}

// NewWithBaseURL is split out so tests can point the client at a local
// server.
func NewWithBaseURL(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Product is the subset of Shopify's product resource the sync cares about.
type Product struct {
	ID       int64     `json:"id,omitempty"`
	Title    string    `json:"title"`
	BodyHTML string    `json:"body_html,omitempty"`
	Vendor   string    `json:"vendor,omitempty"`
	Type     string    `json:"product_type,omitempty"`
	Status   string    `json:"status,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
	Images   []Image   `json:"images,omitempty"`
}

type Variant struct {
	ID                int64  `json:"id,omitempty"`
	SKU               string `json:"sku"`
	Price             string `json:"price"`
	InventoryQuantity int64  `json:"inventory_quantity,omitempty"`
	InventoryPolicy   string `json:"inventory_policy,omitempty"`
}

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products.json?limit=250", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, p *domproduct.Product) (*Product, error) {
	body := map[string]Product{"product": toShopifyProduct(p)}
	var out struct {
		Product Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPost, "/products.json", body, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, shopifyID int64, p *domproduct.Product) (*Product, error) {
	sp := toShopifyProduct(p)
	sp.ID = shopifyID
	sp.Variants = nil // variant edits go through the variant endpoint
	sp.Images = nil
	body := map[string]Product{"product": sp}
	var out struct {
		Product Product `json:"product"`
	}
	path := fmt.Sprintf("/products/%d.json", shopifyID)
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// CreateFulfillment marks a Shopify order fulfilled and attaches the
// tracking number, notifying the customer.
func (c *Client) CreateFulfillment(ctx context.Context, orderID int64, trackingNumber string) error {
	body := map[string]any{
		"fulfillment": map[string]any{
			"tracking_number": trackingNumber,
			"notify_customer": true,
		},
	}
	path := fmt.Sprintf("/orders/%d/fulfillments.json", orderID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func toShopifyProduct(p *domproduct.Product) Product {
	status := "draft"
	if p.Status == domproduct.StatusActive {
		status = "active"
	}
	sp := Product{
		Title:    p.Name,
		BodyHTML: p.Description,
		Type:     p.Category,
		Status:   status,
		Variants: []Variant{{
			SKU:               p.SKU,
			Price:             fmt.Sprintf("%.2f", p.Price),
			InventoryQuantity: p.StockQuantity,
			InventoryPolicy:   "deny",
		}},
	}
	if p.ImageURL != "" {
		sp.Images = []Image{{Src: p.ImageURL, Alt: p.Name}}
	}
	return sp
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal shopify request: %w", err)
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shopify %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shopify %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode shopify response: %w", err)
	}
	return nil
}
