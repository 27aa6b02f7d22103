package controller

import (
	"net/http"
	"strings"

	"luminaire-configurator/service"
)

// ProductController handles HTTP requests for the product catalog
type ProductController struct {
	service service.ConfiguratorServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(svc service.ConfiguratorServiceInterface) *ProductController {
	return &ProductController{
		service: svc,
	}
}

// ListProducts handles GET /products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := c.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, "Failed to list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/:code
// Returns the filtered catalog, including attributes dropped for having no values
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.Trim(strings.TrimPrefix(r.URL.Path, "/products/"), "/")
	if code == "" {
		http.Error(w, "product code is required", http.StatusBadRequest)
		return
	}

	detail, err := c.service.GetProduct(r.Context(), code)
	if err != nil {
		writeError(w, "Failed to get product", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// ParseOrderCode handles GET /order-codes/:code?product=
// Splits a plain order code (or datasheet filename) into labeled tokens
func (c *ProductController) ParseOrderCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/order-codes/")
	if code == "" {
		http.Error(w, "order code is required", http.StatusBadRequest)
		return
	}

	parsed, err := c.service.ParseOrderCode(r.Context(), r.URL.Query().Get("product"), code)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		http.Error(w, "Invalid order code: "+err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, parsed)
}
