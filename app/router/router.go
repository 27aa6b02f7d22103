package router

import (
	"net/http"

	"luminaire-configurator/app/controller"
)

type Controllers struct {
	Configurator *controller.ConfiguratorController
	Product      *controller.ProductController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Product catalog routes
	mux.HandleFunc("/products", controllers.Product.ListProducts)
	mux.HandleFunc("/products/", controllers.Product.GetProduct)

	// Parse plain order codes / datasheet filenames
	mux.HandleFunc("/order-codes/", controllers.Product.ParseOrderCode)

	// Configurator sessions
	mux.HandleFunc("/configurator/sessions", controllers.Configurator.CreateSession)

	// Session read-out and commands: select, reset, ral, ral/focus
	mux.HandleFunc("/configurator/sessions/", controllers.Configurator.HandleSession)
}
