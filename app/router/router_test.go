package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"luminaire-configurator/app/controller"
	"luminaire-configurator/repository"
	"luminaire-configurator/service"
)

func TestSetupRoutes(t *testing.T) {
	repo, err := repository.NewEmbeddedCatalogRepository()
	if err != nil {
		t.Fatal(err)
	}
	svc := service.NewConfiguratorService(repo, nil, "")

	mux := http.NewServeMux()
	SetupRoutes(mux, &Controllers{
		Configurator: controller.NewConfiguratorController(svc),
		Product:      controller.NewProductController(svc),
	})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/ping", "", http.StatusOK},
		{http.MethodPost, "/ping", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/products", "", http.StatusOK},
		{http.MethodGet, "/products/LX200", "", http.StatusOK},
		{http.MethodPost, "/configurator/sessions", `{"product":"WL10"}`, http.StatusCreated},
		{http.MethodGet, "/order-codes/WL10.10w.65.30.GR", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
