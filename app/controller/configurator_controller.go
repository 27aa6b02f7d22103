package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"luminaire-configurator/configurator"
	"luminaire-configurator/models"
	"luminaire-configurator/repository"
	"luminaire-configurator/service"
)

const sessionsPath = "/configurator/sessions/"

// ConfiguratorController handles HTTP requests for configurator sessions
type ConfiguratorController struct {
	service service.ConfiguratorServiceInterface
}

// NewConfiguratorController creates a new ConfiguratorController
func NewConfiguratorController(svc service.ConfiguratorServiceInterface) *ConfiguratorController {
	return &ConfiguratorController{
		service: svc,
	}
}

// CreateSession handles POST /configurator/sessions
func (c *ConfiguratorController) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Product) == "" {
		http.Error(w, "product is required", http.StatusBadRequest)
		return
	}

	view, err := c.service.CreateSession(r.Context(), req.Product)
	if err != nil {
		writeError(w, "Failed to create session", err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// HandleSession routes /configurator/sessions/:id and its command sub-paths
func (c *ConfiguratorController) HandleSession(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, sessionsPath), "/")
	if path == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	id, action, _ := strings.Cut(path, "/")

	switch action {
	case "":
		switch r.Method {
		case http.MethodGet:
			c.getSession(w, r, id)
		case http.MethodDelete:
			c.deleteSession(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "select":
		c.selectValue(w, r, id)
	case "reset":
		c.reset(w, r, id)
	case "ral":
		c.setRALText(w, r, id)
	case "ral/focus":
		c.focusRAL(w, r, id)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// getSession handles GET /configurator/sessions/:id
func (c *ConfiguratorController) getSession(w http.ResponseWriter, r *http.Request, id string) {
	view, err := c.service.GetSession(id)
	if err != nil {
		writeError(w, "Failed to get session", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// deleteSession handles DELETE /configurator/sessions/:id
func (c *ConfiguratorController) deleteSession(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.service.DeleteSession(id); err != nil {
		writeError(w, "Failed to delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// selectValue handles POST /configurator/sessions/:id/select
func (c *ConfiguratorController) selectValue(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	view, err := c.service.Select(id, req.Attribute, req.Value)
	if err != nil {
		writeError(w, "Failed to select value", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// reset handles POST /configurator/sessions/:id/reset
func (c *ConfiguratorController) reset(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := c.service.Reset(id)
	if err != nil {
		writeError(w, "Failed to reset session", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// focusRAL handles POST /configurator/sessions/:id/ral/focus
func (c *ConfiguratorController) focusRAL(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := c.service.FocusRAL(id)
	if err != nil {
		writeError(w, "Failed to focus RAL field", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// setRALText handles POST /configurator/sessions/:id/ral
func (c *ConfiguratorController) setRALText(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RALTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	view, err := c.service.SetRALText(id, req.Text)
	if err != nil {
		writeError(w, "Failed to set RAL text", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// statusFor maps service and core errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, repository.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, configurator.ErrRALInactive):
		return http.StatusConflict
	case errors.Is(err, configurator.ErrUnknownAttribute),
		errors.Is(err, configurator.ErrReadOnlyAttribute),
		errors.Is(err, configurator.ErrValueNotInCatalog):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, msg string, err error) {
	http.Error(w, fmt.Sprintf("%s: %v", msg, err), statusFor(err))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
