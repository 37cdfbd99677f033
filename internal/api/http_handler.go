package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rpattn/crmql/internal/domain"
	"github.com/rpattn/crmql/internal/metadata"
	"github.com/rpattn/crmql/internal/middleware"
	"github.com/rpattn/crmql/internal/search"
	"github.com/rpattn/crmql/internal/translate"
)

// Handler exposes filter translation and query parsing over JSON HTTP.
type Handler struct {
	resolver metadata.AttributeResolver
	parser   *search.Parser
}

// NewHTTPHandler creates the API handler. The resolver is used when no
// per-request attribute loader is attached to the context.
func NewHTTPHandler(resolver metadata.AttributeResolver, parser *search.Parser) http.Handler {
	return &Handler{resolver: resolver, parser: parser}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/translate"):
		h.handleTranslate(w, r)
		return
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/parse"):
		h.handleParse(w, r)
		return
	default:
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
}

type translatePayload struct {
	ResourceType       string            `json:"resourceType"`
	Filters            *domain.FilterSet `json:"filters"`
	ValidateConditions *bool             `json:"validateConditions"`
	LegacyMode         bool              `json:"legacyMode"`
}

type translateResponse struct {
	Filter domain.CompiledFilter `json:"filter,omitempty"`
}

func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload translatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	validateConditions := true
	if payload.ValidateConditions != nil {
		validateConditions = *payload.ValidateConditions
	}

	resolver := h.resolver
	if loader := middleware.AttributeLoaderFromContext(r.Context()); loader != nil {
		resolver = loader
	}

	translator := translate.NewTranslator(resolver)
	compiled, err := translator.TransformFilters(r.Context(), payload.Filters, translate.TransformOptions{
		ResourceType:       payload.ResourceType,
		ValidateConditions: validateConditions,
		LegacyMode:         payload.LegacyMode,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	response := translateResponse{}
	if len(compiled) > 0 {
		response.Filter = compiled
	}
	writeJSON(w, http.StatusOK, response)
}

type parsePayload struct {
	Query string `json:"query"`
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload parsePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.parser.Parse(payload.Query))
}

type errorResponse struct {
	Error    string                    `json:"error"`
	Category domain.ValidationCategory `json:"category,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	if verr, ok := domain.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:    verr.Message,
			Category: verr.Category,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
