// Package api - HTTP handlers for the pricing engine
// Handlers contain NO pricing logic. They decode, delegate to core packages
// and serialize; the engine's errors pass through to the envelope unchanged.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"quote-engine/adapters/storage"
	"quote-engine/core/engine"
	"quote-engine/core/stats"
	"quote-engine/internal/errors"
	"quote-engine/internal/logging"
)

// handlePrice handles POST /v1/price
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("decode price request", err))
		return
	}

	result, err := engine.Price(req.Request, req.Snapshot)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := PriceResponse{
		Timestamp: time.Now().UTC(),
		Result:    result,
	}

	if req.Persist && s.store != nil {
		quote := &storage.StoredQuote{
			Customer:   req.Request.Customer,
			SnapshotID: req.Snapshot.ID,
			Request:    req.Request,
			Result:     result,
		}
		if err := s.store.Save(r.Context(), quote); err != nil {
			s.writeError(w, err)
			return
		}
		resp.QuoteID = quote.ID
		logging.Info("quote persisted",
			zap.String("quote_id", quote.ID),
			zap.String("customer", quote.Customer))
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleStats handles POST /v1/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Parsing("decode stats request", err))
		return
	}

	statistics, err := stats.Extract(req.Series)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, StatsResponse{Statistics: statistics}, http.StatusOK)
}

// handleListQuotes handles GET /quotes
func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, errors.Config("no quote store configured"))
		return
	}

	filter := &storage.ListFilter{
		Customer: r.URL.Query().Get("customer"),
	}
	quotes, err := s.store.List(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if quotes == nil {
		quotes = []*storage.StoredQuote{}
	}

	s.writeJSON(w, QuoteListResponse{Quotes: quotes}, http.StatusOK)
}

// handleGetQuote handles GET /quotes/{id}
func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, errors.Config("no quote store configured"))
		return
	}

	quote, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, quote, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, body interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{
		Code:    string(errors.TypeInternal),
		Message: err.Error(),
	}
	status := http.StatusInternalServerError

	if domainErr, ok := err.(*errors.Error); ok {
		resp.Code = string(domainErr.Type)
		switch domainErr.Type {
		case errors.TypeInput, errors.TypeParsing:
			status = http.StatusBadRequest
		case errors.TypeConfig:
			status = http.StatusUnprocessableEntity
		case errors.TypeNotFound:
			status = http.StatusNotFound
		}
	}

	s.writeJSON(w, resp, status)
}
