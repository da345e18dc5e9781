package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/organiknation/quote-service/internal/quote"
)

// handleSendQuote is the primary endpoint: subtotal aggregation and caller
// label overrides enabled.
func (s *Server) handleSendQuote(w http.ResponseWriter, r *http.Request) {
	s.processQuote(w, r, quote.Detailed)
}

// handleSendQuoteSimple is the lightweight endpoint older storefront themes
// still post to: no aggregation, no override plumbing.
func (s *Server) handleSendQuoteSimple(w http.ResponseWriter, r *http.Request) {
	s.processQuote(w, r, quote.Simple)
}

func (s *Server) processQuote(w http.ResponseWriter, r *http.Request, opts quote.Options) {
	var req quote.Request
	if !decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		respond(w, http.StatusBadRequest, map[string]string{"message": "Name and Email are required"})
		return
	}

	if err := s.quotes.Submit(r.Context(), req, opts); err != nil {
		s.logger.Error("quote dispatch failed",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		respond(w, http.StatusInternalServerError, map[string]string{
			"message": "Error sending email",
			"error":   err.Error(),
		})
		return
	}

	respond(w, http.StatusOK, map[string]string{"message": "Emails sent successfully!"})
}
