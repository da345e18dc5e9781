package quote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/organiknation/quote-service/internal/email"
)

// Service runs the full quote pipeline: normalize the cart payload, render
// the bilingual document, and dispatch it to the admin address and to the
// requester. It holds no per-request state.
type Service struct {
	mailer    email.Sender
	adminAddr string
	storeName string
	branding  Branding
	logger    *slog.Logger
}

// NewService wires the pipeline dependencies.
func NewService(mailer email.Sender, adminAddr string, branding Branding, logger *slog.Logger) *Service {
	return &Service{
		mailer:    mailer,
		adminAddr: adminAddr,
		storeName: branding.StoreName,
		branding:  branding,
		logger:    logger,
	}
}

// Submit processes one quote request end to end. The two sends are sequential
// and share the rendered document; a failure on either leg aborts and is
// returned as a single wrapped error. If the admin send succeeded before the
// customer send failed, that partial delivery is logged but not distinguished
// in the returned error — callers see one aggregate failure either way.
func (s *Service) Submit(ctx context.Context, req Request, opts Options) error {
	items := NormalizeCartItems(req.CartItems, opts.LegacyDefaults)
	rendered := Render(req, items, opts, s.branding)

	// Correlates the two sends of one submission in logs.
	dispatchRef := uuid.New()

	adminSubject := fmt.Sprintf("%s %s", text(req.Language, labelSubjectAdmin), req.Name)
	if err := s.mailer.Send(ctx, email.Message{
		To:      s.adminAddr,
		Subject: adminSubject,
		HTML:    rendered.HTML,
	}); err != nil {
		s.logger.Error("admin notification failed",
			"dispatch_ref", dispatchRef, "error", err)
		return fmt.Errorf("admin notification: %w", err)
	}
	s.logger.Info("admin notification sent",
		"dispatch_ref", dispatchRef, "items", len(items))

	customerSubject := strings.TrimSpace(fmt.Sprintf("%s %s %s",
		text(req.Language, labelSubjectUser), req.Name, s.storeName))
	if err := s.mailer.Send(ctx, email.Message{
		To:      req.Email,
		Subject: customerSubject,
		HTML:    rendered.HTML,
	}); err != nil {
		s.logger.Error("customer confirmation failed",
			"dispatch_ref", dispatchRef, "error", err)
		return fmt.Errorf("customer confirmation: %w", err)
	}
	s.logger.Info("customer confirmation sent", "dispatch_ref", dispatchRef)

	return nil
}
