package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/funsnaps/contact-api/pkg/contact"
	"github.com/funsnaps/contact-api/pkg/email"
	"github.com/funsnaps/contact-api/pkg/metrics"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandleContact godoc
// @Summary      Submit contact form
// @Description  Validates a contact form submission and forwards it by email
// @Tags         contact
// @Accept       json
// @Accept       application/x-www-form-urlencoded
// @Produce      json
// @Param        name        body  string  true   "Submitter name"
// @Param        email       body  string  true   "Submitter email, used as reply-to"
// @Param        phone       body  string  true   "Submitter phone"
// @Param        event-date  body  string  false  "Event date"
// @Param        event-type  body  string  false  "Event type"
// @Param        message     body  string  false  "Free text message"
// @Success      200 {object} successResponse
// @Failure      400 {object} errorResponse "Invalid body, missing field or invalid email"
// @Failure      405 {object} errorResponse "Method not allowed"
// @Failure      500 {object} errorResponse "Email service not configured or delivery failed"
// @Router       /api/contact [post]
func (s *Server) HandleContact(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))

	sub, err := contact.Parse(r, s.config.MaxBodyBytes)
	if err != nil {
		logger.Debug("rejected contact submission", zap.Error(err))
		s.metrics.ObserveSubmission(metrics.OutcomeInvalidBody)
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request body",
			Details: strings.TrimPrefix(err.Error(), contact.ErrInvalidBody.Error()+": "),
		})
		return
	}

	sub.Normalize()
	if err := sub.Validate(s.config.StrictEmailValidation); err != nil {
		logger.Debug("rejected contact submission", zap.Error(err))
		if errors.Is(err, contact.ErrInvalidEmail) {
			s.metrics.ObserveSubmission(metrics.OutcomeInvalidEmail)
		} else {
			s.metrics.ObserveSubmission(metrics.OutcomeMissingFields)
		}
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if s.emailSender == nil {
		logger.Error("email provider is not configured",
			zap.String("provider", s.config.EmailProvider),
			zap.NamedError("reason", s.senderErr),
		)
		s.metrics.ObserveSubmission(metrics.OutcomeNotConfigured)
		resp := errorResponse{Error: "Email service not configured"}
		if s.config.IsDevelopment() && s.senderErr != nil {
			resp.Details = s.senderErr.Error()
		}
		writeError(w, http.StatusInternalServerError, resp)
		return
	}

	submissionID := uuid.NewString()
	msg := email.Message{
		From:    s.config.FromEmail,
		To:      s.config.ToEmails,
		ReplyTo: sub.Email,
		Subject: sub.Subject(),
		HTML:    sub.HTML(),
		Text:    sub.Text(),
		Tags:    []email.Tag{{Name: "submission_id", Value: submissionID}},
		Headers: map[string]string{"X-Entity-Ref-ID": submissionID},
	}

	start := time.Now()
	result, err := s.emailSender.Send(r.Context(), msg)
	s.metrics.ObserveSend(s.config.EmailProvider, err, time.Since(start))
	if err != nil {
		logger.Error("failed to send contact email",
			zap.String("submission_id", submissionID),
			zap.Error(err),
		)
		s.metrics.ObserveSubmission(metrics.OutcomeSendFailed)
		resp := errorResponse{
			Error:   "Failed to send email",
			Details: err.Error(),
		}
		if s.config.IsDevelopment() {
			resp.Stack = errorChain(err)
		}
		writeError(w, http.StatusInternalServerError, resp)
		return
	}

	if result == nil {
		result = &email.Result{Provider: s.config.EmailProvider}
	}
	logger.Info("sent contact email",
		zap.String("submission_id", submissionID),
		zap.String("provider_id", result.ID),
	)
	s.metrics.ObserveSubmission(metrics.OutcomeSent)
	writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Email sent successfully",
		Data:    result,
	})
}

// errorChain lists err and each wrapped cause on its own line.
func errorChain(err error) string {
	var lines []string
	for ; err != nil; err = errors.Unwrap(err) {
		lines = append(lines, fmt.Sprintf("%T: %v", err, err))
	}
	return strings.Join(lines, "\n")
}
