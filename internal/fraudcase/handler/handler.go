// Package handler exposes the order hooks the commerce platform calls: create
// the local case record, read it back, and assemble-and-submit a fraud case.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"casebridge/internal/fraudcase/models"
	"casebridge/internal/order"
	"casebridge/internal/platform/middleware"
	dErrors "casebridge/pkg/domain-errors"
	"casebridge/pkg/platform/httputil"
)

// Service defines the fraud case operations the handler drives.
type Service interface {
	CreateCaseRecord(ctx context.Context, o *order.Order) (*models.CaseRecord, error)
	GetCaseRecord(ctx context.Context, orderID string) (*models.CaseRecord, error)
	SubmitOrder(ctx context.Context, o *order.Order) (models.SubmissionResult, error)
}

type Handler struct {
	svc        Service
	classifier *order.MethodClassifier
	logger     *slog.Logger
}

// New creates a Handler. A nil classifier uses the default card methods.
func New(svc Service, classifier *order.MethodClassifier, logger *slog.Logger) *Handler {
	if classifier == nil {
		classifier = order.NewMethodClassifier(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, classifier: classifier, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/orders/case-records", h.HandleCreateCaseRecord)
	r.Get("/orders/{incrementID}/case-record", h.HandleGetCaseRecord)
	r.Post("/orders/cases", h.HandleSubmitOrder)
}

// HandleCreateCaseRecord runs on order placement.
func (h *Handler) HandleCreateCaseRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[OrderRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record, err := h.svc.CreateCaseRecord(ctx, req.toOrder(h.classifier))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create case record",
			"request_id", requestID,
			"order_id", req.IncrementID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toRecordResponse(record))
}

func (h *Handler) HandleGetCaseRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	orderID := chi.URLParam(r, "incrementID")
	if orderID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "increment id is required"))
		return
	}

	record, err := h.svc.GetCaseRecord(ctx, orderID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to load case record",
				"request_id", requestID,
				"order_id", orderID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toRecordResponse(record))
}

// HandleSubmitOrder runs on order save. A failed submission is still a
// completed request: the typed result is returned with 502 so the caller can
// tell the fraud service did not accept the case.
func (h *Handler) HandleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[OrderRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.svc.SubmitOrder(ctx, req.toOrder(h.classifier))
	if err != nil {
		h.logger.WarnContext(ctx, "case assembly failed",
			"request_id", requestID,
			"order_id", req.IncrementID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	status := http.StatusCreated
	if !result.Succeeded() {
		status = http.StatusBadGateway
	}
	httputil.WriteJSON(w, status, toSubmissionResponse(result))
}
