// Package service orchestrates local case records, case assembly and
// submission to the fraud service.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"casebridge/internal/fraudcase/builder"
	"casebridge/internal/fraudcase/client"
	"casebridge/internal/fraudcase/metrics"
	"casebridge/internal/fraudcase/models"
	"casebridge/internal/order"
	"casebridge/internal/platform/tracer"
	"casebridge/internal/sentinel"
	dErrors "casebridge/pkg/domain-errors"
)

// Store persists local case records.
// Error Contract:
// - FindByID wraps sentinel.ErrNotFound when no record exists
// - Save upserts by record ID
type Store interface {
	Save(ctx context.Context, record *models.CaseRecord) error
	FindByID(ctx context.Context, orderID string) (*models.CaseRecord, error)
}

// Submitter sends one case to the fraud service and returns its identifier.
type Submitter interface {
	CreateCase(ctx context.Context, c *models.Case) (string, error)
}

// OutcomePublisher announces submission results to other systems.
type OutcomePublisher interface {
	PublishSubmission(ctx context.Context, result models.SubmissionResult) error
}

// Outcome log messages. Exactly one is written per SubmitCase call.
const (
	msgCaseSent   = "Case sent. Id is %s"
	msgCaseFailed = "Case failed to send."
)

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithPublisher enables submission outcome events.
func WithPublisher(p OutcomePublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	store     Store
	submitter SubmitterState
	builder   *builder.Builder
	publisher OutcomePublisher
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(store Store, submitter SubmitterState, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	svc := &Service{
		store:     store,
		submitter: submitter,
		logger:    logger,
		builder:   builder.New(logger),
		tracer:    tracer.NewNoop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateCaseRecord writes the placeholder tracking record for o. Calling it
// again for the same order overwrites the record with the same placeholders.
func (s *Service) CreateCaseRecord(ctx context.Context, o *order.Order) (*models.CaseRecord, error) {
	if o == nil || o.IncrementID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "order increment id is required")
	}

	record := models.NewCaseRecord(o.IncrementID, s.now())
	if err := s.store.Save(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save case record")
	}
	if s.metrics != nil {
		s.metrics.IncRecordsCreated()
	}
	s.logger.InfoContext(ctx, "case record created", "order_id", record.ID)
	return record, nil
}

func (s *Service) GetCaseRecord(ctx context.Context, orderID string) (*models.CaseRecord, error) {
	if orderID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "order increment id is required")
	}
	record, err := s.store.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "case record not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case record")
	}
	return record, nil
}

// BuildCase assembles the fraud case payload for o.
func (s *Service) BuildCase(ctx context.Context, o *order.Order) (*models.Case, error) {
	c, err := s.builder.Assemble(ctx, o)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncAssemblyFailure()
		}
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncCaseAssembled(c.Card.IsPresent(), c.Recipient.IsPresent())
	}
	return c, nil
}

// SubmitOrder assembles and submits the case for o. Assembly errors are
// returned; the submission outcome is reported only through the result.
func (s *Service) SubmitOrder(ctx context.Context, o *order.Order) (models.SubmissionResult, error) {
	c, err := s.BuildCase(ctx, o)
	if err != nil {
		return models.SubmissionResult{}, err
	}
	return s.SubmitCase(ctx, o.IncrementID, c), nil
}

// SubmitCase makes a single create-case call. It never returns an error and
// writes exactly one outcome log entry.
func (s *Service) SubmitCase(ctx context.Context, orderID string, c *models.Case) models.SubmissionResult {
	ctx, span := s.tracer.Start(ctx, tracer.SpanCaseSubmit, tracer.String(tracer.AttrOrderID, orderID))

	result := s.submit(ctx, orderID, c)

	if result.Succeeded() {
		s.logger.InfoContext(ctx, fmt.Sprintf(msgCaseSent, result.CaseID),
			"order_id", orderID,
			"case_id", result.CaseID,
		)
		span.SetAttributes(tracer.String(tracer.AttrCaseID, result.CaseID))
		span.End(nil)
	} else {
		s.logger.ErrorContext(ctx, msgCaseFailed,
			"order_id", orderID,
			"category", result.Category,
			"reason", result.Reason,
		)
		span.SetAttributes(tracer.String(tracer.AttrErrorCategory, result.Category))
		span.End(errors.New(result.Reason))
	}

	s.publish(ctx, result)
	return result
}

func (s *Service) submit(ctx context.Context, orderID string, c *models.Case) models.SubmissionResult {
	sub, err := s.submitter.Get()
	if err != nil {
		return models.Failed(orderID, string(client.ErrorUnavailable), err.Error(), s.now())
	}
	if c == nil {
		return models.Failed(orderID, string(client.ErrorBadData), "case is required", s.now())
	}

	start := time.Now()
	caseID, err := callSubmitter(ctx, sub, c)
	elapsed := time.Since(start)

	var result models.SubmissionResult
	switch {
	case err != nil:
		result = models.Failed(orderID, string(client.CategoryOf(err)), err.Error(), s.now())
	case caseID == "":
		result = models.Failed(orderID, string(client.ErrorContractMismatch), "empty case id", s.now())
	default:
		result = models.Sent(orderID, caseID, s.now())
	}

	if s.metrics != nil {
		s.metrics.ObserveSubmission(string(result.Status), result.Category, elapsed)
	}
	return result
}

// callSubmitter converts a submitter panic into an internal error.
func callSubmitter(ctx context.Context, sub Submitter, c *models.Case) (caseID string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			caseID = ""
			err = &client.Error{Category: client.ErrorInternal, Message: fmt.Sprintf("submitter panic: %v", rec)}
		}
	}()
	return sub.CreateCase(ctx, c)
}

func (s *Service) publish(ctx context.Context, result models.SubmissionResult) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishSubmission(ctx, result)
	if s.metrics != nil {
		s.metrics.IncEventPublished(err == nil)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "submission event not published",
			"order_id", result.OrderID,
			"error", err,
		)
	}
}
