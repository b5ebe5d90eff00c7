package resource

import (
	"context"
	"fmt"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/validator"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Service is the query surface every resource exposes: list, getById,
// create, update and delete with the same params and error shape.
type Service[T any] struct {
	schema query.Schema[T]
	repo   Repository[T]
	logger log.Logger

	opCounter metric.Int64Counter
}

func NewService[T any](schema query.Schema[T], repo Repository[T], logger log.Logger) *Service[T] {
	opCounter, err := otel.Meter("github.com/goto/backoffice/core/resource").
		Int64Counter("backoffice.resource.operation")
	if err != nil {
		otel.Handle(err)
	}

	return &Service[T]{
		schema:    schema,
		repo:      repo,
		logger:    logger,
		opCounter: opCounter,
	}
}

func (s *Service[T]) Schema() query.Schema[T] {
	return s.schema
}

func (s *Service[T]) List(ctx context.Context, p query.Params) (pg query.Page[T], err error) {
	defer func() {
		s.instrumentOp(ctx, "List", err)
	}()

	p.AssignDefault()
	if err := p.Validate(); err != nil {
		return query.Page[T]{}, err
	}
	if err := s.schema.Validate(p.Criteria); err != nil {
		return query.Page[T]{}, err
	}
	if unknown := s.schema.Unknown(p.Criteria); len(unknown) > 0 {
		s.logger.Warn("ignoring unknown criteria", "resource", s.schema.Resource, "criteria", unknown)
	}

	return s.repo.List(ctx, p)
}

func (s *Service[T]) GetByID(ctx context.Context, id string) (rec T, err error) {
	defer func() {
		s.instrumentOp(ctx, "GetByID", err)
	}()

	if id == "" {
		return rec, apierror.Invalid(fmt.Sprintf("%s id is required", s.schema.Resource), nil)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service[T]) Create(ctx context.Context, rec T) (created T, err error) {
	defer func() {
		s.instrumentOp(ctx, "Create", err)
	}()

	if err := validator.ValidateStruct(rec); err != nil {
		return created, err
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service[T]) Update(ctx context.Context, id string, patch Patch) (updated T, err error) {
	defer func() {
		s.instrumentOp(ctx, "Update", err)
	}()

	if id == "" {
		return updated, apierror.Invalid(fmt.Sprintf("%s id is required", s.schema.Resource), nil)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service[T]) Delete(ctx context.Context, id string) (err error) {
	defer func() {
		s.instrumentOp(ctx, "Delete", err)
	}()

	if id == "" {
		return apierror.Invalid(fmt.Sprintf("%s id is required", s.schema.Resource), nil)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service[T]) instrumentOp(ctx context.Context, op string, err error) {
	if err != nil {
		s.logger.Debug("resource operation failed", "resource", s.schema.Resource, "op", op, "err", err)
	}
	if s.opCounter == nil {
		return
	}

	s.opCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("backoffice.resource", s.schema.Resource),
		attribute.String("backoffice.resource_operation", op),
		attribute.Bool("operation.success", err == nil),
	))
}
