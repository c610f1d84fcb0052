package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"exampleapi/internal/model"
	"exampleapi/internal/repository"
)

var (
	// ErrNotFound is returned when no example has the requested id.
	ErrNotFound = errors.New("example not found")
	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// FieldError names one rejected DTO field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists every field that failed validation.
// errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Rule)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ExampleService defines the use cases for the examples resource.
type ExampleService interface {
	// Create validates the DTO and stores a new example.
	Create(ctx context.Context, dto model.CreateExampleDto) (*model.Example, error)

	// FindAll returns every example in store order, without paging.
	FindAll(ctx context.Context) ([]model.Example, error)

	// FindOne returns the example with the given id or ErrNotFound.
	FindOne(ctx context.Context, id int) (*model.Example, error)

	// Update applies the present DTO fields to an existing example.
	Update(ctx context.Context, id int, dto model.UpdateExampleDto) (*model.Example, error)

	// Remove deletes the example with the given id or returns ErrNotFound.
	Remove(ctx context.Context, id int) error
}

type exampleService struct {
	repo     repository.ExampleRepository
	validate *validator.Validate
	tracer   trace.Tracer
}

// NewExampleService constructs a new ExampleService.
func NewExampleService(repo repository.ExampleRepository) ExampleService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &exampleService{
		repo:     repo,
		validate: v,
		tracer:   otel.Tracer("exampleapi/internal/service"),
	}
}

func (s *exampleService) Create(ctx context.Context, dto model.CreateExampleDto) (*model.Example, error) {
	ctx, span := s.tracer.Start(ctx, "ExampleService.Create")
	defer span.End()

	if err := s.check(dto); err != nil {
		return nil, fail(span, err)
	}
	e, err := s.repo.Create(ctx, dto.ToExample())
	if err != nil {
		return nil, fail(span, fmt.Errorf("create example: %w", err))
	}
	span.SetAttributes(attribute.Int("example.id", e.ID))
	return e, nil
}

func (s *exampleService) FindAll(ctx context.Context) ([]model.Example, error) {
	ctx, span := s.tracer.Start(ctx, "ExampleService.FindAll")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(span, fmt.Errorf("list examples: %w", err))
	}
	span.SetAttributes(attribute.Int("example.count", len(items)))
	return items, nil
}

func (s *exampleService) FindOne(ctx context.Context, id int) (*model.Example, error) {
	ctx, span := s.tracer.Start(ctx, "ExampleService.FindOne",
		trace.WithAttributes(attribute.Int("example.id", id)))
	defer span.End()

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(span, mapRepoErr(id, err))
	}
	return e, nil
}

func (s *exampleService) Update(ctx context.Context, id int, dto model.UpdateExampleDto) (*model.Example, error) {
	ctx, span := s.tracer.Start(ctx, "ExampleService.Update",
		trace.WithAttributes(attribute.Int("example.id", id)))
	defer span.End()

	if dto.Empty() {
		return nil, fail(span, &ValidationError{Fields: []FieldError{{Field: "body", Rule: "min_fields"}}})
	}
	if err := s.check(dto); err != nil {
		return nil, fail(span, err)
	}

	updated, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		return nil, fail(span, mapRepoErr(id, err))
	}
	return updated, nil
}

func (s *exampleService) Remove(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "ExampleService.Remove",
		trace.WithAttributes(attribute.Int("example.id", id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fail(span, mapRepoErr(id, err))
	}
	return nil
}

// check runs struct validation and converts the result to *ValidationError.
func (s *exampleService) check(dto any) error {
	err := s.validate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return ve
}

func mapRepoErr(id int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("example %d: %w", id, ErrNotFound)
	}
	return err
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
