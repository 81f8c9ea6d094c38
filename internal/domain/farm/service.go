package farm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateSupplier(ctx context.Context, userID string, input SupplierInput) (*Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}

	supplier := Supplier{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          name,
		ContactPerson: optional(input.ContactPerson),
		Phone:         optional(input.Phone),
		Address:       optional(input.Address),
		CreditTerms:   optional(input.CreditTerms),
		Notes:         optional(input.Notes),
		Active:        true,
	}

	if err := s.repo.CreateSupplier(ctx, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *Service) ListSuppliers(ctx context.Context, userID string) ([]Supplier, error) {
	return s.repo.ListSuppliers(ctx, userID)
}

func (s *Service) CreateField(ctx context.Context, userID string, input FieldInput) (*Field, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("field name is required")
	}
	if input.AreaAcres != nil && *input.AreaAcres < 0 {
		return nil, fmt.Errorf("area must not be negative")
	}

	field := Field{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		AreaAcres: input.AreaAcres,
		Location:  optional(input.Location),
		SoilType:  optional(input.SoilType),
		CropCycle: optional(input.CropCycle),
		Season:    optional(input.Season),
		Notes:     optional(input.Notes),
		Active:    true,
	}

	if err := s.repo.CreateField(ctx, &field); err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *Service) ListFields(ctx context.Context, userID string) ([]Field, error) {
	return s.repo.ListFields(ctx, userID)
}

// TotalAcres sums area over a user's active fields; fields without a
// recorded area contribute nothing.
func (s *Service) TotalAcres(ctx context.Context, userID string) (float64, error) {
	fields, err := s.repo.ListActiveFields(ctx, userID)
	if err != nil {
		return 0, err
	}
	return SumAcres(fields), nil
}

func SumAcres(fields []Field) float64 {
	total := 0.0
	for _, field := range fields {
		if field.AreaAcres != nil {
			total += *field.AreaAcres
		}
	}
	return total
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
