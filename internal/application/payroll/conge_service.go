package payroll

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/payroll"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CongeService handles leave operations
type CongeService struct {
	conges   payroll.CongeRepository
	employes payroll.EmployeRepository
}

// NewCongeService creates a new CongeService
func NewCongeService(conges payroll.CongeRepository, employes payroll.EmployeRepository) *CongeService {
	return &CongeService{conges: conges, employes: employes}
}

// Create records a leave request, pending approval
func (s *CongeService) Create(ctx context.Context, req CreateCongeRequest) (*CongeResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.employes.FindByID(ctx, req.EmployeID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("employe", shared.FieldReference, "Employé introuvable")
	}

	conge, err := payroll.NewConge(req.EmployeID, payroll.TypeConge(req.Type), req.DateDebut, req.DateFin, req.Motif)
	if err != nil {
		if cverr, ok := err.(*shared.ValidationError); ok {
			verr.Merge(cverr)
			return nil, verr
		}
		return nil, err
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.conges.Save(ctx, conge); err != nil {
		return nil, err
	}
	response := ToCongeResponse(conge)
	return &response, nil
}

// GetByID retrieves a leave period by ID
func (s *CongeService) GetByID(ctx context.Context, id uuid.UUID) (*CongeResponse, error) {
	conge, err := s.conges.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCongeResponse(conge)
	return &response, nil
}

// ListByEmploye retrieves every leave period of one employee
func (s *CongeService) ListByEmploye(ctx context.Context, employeID uuid.UUID) ([]CongeResponse, error) {
	if _, err := s.employes.FindByID(ctx, employeID); err != nil {
		return nil, err
	}
	conges, err := s.conges.FindByEmploye(ctx, employeID)
	if err != nil {
		return nil, err
	}
	return ToCongeResponses(conges), nil
}

// List retrieves leave periods with filtering and pagination
func (s *CongeService) List(ctx context.Context, filter ListFilter) ([]CongeResponse, int64, error) {
	domainFilter := buildFilter(filter, "created_at", "desc")
	conges, err := s.conges.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.conges.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCongeResponses(conges), total, nil
}

// Approuver marks a leave request approved
func (s *CongeService) Approuver(ctx context.Context, id uuid.UUID) (*CongeResponse, error) {
	conge, err := s.conges.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	conge.Approuver()
	if err := s.conges.Save(ctx, conge); err != nil {
		return nil, err
	}
	response := ToCongeResponse(conge)
	return &response, nil
}

// Delete removes a leave period
func (s *CongeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.conges.Delete(ctx, id)
}
