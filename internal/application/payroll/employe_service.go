package payroll

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/payroll"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// EmployeService handles employee operations. Employees are never
// deleted; they are deactivated instead.
type EmployeService struct {
	employes payroll.EmployeRepository
	tx       shared.TxManager
}

// NewEmployeService creates a new EmployeService
func NewEmployeService(employes payroll.EmployeRepository, tx shared.TxManager) *EmployeService {
	return &EmployeService{employes: employes, tx: tx}
}

// Create registers an employee. A missing numero is assigned from the
// EMP- sequence inside the inserting transaction.
func (s *EmployeService) Create(ctx context.Context, req CreateEmployeRequest) (*EmployeResponse, error) {
	verr := shared.NewValidationError()

	var employe *payroll.Employe
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixEmploye, verr, s.employes.ExistsByNumero, s.employes.ListNumeros)
		if err != nil {
			return err
		}

		employe, err = payroll.NewEmploye(numero, req.Nom, req.Prenoms, req.Matricule, req.Fonction, req.Telephone, req.Adresse, req.DateEmbauche, req.SalaireBase, req.PrimePerformance)
		if err != nil {
			if everr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(everr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.employes.Save(ctx, employe)
	})
	if err != nil {
		return nil, err
	}

	response := ToEmployeResponse(employe)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeResponse, error) {
	employe, err := s.employes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeResponse(employe)
	return &response, nil
}

// List retrieves employees with filtering and pagination
func (s *EmployeService) List(ctx context.Context, filter ListFilter) ([]EmployeResponse, int64, error) {
	domainFilter := buildFilter(filter, "created_at", "desc")
	employes, err := s.employes.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.employes.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToEmployeResponses(employes), total, nil
}

// ListForExport retrieves the whole filtered set in insertion order
func (s *EmployeService) ListForExport(ctx context.Context, filter ListFilter) ([]EmployeResponse, error) {
	domainFilter := buildFilter(filter, "created_at", "desc").WithoutPagination().Chronological()
	employes, err := s.employes.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToEmployeResponses(employes), nil
}

// Update replaces the mutable fields of an employee
func (s *EmployeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeRequest) (*EmployeResponse, error) {
	employe, err := s.employes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := employe.Update(req.Nom, req.Prenoms, req.Matricule, req.Fonction, req.Telephone, req.Adresse, req.DateEmbauche, req.SalaireBase, req.PrimePerformance); err != nil {
		return nil, err
	}
	if err := s.employes.Save(ctx, employe); err != nil {
		return nil, err
	}
	response := ToEmployeResponse(employe)
	return &response, nil
}

// Desactiver marks an employee inactive, keeping the record
func (s *EmployeService) Desactiver(ctx context.Context, id uuid.UUID) error {
	employe, err := s.employes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	employe.Desactiver()
	return s.employes.Save(ctx, employe)
}

// Reactiver marks an employee active again
func (s *EmployeService) Reactiver(ctx context.Context, id uuid.UUID) error {
	employe, err := s.employes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	employe.Reactiver()
	return s.employes.Save(ctx, employe)
}
