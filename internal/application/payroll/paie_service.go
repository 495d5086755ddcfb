package payroll

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/payroll"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// PaieService handles pay slip operations
type PaieService struct {
	paies    payroll.PaieRepository
	employes payroll.EmployeRepository
}

// NewPaieService creates a new PaieService
func NewPaieService(paies payroll.PaieRepository, employes payroll.EmployeRepository) *PaieService {
	return &PaieService{paies: paies, employes: employes}
}

// Create issues a pay slip. Each employee carries at most one slip per
// (annee, mois).
func (s *PaieService) Create(ctx context.Context, req CreatePaieRequest) (*PaieResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.employes.FindByID(ctx, req.EmployeID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("employe", shared.FieldReference, "Employé introuvable")
	}
	if req.EmployeID != uuid.Nil {
		exists, err := s.paies.ExistsByPeriode(ctx, req.EmployeID, req.Annee, req.Mois)
		if err != nil {
			return nil, err
		}
		if exists {
			verr.Add("mois", shared.FieldDuplicate, "Une paie existe déjà pour cet employé sur cette période")
		}
	}

	paie, err := payroll.NewPaieSalaire(req.EmployeID, req.Annee, req.Mois, req.SalaireBase, req.Prime, req.HeuresSup, req.TauxHeureSup, req.AutresPrimes, req.Avances, req.Retenues)
	if err != nil {
		if pverr, ok := err.(*shared.ValidationError); ok {
			verr.Merge(pverr)
			return nil, verr
		}
		return nil, err
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.paies.Save(ctx, paie); err != nil {
		return nil, err
	}
	response := ToPaieResponse(paie)
	return &response, nil
}

// GetByID retrieves a pay slip by ID
func (s *PaieService) GetByID(ctx context.Context, id uuid.UUID) (*PaieResponse, error) {
	paie, err := s.paies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPaieResponse(paie)
	return &response, nil
}

// List retrieves pay slips with filtering and pagination
func (s *PaieService) List(ctx context.Context, filter ListFilter) ([]PaieResponse, int64, error) {
	domainFilter := buildFilter(filter, "created_at", "desc")
	paies, err := s.paies.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paies.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToPaieResponses(paies), total, nil
}

// ListForExport retrieves the whole filtered set in insertion order,
// with employee names resolved for the spreadsheet column
func (s *PaieService) ListForExport(ctx context.Context, filter ListFilter) ([]PaieResponse, error) {
	domainFilter := buildFilter(filter, "created_at", "desc").WithoutPagination().Chronological()
	paies, err := s.paies.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	employes, err := shared.LabelIndex(ctx, s.employes.FindAll, func(e *payroll.Employe) (uuid.UUID, string) { return e.ID, e.NomComplet() })
	if err != nil {
		return nil, err
	}

	responses := ToPaieResponses(paies)
	for i := range responses {
		responses[i].Employe = employes[responses[i].EmployeID]
	}
	return responses, nil
}

// MarquerPayee flags a slip paid on the given date
func (s *PaieService) MarquerPayee(ctx context.Context, id uuid.UUID, req MarquerPayeeRequest) (*PaieResponse, error) {
	paie, err := s.paies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := paie.MarquerPayee(req.DatePaiement); err != nil {
		return nil, err
	}
	if err := s.paies.Save(ctx, paie); err != nil {
		return nil, err
	}
	response := ToPaieResponse(paie)
	return &response, nil
}

// Delete removes a pay slip
func (s *PaieService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.paies.Delete(ctx, id)
}
