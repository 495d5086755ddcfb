package charge

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// PlanificationService handles recurring planned expense operations
type PlanificationService struct {
	planifications charge.PlanificationRepository
	categories     charge.CategorieRepository
}

// NewPlanificationService creates a new PlanificationService
func NewPlanificationService(planifications charge.PlanificationRepository, categories charge.CategorieRepository) *PlanificationService {
	return &PlanificationService{
		planifications: planifications,
		categories:     categories,
	}
}

// Create schedules a recurring expense
func (s *PlanificationService) Create(ctx context.Context, req CreatePlanificationRequest) (*PlanificationResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.categories.FindByID(ctx, req.CategorieID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("categorie", shared.FieldReference, "Catégorie introuvable")
	}

	planification, err := charge.NewPlanificationCharge(req.CategorieID, req.Libelle, req.MontantPrevu, charge.FrequenceCharge(req.Frequence), req.ProchaineEcheance)
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

	if err := s.planifications.Save(ctx, planification); err != nil {
		return nil, err
	}
	response := ToPlanificationResponse(planification)
	return &response, nil
}

// GetByID retrieves a planned charge by ID
func (s *PlanificationService) GetByID(ctx context.Context, id uuid.UUID) (*PlanificationResponse, error) {
	planification, err := s.planifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPlanificationResponse(planification)
	return &response, nil
}

// List retrieves planned charges with filtering and pagination
func (s *PlanificationService) List(ctx context.Context, filter ListFilter) ([]PlanificationResponse, int64, error) {
	domainFilter := buildFilter(filter, "prochaine_echeance", "asc")
	planifications, err := s.planifications.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.planifications.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToPlanificationResponses(planifications), total, nil
}

// ListActives retrieves every active planned charge
func (s *PlanificationService) ListActives(ctx context.Context) ([]PlanificationResponse, error) {
	planifications, err := s.planifications.FindActives(ctx)
	if err != nil {
		return nil, err
	}
	return ToPlanificationResponses(planifications), nil
}

// AvancerEcheance moves the next due date forward one period. A one-off
// plan is deactivated instead.
func (s *PlanificationService) AvancerEcheance(ctx context.Context, id uuid.UUID) (*PlanificationResponse, error) {
	planification, err := s.planifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	planification.AvancerEcheance()
	if err := s.planifications.Save(ctx, planification); err != nil {
		return nil, err
	}
	response := ToPlanificationResponse(planification)
	return &response, nil
}

// Delete removes a planned charge
func (s *PlanificationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.planifications.Delete(ctx, id)
}
