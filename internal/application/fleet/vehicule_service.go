package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/fleet"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// VehiculeService handles vehicle operations
type VehiculeService struct {
	vehicules fleet.VehiculeRepository
}

// NewVehiculeService creates a new VehiculeService
func NewVehiculeService(vehicules fleet.VehiculeRepository) *VehiculeService {
	return &VehiculeService{vehicules: vehicules}
}

// Create registers a vehicle. The matricule is unique across the fleet.
func (s *VehiculeService) Create(ctx context.Context, req CreateVehiculeRequest) (*VehiculeResponse, error) {
	vehicule, err := fleet.NewVehicule(req.Matricule, req.Type, req.Marque, req.Modele, req.Annee, req.DateAcquisition, req.PrixAcquisition)
	if err != nil {
		return nil, err
	}

	taken, err := s.vehicules.ExistsByMatricule(ctx, vehicule.Matricule)
	if err != nil {
		return nil, err
	}
	if taken {
		verr := shared.NewValidationError()
		verr.Add("matricule", shared.FieldDuplicate, "Ce matricule est déjà enregistré")
		return nil, verr
	}

	if err := s.vehicules.Save(ctx, vehicule); err != nil {
		return nil, err
	}
	response := ToVehiculeResponse(vehicule)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehiculeService) GetByID(ctx context.Context, id uuid.UUID) (*VehiculeResponse, error) {
	vehicule, err := s.vehicules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToVehiculeResponse(vehicule)
	return &response, nil
}

// List retrieves vehicles with filtering and pagination
func (s *VehiculeService) List(ctx context.Context, filter ListFilter) ([]VehiculeResponse, int64, error) {
	domainFilter := buildFilter(filter, "created_at", "desc")
	vehicules, err := s.vehicules.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vehicules.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToVehiculeResponses(vehicules), total, nil
}

// ListForExport retrieves the whole filtered set in insertion order
func (s *VehiculeService) ListForExport(ctx context.Context, filter ListFilter) ([]VehiculeResponse, error) {
	domainFilter := buildFilter(filter, "created_at", "desc").WithoutPagination().Chronological()
	vehicules, err := s.vehicules.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToVehiculeResponses(vehicules), nil
}

// ChangerStatut moves a vehicle to another operational status
func (s *VehiculeService) ChangerStatut(ctx context.Context, id uuid.UUID, req ChangerStatutRequest) (*VehiculeResponse, error) {
	vehicule, err := s.vehicules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vehicule.ChangerStatut(fleet.StatutVehicule(req.Statut)); err != nil {
		return nil, err
	}
	if err := s.vehicules.Save(ctx, vehicule); err != nil {
		return nil, err
	}
	response := ToVehiculeResponse(vehicule)
	return &response, nil
}

// Delete removes a vehicle
func (s *VehiculeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.vehicules.Delete(ctx, id)
}
