package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/fleet"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// MaintenanceService handles vehicle service operations
type MaintenanceService struct {
	maintenances fleet.MaintenanceRepository
	vehicules    fleet.VehiculeRepository
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(maintenances fleet.MaintenanceRepository, vehicules fleet.VehiculeRepository) *MaintenanceService {
	return &MaintenanceService{
		maintenances: maintenances,
		vehicules:    vehicules,
	}
}

// Create records a service done on a vehicle
func (s *MaintenanceService) Create(ctx context.Context, req CreateMaintenanceRequest) (*MaintenanceResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.vehicules.FindByID(ctx, req.VehiculeID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("vehicule", shared.FieldReference, "Véhicule introuvable")
	}

	maintenance, err := fleet.NewMaintenanceVehicule(req.VehiculeID, req.Date, fleet.TypeMaintenance(req.Type), req.Description, req.Cout, req.Garage, req.ProchaineMaintenance)
	if err != nil {
		if mverr, ok := err.(*shared.ValidationError); ok {
			verr.Merge(mverr)
			return nil, verr
		}
		return nil, err
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.maintenances.Save(ctx, maintenance); err != nil {
		return nil, err
	}
	response := ToMaintenanceResponse(maintenance)
	return &response, nil
}

// GetByID retrieves a service by ID
func (s *MaintenanceService) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceResponse, error) {
	maintenance, err := s.maintenances.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMaintenanceResponse(maintenance)
	return &response, nil
}

// ListByVehicule retrieves the full service history of one vehicle
func (s *MaintenanceService) ListByVehicule(ctx context.Context, vehiculeID uuid.UUID) ([]MaintenanceResponse, error) {
	if _, err := s.vehicules.FindByID(ctx, vehiculeID); err != nil {
		return nil, err
	}
	maintenances, err := s.maintenances.FindByVehicule(ctx, vehiculeID)
	if err != nil {
		return nil, err
	}
	return ToMaintenanceResponses(maintenances), nil
}

// List retrieves services with filtering and pagination, most recent first
func (s *MaintenanceService) List(ctx context.Context, filter ListFilter) ([]MaintenanceResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	maintenances, err := s.maintenances.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.maintenances.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToMaintenanceResponses(maintenances), total, nil
}

// Delete removes a service record
func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.maintenances.Delete(ctx, id)
}
