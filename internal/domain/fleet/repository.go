package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// VehiculeRepository defines persistence operations for vehicles
type VehiculeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicule, error)
	FindByMatricule(ctx context.Context, matricule string) (*Vehicule, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Vehicule, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByMatricule(ctx context.Context, matricule string) (bool, error)
	Save(ctx context.Context, vehicule *Vehicule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CarburantRepository defines persistence operations for fuel records
type CarburantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConsommationCarburant, error)
	FindByNumero(ctx context.Context, numero string) (*ConsommationCarburant, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ConsommationCarburant, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, consommation *ConsommationCarburant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenanceRepository defines persistence operations for services
type MaintenanceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MaintenanceVehicule, error)
	FindByVehicule(ctx context.Context, vehiculeID uuid.UUID) ([]MaintenanceVehicule, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]MaintenanceVehicule, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, maintenance *MaintenanceVehicule) error
	Delete(ctx context.Context, id uuid.UUID) error
}
