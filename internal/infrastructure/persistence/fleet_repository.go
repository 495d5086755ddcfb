package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/fleet"
)

// GormVehiculeRepository implements fleet.VehiculeRepository
type GormVehiculeRepository struct {
	gormRepository[fleet.Vehicule]
}

// NewGormVehiculeRepository creates a vehicle repository
func NewGormVehiculeRepository(db *Database) *GormVehiculeRepository {
	return &GormVehiculeRepository{newGormRepository[fleet.Vehicule](db, queryOptions{
		searchColumns: []string{"matricule", "marque", "modele"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "matricule": true, "marque": true,
			"statut": true, "annee": true,
		},
		defaultSort: "matricule",
	})}
}

// FindByMatricule finds a vehicle by its plate number
func (r *GormVehiculeRepository) FindByMatricule(ctx context.Context, matricule string) (*fleet.Vehicule, error) {
	return findOneBy(&r.gormRepository, ctx, "matricule", matricule)
}

// ExistsByMatricule reports whether a vehicle carries the plate number
func (r *GormVehiculeRepository) ExistsByMatricule(ctx context.Context, matricule string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "matricule", matricule)
}

// GormCarburantRepository implements fleet.CarburantRepository
type GormCarburantRepository struct {
	gormRepository[fleet.ConsommationCarburant]
}

// NewGormCarburantRepository creates a fuel record repository
func NewGormCarburantRepository(db *Database) *GormCarburantRepository {
	return &GormCarburantRepository{newGormRepository[fleet.ConsommationCarburant](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"vehicule_id": true, "montant_semaine": true,
		},
		defaultSort: "date",
	})}
}

// FindByNumero finds a fuel record by its reference number
func (r *GormCarburantRepository) FindByNumero(ctx context.Context, numero string) (*fleet.ConsommationCarburant, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether a fuel record carries the reference number
func (r *GormCarburantRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every fuel record numero sharing the prefix
func (r *GormCarburantRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}

// GormMaintenanceRepository implements fleet.MaintenanceRepository
type GormMaintenanceRepository struct {
	gormRepository[fleet.MaintenanceVehicule]
}

// NewGormMaintenanceRepository creates a maintenance repository
func NewGormMaintenanceRepository(db *Database) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{newGormRepository[fleet.MaintenanceVehicule](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"description", "garage"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "vehicule_id": true,
			"type": true, "cout": true,
		},
		defaultSort: "date",
	})}
}

// FindByVehicule returns the service history of one vehicle, newest first
func (r *GormMaintenanceRepository) FindByVehicule(ctx context.Context, vehiculeID uuid.UUID) ([]fleet.MaintenanceVehicule, error) {
	var maintenances []fleet.MaintenanceVehicule
	if err := r.db.Session(ctx).
		Where("vehicule_id = ?", vehiculeID).
		Order("date DESC").
		Find(&maintenances).Error; err != nil {
		return nil, err
	}
	return maintenances, nil
}
