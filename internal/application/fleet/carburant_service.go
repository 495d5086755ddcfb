package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/fleet"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CarburantService handles fuel consumption operations
type CarburantService struct {
	consommations fleet.CarburantRepository
	vehicules     fleet.VehiculeRepository
	tx            shared.TxManager
}

// NewCarburantService creates a new CarburantService
func NewCarburantService(consommations fleet.CarburantRepository, vehicules fleet.VehiculeRepository, tx shared.TxManager) *CarburantService {
	return &CarburantService{
		consommations: consommations,
		vehicules:     vehicules,
		tx:            tx,
	}
}

// Create records a week of fuel use for a vehicle. A missing numero is
// assigned from the CARB sequence inside the inserting transaction.
func (s *CarburantService) Create(ctx context.Context, req CreateCarburantRequest) (*CarburantResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.vehicules.FindByID(ctx, req.VehiculeID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("vehicule", shared.FieldReference, "Véhicule introuvable")
	}

	var consommation *fleet.ConsommationCarburant
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixCarburant, verr, s.consommations.ExistsByNumero, s.consommations.ListNumeros)
		if err != nil {
			return err
		}

		consommation, err = fleet.NewConsommationCarburant(numero, req.Date, req.VehiculeID, req.QuantiteSemaine, req.PrixParLitre, req.Observations)
		if err != nil {
			if cverr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(cverr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.consommations.Save(ctx, consommation)
	})
	if err != nil {
		return nil, err
	}

	response := ToCarburantResponse(consommation)
	return &response, nil
}

// GetByID retrieves a fuel record by ID
func (s *CarburantService) GetByID(ctx context.Context, id uuid.UUID) (*CarburantResponse, error) {
	consommation, err := s.consommations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCarburantResponse(consommation)
	return &response, nil
}

// List retrieves fuel records with filtering and pagination, most recent first
func (s *CarburantService) List(ctx context.Context, filter ListFilter) ([]CarburantResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	consommations, err := s.consommations.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.consommations.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCarburantResponses(consommations), total, nil
}

// ListForExport retrieves the whole filtered set in chronological order,
// with vehicle plate numbers resolved for the spreadsheet column
func (s *CarburantService) ListForExport(ctx context.Context, filter ListFilter) ([]CarburantResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	consommations, err := s.consommations.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	vehicules, err := shared.LabelIndex(ctx, s.vehicules.FindAll, func(v *fleet.Vehicule) (uuid.UUID, string) { return v.ID, v.Matricule })
	if err != nil {
		return nil, err
	}

	responses := ToCarburantResponses(consommations)
	for i := range responses {
		responses[i].Vehicule = vehicules[responses[i].VehiculeID]
	}
	return responses, nil
}

// Update corrects a fuel record and re-derives its weekly and monthly
// amounts
func (s *CarburantService) Update(ctx context.Context, id uuid.UUID, req UpdateCarburantRequest) (*CarburantResponse, error) {
	consommation, err := s.consommations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := consommation.UpdateConsommation(req.QuantiteSemaine, req.PrixParLitre); err != nil {
		return nil, err
	}
	if err := s.consommations.Save(ctx, consommation); err != nil {
		return nil, err
	}
	response := ToCarburantResponse(consommation)
	return &response, nil
}

// Delete removes a fuel record
func (s *CarburantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.consommations.Delete(ctx, id)
}
