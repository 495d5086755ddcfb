package fleet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/fleet"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// MockVehiculeRepository is a mock implementation of VehiculeRepository
type MockVehiculeRepository struct {
	mock.Mock
}

func (m *MockVehiculeRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicule), args.Error(1)
}

func (m *MockVehiculeRepository) FindByMatricule(ctx context.Context, matricule string) (*fleet.Vehicule, error) {
	args := m.Called(ctx, matricule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicule), args.Error(1)
}

func (m *MockVehiculeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Vehicule, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]fleet.Vehicule), args.Error(1)
}

func (m *MockVehiculeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehiculeRepository) ExistsByMatricule(ctx context.Context, matricule string) (bool, error) {
	args := m.Called(ctx, matricule)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehiculeRepository) Save(ctx context.Context, vehicule *fleet.Vehicule) error {
	args := m.Called(ctx, vehicule)
	return args.Error(0)
}

func (m *MockVehiculeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validVehiculeRequest() CreateVehiculeRequest {
	return CreateVehiculeRequest{
		Matricule:       "rc-1234-ab",
		Type:            "camion",
		Marque:          "mercedes",
		Modele:          "Actros",
		Annee:           2020,
		DateAcquisition: time.Now().AddDate(-2, 0, 0),
		PrixAcquisition: decimal.NewFromInt(45000000),
	}
}

func TestVehiculeService_Create(t *testing.T) {
	t.Run("registers an active vehicle with a normalized matricule", func(t *testing.T) {
		vehicules := new(MockVehiculeRepository)
		svc := NewVehiculeService(vehicules)

		vehicules.On("ExistsByMatricule", mock.Anything, "RC-1234-AB").Return(false, nil)
		vehicules.On("Save", mock.Anything, mock.AnythingOfType("*fleet.Vehicule")).Return(nil)

		resp, err := svc.Create(context.Background(), validVehiculeRequest())

		require.NoError(t, err)
		assert.Equal(t, "RC-1234-AB", resp.Matricule)
		assert.Equal(t, "actif", resp.Statut)
	})

	t.Run("rejects a taken matricule", func(t *testing.T) {
		vehicules := new(MockVehiculeRepository)
		svc := NewVehiculeService(vehicules)

		vehicules.On("ExistsByMatricule", mock.Anything, "RC-1234-AB").Return(true, nil)

		_, err := svc.Create(context.Background(), validVehiculeRequest())

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "matricule", verr.Fields[0].Field)
		assert.Equal(t, shared.FieldDuplicate, verr.Fields[0].Code)
		vehicules.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestVehiculeService_ChangerStatut(t *testing.T) {
	vehicules := new(MockVehiculeRepository)
	svc := NewVehiculeService(vehicules)

	v, err := fleet.NewVehicule("RC-1234-AB", "camion", "Mercedes", "Actros", 2020,
		time.Now().AddDate(-2, 0, 0), decimal.NewFromInt(45000000))
	require.NoError(t, err)

	vehicules.On("FindByID", mock.Anything, v.ID).Return(v, nil)
	vehicules.On("Save", mock.Anything, v).Return(nil)

	resp, err := svc.ChangerStatut(context.Background(), v.ID, ChangerStatutRequest{Statut: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.Statut)

	_, err = svc.ChangerStatut(context.Background(), v.ID, ChangerStatutRequest{Statut: "en_panne"})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "statut", verr.Fields[0].Field)
}
