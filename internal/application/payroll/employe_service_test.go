package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/payroll"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockEmployeRepository is a mock implementation of EmployeRepository
type MockEmployeRepository struct {
	mock.Mock
}

func (m *MockEmployeRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.Employe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.Employe), args.Error(1)
}

func (m *MockEmployeRepository) FindByNumero(ctx context.Context, numero string) (*payroll.Employe, error) {
	args := m.Called(ctx, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.Employe), args.Error(1)
}

func (m *MockEmployeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payroll.Employe, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.Employe), args.Error(1)
}

func (m *MockEmployeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	args := m.Called(ctx, numero)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEmployeRepository) Save(ctx context.Context, employe *payroll.Employe) error {
	args := m.Called(ctx, employe)
	return args.Error(0)
}

// MockPaieRepository is a mock implementation of PaieRepository
type MockPaieRepository struct {
	mock.Mock
}

func (m *MockPaieRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.PaieSalaire, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.PaieSalaire), args.Error(1)
}

func (m *MockPaieRepository) FindByPeriode(ctx context.Context, employeID uuid.UUID, annee, mois int) (*payroll.PaieSalaire, error) {
	args := m.Called(ctx, employeID, annee, mois)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.PaieSalaire), args.Error(1)
}

func (m *MockPaieRepository) ExistsByPeriode(ctx context.Context, employeID uuid.UUID, annee, mois int) (bool, error) {
	args := m.Called(ctx, employeID, annee, mois)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaieRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payroll.PaieSalaire, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.PaieSalaire), args.Error(1)
}

func (m *MockPaieRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaieRepository) Save(ctx context.Context, paie *payroll.PaieSalaire) error {
	args := m.Called(ctx, paie)
	return args.Error(0)
}

func (m *MockPaieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// passthroughTx runs the callback without a real transaction
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validEmployeRequest() CreateEmployeRequest {
	return CreateEmployeRequest{
		Nom:          "Diallo",
		Prenoms:      "Thierno Amadou",
		Fonction:     "chauffeur",
		DateEmbauche: time.Now().AddDate(-1, 0, 0),
		SalaireBase:  decimal.NewFromInt(1500000),
	}
}

func TestEmployeService_Create(t *testing.T) {
	t.Run("assigns the next number after a gap in the sequence", func(t *testing.T) {
		employes := new(MockEmployeRepository)
		svc := NewEmployeService(employes, passthroughTx{})

		employes.On("ListNumeros", mock.Anything, "EMP-").Return([]string{"EMP-0001", "EMP-0003"}, nil)
		employes.On("Save", mock.Anything, mock.AnythingOfType("*payroll.Employe")).Return(nil)

		resp, err := svc.Create(context.Background(), validEmployeRequest())

		require.NoError(t, err)
		assert.Equal(t, "EMP-0004", resp.Numero)
		assert.True(t, resp.Actif)
		assert.Equal(t, "DIALLO THIERNO AMADOU", resp.NomComplet)
	})

	t.Run("rejects a taken numero", func(t *testing.T) {
		employes := new(MockEmployeRepository)
		svc := NewEmployeService(employes, passthroughTx{})

		req := validEmployeRequest()
		req.Numero = "EMP-0001"
		employes.On("ExistsByNumero", mock.Anything, "EMP-0001").Return(true, nil)

		_, err := svc.Create(context.Background(), req)

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "numero", verr.Fields[0].Field)
		assert.Equal(t, shared.FieldDuplicate, verr.Fields[0].Code)
		employes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEmployeService_Desactiver(t *testing.T) {
	employes := new(MockEmployeRepository)
	svc := NewEmployeService(employes, passthroughTx{})

	e, err := payroll.NewEmploye("EMP-0001", "Diallo", "Thierno", "", "chauffeur", "", "",
		time.Now().AddDate(-1, 0, 0), decimal.NewFromInt(1500000), decimal.Zero)
	require.NoError(t, err)

	employes.On("FindByID", mock.Anything, e.ID).Return(e, nil)
	employes.On("Save", mock.Anything, e).Return(nil)

	require.NoError(t, svc.Desactiver(context.Background(), e.ID))
	assert.False(t, e.Actif)

	require.NoError(t, svc.Reactiver(context.Background(), e.ID))
	assert.True(t, e.Actif)
}

func TestPaieService_Create(t *testing.T) {
	t.Run("derives gross and net salaries", func(t *testing.T) {
		paies := new(MockPaieRepository)
		employes := new(MockEmployeRepository)
		svc := NewPaieService(paies, employes)

		employeID := uuid.New()
		employes.On("FindByID", mock.Anything, employeID).Return(&payroll.Employe{}, nil)
		paies.On("ExistsByPeriode", mock.Anything, employeID, 2026, 7).Return(false, nil)
		paies.On("Save", mock.Anything, mock.AnythingOfType("*payroll.PaieSalaire")).Return(nil)

		resp, err := svc.Create(context.Background(), CreatePaieRequest{
			EmployeID:    employeID,
			Annee:        2026,
			Mois:         7,
			SalaireBase:  decimal.NewFromInt(1500000),
			Prime:        decimal.NewFromInt(100000),
			HeuresSup:    decimal.NewFromInt(10),
			TauxHeureSup: decimal.NewFromInt(5000),
			Avances:      decimal.NewFromInt(200000),
		})

		require.NoError(t, err)
		assert.Equal(t, "1650000.00", resp.SalaireBrut.StringFixed(2))
		assert.Equal(t, "1450000.00", resp.SalaireNet.StringFixed(2))
		assert.False(t, resp.Payee)
	})

	t.Run("rejects a second slip for the same month", func(t *testing.T) {
		paies := new(MockPaieRepository)
		employes := new(MockEmployeRepository)
		svc := NewPaieService(paies, employes)

		employeID := uuid.New()
		employes.On("FindByID", mock.Anything, employeID).Return(&payroll.Employe{}, nil)
		paies.On("ExistsByPeriode", mock.Anything, employeID, 2026, 7).Return(true, nil)

		_, err := svc.Create(context.Background(), CreatePaieRequest{
			EmployeID:   employeID,
			Annee:       2026,
			Mois:        7,
			SalaireBase: decimal.NewFromInt(1500000),
		})

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, shared.FieldDuplicate, verr.Fields[0].Code)
		paies.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
