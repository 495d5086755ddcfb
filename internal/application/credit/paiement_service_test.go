package credit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/credit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCreditRepository is a mock implementation of CreditRepository
type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) FindByID(ctx context.Context, id uuid.UUID) (*credit.CreditClient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.CreditClient), args.Error(1)
}

func (m *MockCreditRepository) FindByNumero(ctx context.Context, numero string) (*credit.CreditClient, error) {
	args := m.Called(ctx, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.CreditClient), args.Error(1)
}

func (m *MockCreditRepository) FindAll(ctx context.Context, filter shared.Filter) ([]credit.CreditClient, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]credit.CreditClient), args.Error(1)
}

func (m *MockCreditRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreditRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	args := m.Called(ctx, numero)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreditRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCreditRepository) Save(ctx context.Context, cc *credit.CreditClient) error {
	args := m.Called(ctx, cc)
	return args.Error(0)
}

func (m *MockCreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaiementRepository is a mock implementation of PaiementRepository
type MockPaiementRepository struct {
	mock.Mock
}

func (m *MockPaiementRepository) FindByID(ctx context.Context, id uuid.UUID) (*credit.Paiement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.Paiement), args.Error(1)
}

func (m *MockPaiementRepository) FindByCredit(ctx context.Context, creditID uuid.UUID) ([]credit.Paiement, error) {
	args := m.Called(ctx, creditID)
	return args.Get(0).([]credit.Paiement), args.Error(1)
}

func (m *MockPaiementRepository) SumByCredit(ctx context.Context, creditID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, creditID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaiementRepository) Save(ctx context.Context, paiement *credit.Paiement) error {
	args := m.Called(ctx, paiement)
	return args.Error(0)
}

func (m *MockPaiementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// passthroughTx runs the callback without a real transaction
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newOpenCredit(t *testing.T) *credit.CreditClient {
	t.Helper()
	cc, err := credit.NewCreditClient("CRD0001", time.Now().AddDate(0, 0, -7),
		uuid.New(), uuid.New(), uuid.New(),
		decimal.NewFromInt(10), decimal.NewFromInt(1000))
	require.NoError(t, err)
	return cc
}

func TestPaiementService_Enregistrer(t *testing.T) {
	t.Run("recomputes the credit balance from the summed payments", func(t *testing.T) {
		paiements := new(MockPaiementRepository)
		credits := new(MockCreditRepository)
		svc := NewPaiementService(paiements, credits, passthroughTx{})

		cc := newOpenCredit(t)
		credits.On("FindByID", mock.Anything, cc.ID).Return(cc, nil)
		paiements.On("Save", mock.Anything, mock.AnythingOfType("*credit.Paiement")).Return(nil)
		paiements.On("SumByCredit", mock.Anything, cc.ID).Return(decimal.NewFromInt(5000), nil)
		credits.On("Save", mock.Anything, cc).Return(nil)

		resp, err := svc.Enregistrer(context.Background(), cc.ID, CreatePaiementRequest{
			Date:    time.Now().Add(-time.Hour),
			Montant: decimal.NewFromInt(2000),
			Mode:    "especes",
		})

		require.NoError(t, err)
		assert.Equal(t, "2000.00", resp.Montant.StringFixed(2))
		assert.Equal(t, "5000.00", cc.MontantPaye.StringFixed(2))
		assert.Equal(t, "5000.00", cc.SoldeRestant.StringFixed(2))
		assert.False(t, cc.EstSolde)
		credits.AssertCalled(t, "Save", mock.Anything, cc)
	})

	t.Run("marks the credit settled when payments cover the total", func(t *testing.T) {
		paiements := new(MockPaiementRepository)
		credits := new(MockCreditRepository)
		svc := NewPaiementService(paiements, credits, passthroughTx{})

		cc := newOpenCredit(t)
		cc.ApplyMontantPaye(decimal.NewFromInt(5000))
		credits.On("FindByID", mock.Anything, cc.ID).Return(cc, nil)
		paiements.On("Save", mock.Anything, mock.AnythingOfType("*credit.Paiement")).Return(nil)
		paiements.On("SumByCredit", mock.Anything, cc.ID).Return(decimal.NewFromInt(10000), nil)
		credits.On("Save", mock.Anything, cc).Return(nil)

		_, err := svc.Enregistrer(context.Background(), cc.ID, CreatePaiementRequest{
			Date:    time.Now().Add(-time.Hour),
			Montant: decimal.NewFromInt(5000),
			Mode:    "virement",
		})

		require.NoError(t, err)
		assert.Equal(t, "0.00", cc.SoldeRestant.StringFixed(2))
		assert.True(t, cc.EstSolde)
	})

	t.Run("returns not found for an unknown credit", func(t *testing.T) {
		paiements := new(MockPaiementRepository)
		credits := new(MockCreditRepository)
		svc := NewPaiementService(paiements, credits, passthroughTx{})

		id := uuid.New()
		credits.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Enregistrer(context.Background(), id, CreatePaiementRequest{
			Date:    time.Now().Add(-time.Hour),
			Montant: decimal.NewFromInt(1000),
			Mode:    "especes",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		paiements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("does not touch the credit when the payment is invalid", func(t *testing.T) {
		paiements := new(MockPaiementRepository)
		credits := new(MockCreditRepository)
		svc := NewPaiementService(paiements, credits, passthroughTx{})

		cc := newOpenCredit(t)
		credits.On("FindByID", mock.Anything, cc.ID).Return(cc, nil)

		_, err := svc.Enregistrer(context.Background(), cc.ID, CreatePaiementRequest{
			Date:    time.Now().Add(-time.Hour),
			Montant: decimal.Zero,
			Mode:    "especes",
		})

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		paiements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		credits.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates a failed credit save so the transaction rolls back", func(t *testing.T) {
		paiements := new(MockPaiementRepository)
		credits := new(MockCreditRepository)
		svc := NewPaiementService(paiements, credits, passthroughTx{})

		cc := newOpenCredit(t)
		saveErr := errors.New("connection reset")
		credits.On("FindByID", mock.Anything, cc.ID).Return(cc, nil)
		paiements.On("Save", mock.Anything, mock.AnythingOfType("*credit.Paiement")).Return(nil)
		paiements.On("SumByCredit", mock.Anything, cc.ID).Return(decimal.NewFromInt(3000), nil)
		credits.On("Save", mock.Anything, cc).Return(saveErr)

		_, err := svc.Enregistrer(context.Background(), cc.ID, CreatePaiementRequest{
			Date:    time.Now().Add(-time.Hour),
			Montant: decimal.NewFromInt(3000),
			Mode:    "cheque",
		})

		assert.ErrorIs(t, err, saveErr)
	})
}

func TestPaiementService_Supprimer(t *testing.T) {
	paiements := new(MockPaiementRepository)
	credits := new(MockCreditRepository)
	svc := NewPaiementService(paiements, credits, passthroughTx{})

	cc := newOpenCredit(t)
	cc.ApplyMontantPaye(decimal.NewFromInt(5000))
	p, err := credit.NewPaiement(cc.ID, time.Now().Add(-time.Hour), decimal.NewFromInt(2000), credit.ModeEspeces, "")
	require.NoError(t, err)

	paiements.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	credits.On("FindByID", mock.Anything, cc.ID).Return(cc, nil)
	paiements.On("Delete", mock.Anything, p.ID).Return(nil)
	paiements.On("SumByCredit", mock.Anything, cc.ID).Return(decimal.NewFromInt(3000), nil)
	credits.On("Save", mock.Anything, cc).Return(nil)

	require.NoError(t, svc.Supprimer(context.Background(), p.ID))
	assert.Equal(t, "3000.00", cc.MontantPaye.StringFixed(2))
	assert.Equal(t, "7000.00", cc.SoldeRestant.StringFixed(2))
}
