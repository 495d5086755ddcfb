package stock

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/stock"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockInventaireRepository is a mock implementation of InventaireRepository
type MockInventaireRepository struct {
	mock.Mock
}

func (m *MockInventaireRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Inventaire, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Inventaire), args.Error(1)
}

func (m *MockInventaireRepository) FindByNumero(ctx context.Context, numero string) (*stock.Inventaire, error) {
	args := m.Called(ctx, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Inventaire), args.Error(1)
}

func (m *MockInventaireRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Inventaire, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]stock.Inventaire), args.Error(1)
}

func (m *MockInventaireRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventaireRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	args := m.Called(ctx, numero)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventaireRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInventaireRepository) Save(ctx context.Context, inventaire *stock.Inventaire) error {
	args := m.Called(ctx, inventaire)
	return args.Error(0)
}

func (m *MockInventaireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMagasinRepository is a mock implementation of MagasinRepository
type MockMagasinRepository struct {
	mock.Mock
}

func (m *MockMagasinRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Magasin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Magasin), args.Error(1)
}

func (m *MockMagasinRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Magasin, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Magasin), args.Error(1)
}

func (m *MockMagasinRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMagasinRepository) Save(ctx context.Context, magasin *sales.Magasin) error {
	args := m.Called(ctx, magasin)
	return args.Error(0)
}

func (m *MockMagasinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProduitRepository is a mock implementation of ProduitRepository
type MockProduitRepository struct {
	mock.Mock
}

func (m *MockProduitRepository) FindByID(ctx context.Context, id uuid.UUID) (*supply.Produit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supply.Produit), args.Error(1)
}

func (m *MockProduitRepository) FindAll(ctx context.Context, filter shared.Filter) ([]supply.Produit, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]supply.Produit), args.Error(1)
}

func (m *MockProduitRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProduitRepository) Save(ctx context.Context, produit *supply.Produit) error {
	args := m.Called(ctx, produit)
	return args.Error(0)
}

func (m *MockProduitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// passthroughTx runs the callback without a real transaction
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newInventaireFixtures(t *testing.T) (*InventaireService, *MockInventaireRepository, *MockMagasinRepository, *MockProduitRepository) {
	t.Helper()
	inventaires := new(MockInventaireRepository)
	magasins := new(MockMagasinRepository)
	produits := new(MockProduitRepository)
	svc := NewInventaireService(inventaires, magasins, produits, passthroughTx{})
	return svc, inventaires, magasins, produits
}

func newOpenInventaire(t *testing.T) *stock.Inventaire {
	t.Helper()
	inv, err := stock.NewInventaire("INV0001", time.Now().AddDate(0, 0, -1), uuid.New(), "Mariam Camara")
	require.NoError(t, err)
	return inv
}

func TestInventaireService_Create(t *testing.T) {
	svc, inventaires, magasins, _ := newInventaireFixtures(t)
	magasinID := uuid.New()

	magasins.On("FindByID", mock.Anything, magasinID).Return(&sales.Magasin{}, nil)
	inventaires.On("ListNumeros", mock.Anything, "INV").Return([]string{"INV0001", "INV0002"}, nil)
	inventaires.On("Save", mock.Anything, mock.AnythingOfType("*stock.Inventaire")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateInventaireRequest{
		Date:        time.Now().Add(-time.Hour),
		MagasinID:   magasinID,
		Responsable: "Mariam Camara",
	})

	require.NoError(t, err)
	assert.Equal(t, "INV0003", resp.Numero)
	assert.Equal(t, "en_cours", resp.Statut)
	assert.Empty(t, resp.Lignes)
}

func TestInventaireService_AjouterLigne(t *testing.T) {
	t.Run("derives the gap and keeps the line", func(t *testing.T) {
		svc, inventaires, _, produits := newInventaireFixtures(t)
		inv := newOpenInventaire(t)
		produitID := uuid.New()

		produits.On("FindByID", mock.Anything, produitID).Return(&supply.Produit{}, nil)
		inventaires.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		inventaires.On("Save", mock.Anything, inv).Return(nil)

		resp, err := svc.AjouterLigne(context.Background(), inv.ID, AjouterLigneRequest{
			ProduitID:      produitID,
			StockTheorique: decimal.NewFromInt(40),
			StockPhysique:  decimal.NewFromInt(37),
		})

		require.NoError(t, err)
		require.Len(t, resp.Lignes, 1)
		assert.Equal(t, "-3.00", resp.Lignes[0].Ecart.StringFixed(2))
	})

	t.Run("rejects counting the same product twice", func(t *testing.T) {
		svc, inventaires, _, produits := newInventaireFixtures(t)
		inv := newOpenInventaire(t)
		produitID := uuid.New()
		_, err := inv.AjouterLigne(produitID, decimal.NewFromInt(10), decimal.NewFromInt(10))
		require.NoError(t, err)

		produits.On("FindByID", mock.Anything, produitID).Return(&supply.Produit{}, nil)
		inventaires.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)

		_, err = svc.AjouterLigne(context.Background(), inv.ID, AjouterLigneRequest{
			ProduitID:      produitID,
			StockTheorique: decimal.NewFromInt(10),
			StockPhysique:  decimal.NewFromInt(9),
		})

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, shared.FieldDuplicate, verr.Fields[0].Code)
		inventaires.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestInventaireService_Lifecycle(t *testing.T) {
	svc, inventaires, _, _ := newInventaireFixtures(t)
	inv := newOpenInventaire(t)

	inventaires.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	inventaires.On("Save", mock.Anything, inv).Return(nil)

	// valider before terminer is refused
	_, err := svc.Valider(context.Background(), inv.ID)
	require.Error(t, err)

	resp, err := svc.Terminer(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "termine", resp.Statut)

	resp, err = svc.Valider(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "valide", resp.Statut)

	// terminer is not re-entrant
	_, err = svc.Terminer(context.Background(), inv.ID)
	require.Error(t, err)
}
