package sales

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

// MockVenteRepository is a mock implementation of VenteRepository
type MockVenteRepository struct {
	mock.Mock
}

func (m *MockVenteRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Vente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Vente), args.Error(1)
}

func (m *MockVenteRepository) FindByNumero(ctx context.Context, numero string) (*sales.Vente, error) {
	args := m.Called(ctx, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Vente), args.Error(1)
}

func (m *MockVenteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Vente, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Vente), args.Error(1)
}

func (m *MockVenteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVenteRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	args := m.Called(ctx, numero)
	return args.Bool(0), args.Error(1)
}

func (m *MockVenteRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVenteRepository) Save(ctx context.Context, vente *sales.Vente) error {
	args := m.Called(ctx, vente)
	return args.Error(0)
}

func (m *MockVenteRepository) Delete(ctx context.Context, id uuid.UUID) error {
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

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Client), args.Error(1)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *sales.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProduitRepository is a mock implementation of supply.ProduitRepository
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

// MockStockActuelRepository is a mock implementation of StockActuelRepository
type MockStockActuelRepository struct {
	mock.Mock
}

func (m *MockStockActuelRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.StockActuel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockActuel), args.Error(1)
}

func (m *MockStockActuelRepository) FindByMagasinProduit(ctx context.Context, magasinID, produitID uuid.UUID) (*stock.StockActuel, error) {
	args := m.Called(ctx, magasinID, produitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockActuel), args.Error(1)
}

func (m *MockStockActuelRepository) ExistsByMagasinProduit(ctx context.Context, magasinID, produitID uuid.UUID) (bool, error) {
	args := m.Called(ctx, magasinID, produitID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockActuelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.StockActuel, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]stock.StockActuel), args.Error(1)
}

func (m *MockStockActuelRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockActuelRepository) Save(ctx context.Context, stockActuel *stock.StockActuel) error {
	args := m.Called(ctx, stockActuel)
	return args.Error(0)
}

func (m *MockStockActuelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// passthroughTx runs the callback without a real transaction
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newVenteFixtures(t *testing.T) (*VenteService, *MockVenteRepository, *MockMagasinRepository, *MockClientRepository, *MockProduitRepository, *MockStockActuelRepository) {
	t.Helper()
	ventes := new(MockVenteRepository)
	magasins := new(MockMagasinRepository)
	clients := new(MockClientRepository)
	produits := new(MockProduitRepository)
	stocks := new(MockStockActuelRepository)
	svc := NewVenteService(ventes, magasins, clients, produits, stocks, passthroughTx{})
	return svc, ventes, magasins, clients, produits, stocks
}

func validVenteRequest() CreateVenteRequest {
	return CreateVenteRequest{
		Date:           time.Now().Add(-time.Hour),
		MagasinID:      uuid.New(),
		ClientID:       uuid.New(),
		ProduitID:      uuid.New(),
		QuantiteVendue: decimal.NewFromInt(3),
		TypeVente:      "cash",
		PrixUnitaire:   decimal.NewFromInt(1500),
	}
}

func TestVenteService_Create(t *testing.T) {
	t.Run("records a stocked sale and derives the total", func(t *testing.T) {
		svc, ventes, magasins, clients, _, stocks := newVenteFixtures(t)
		req := validVenteRequest()

		magasins.On("FindByID", mock.Anything, req.MagasinID).Return(&sales.Magasin{}, nil)
		clients.On("FindByID", mock.Anything, req.ClientID).Return(&sales.Client{}, nil)
		stocks.On("ExistsByMagasinProduit", mock.Anything, req.MagasinID, req.ProduitID).Return(true, nil)
		ventes.On("ListNumeros", mock.Anything, "VTE").Return([]string{"VTE0007"}, nil)
		ventes.On("Save", mock.Anything, mock.AnythingOfType("*sales.Vente")).Return(nil)

		resp, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "VTE0008", resp.Numero)
		assert.True(t, resp.TotalVente.Equal(decimal.NewFromInt(4500)))
	})

	t.Run("rejects a pair the store does not carry, on the produit field", func(t *testing.T) {
		svc, ventes, magasins, clients, _, stocks := newVenteFixtures(t)
		req := validVenteRequest()

		magasins.On("FindByID", mock.Anything, req.MagasinID).Return(&sales.Magasin{}, nil)
		clients.On("FindByID", mock.Anything, req.ClientID).Return(&sales.Client{}, nil)
		stocks.On("ExistsByMagasinProduit", mock.Anything, req.MagasinID, req.ProduitID).Return(false, nil)
		ventes.On("ListNumeros", mock.Anything, "VTE").Return([]string{}, nil)

		resp, err := svc.Create(context.Background(), req)

		assert.Nil(t, resp)
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "produit", verr.Fields[0].Field)
		assert.Equal(t, shared.FieldReference, verr.Fields[0].Code)
		ventes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("collects stock violation together with input violations", func(t *testing.T) {
		svc, ventes, magasins, clients, _, stocks := newVenteFixtures(t)
		req := validVenteRequest()
		req.QuantiteVendue = decimal.Zero
		req.PrixUnitaire = decimal.Zero

		magasins.On("FindByID", mock.Anything, req.MagasinID).Return(&sales.Magasin{}, nil)
		clients.On("FindByID", mock.Anything, req.ClientID).Return(&sales.Client{}, nil)
		stocks.On("ExistsByMagasinProduit", mock.Anything, req.MagasinID, req.ProduitID).Return(false, nil)
		ventes.On("ListNumeros", mock.Anything, "VTE").Return([]string{}, nil)

		_, err := svc.Create(context.Background(), req)

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := make([]string, len(verr.Fields))
		for i, f := range verr.Fields {
			fields[i] = f.Field
		}
		assert.ElementsMatch(t, []string{"produit", "quantite_vendue", "prix_unitaire"}, fields)
	})
}

func TestVenteService_ListForExport(t *testing.T) {
	t.Run("resolves referenced names for the spreadsheet columns", func(t *testing.T) {
		svc, ventes, magasins, clients, produits, _ := newVenteFixtures(t)

		magasinID := uuid.New()
		clientID := uuid.New()
		produitID := uuid.New()

		vente := sales.Vente{
			BaseEntity:     shared.NewBaseEntity(),
			Numero:         "VTE0001",
			Date:           time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			MagasinID:      magasinID,
			ClientID:       clientID,
			ProduitID:      produitID,
			QuantiteVendue: decimal.NewFromInt(10),
			TypeVente:      sales.TypeVenteCash,
			PrixUnitaire:   decimal.NewFromInt(1500),
			TotalVente:     decimal.NewFromInt(15000),
		}

		ventes.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]sales.Vente{vente}, nil)
		magasins.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]sales.Magasin{
			{BaseEntity: shared.BaseEntity{ID: magasinID}, Nom: "MAGASIN CENTRAL"},
		}, nil)
		clients.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]sales.Client{
			{BaseEntity: shared.BaseEntity{ID: clientID}, Nom: "DIALLO", Prenom: "Mamadou"},
		}, nil)
		produits.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]supply.Produit{
			{BaseEntity: shared.BaseEntity{ID: produitID}, Nom: "RIZ PARFUME"},
		}, nil)

		responses, err := svc.ListForExport(context.Background(), ListFilter{})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "MAGASIN CENTRAL", responses[0].Magasin)
		assert.Equal(t, "DIALLO Mamadou", responses[0].Client)
		assert.Equal(t, "RIZ PARFUME", responses[0].Produit)
	})
}
