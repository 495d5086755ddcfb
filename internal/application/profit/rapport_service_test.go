package profit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/profit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

type MockAnalyseRepository struct {
	mock.Mock
}

func (m *MockAnalyseRepository) FindByID(ctx context.Context, id uuid.UUID) (*profit.AnalyseProfit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profit.AnalyseProfit), args.Error(1)
}

func (m *MockAnalyseRepository) FindByNumero(ctx context.Context, numero string) (*profit.AnalyseProfit, error) {
	args := m.Called(ctx, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profit.AnalyseProfit), args.Error(1)
}

func (m *MockAnalyseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]profit.AnalyseProfit, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profit.AnalyseProfit), args.Error(1)
}

func (m *MockAnalyseRepository) FindByPeriode(ctx context.Context, annee, mois int, magasinID uuid.UUID) ([]profit.AnalyseProfit, error) {
	args := m.Called(ctx, annee, mois, magasinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profit.AnalyseProfit), args.Error(1)
}

func (m *MockAnalyseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyseRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	args := m.Called(ctx, numero)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnalyseRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyseRepository) Save(ctx context.Context, analyse *profit.AnalyseProfit) error {
	args := m.Called(ctx, analyse)
	return args.Error(0)
}

func (m *MockAnalyseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRapportRepository struct {
	mock.Mock
}

func (m *MockRapportRepository) FindByPeriodeMagasin(ctx context.Context, annee, mois int, magasinID uuid.UUID) (*profit.RapportProfitMensuel, error) {
	args := m.Called(ctx, annee, mois, magasinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profit.RapportProfitMensuel), args.Error(1)
}

func (m *MockRapportRepository) FindAll(ctx context.Context, filter shared.Filter) ([]profit.RapportProfitMensuel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]profit.RapportProfitMensuel), args.Error(1)
}

func (m *MockRapportRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRapportRepository) Save(ctx context.Context, rapport *profit.RapportProfitMensuel) error {
	args := m.Called(ctx, rapport)
	return args.Error(0)
}

func (m *MockRapportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

type MockCommercialRepository struct {
	mock.Mock
}

func (m *MockCommercialRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Commercial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Commercial), args.Error(1)
}

func (m *MockCommercialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Commercial, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Commercial), args.Error(1)
}

func (m *MockCommercialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommercialRepository) Save(ctx context.Context, commercial *sales.Commercial) error {
	args := m.Called(ctx, commercial)
	return args.Error(0)
}

func (m *MockCommercialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func analyseLigne(t *testing.T, magasinID, produitID uuid.UUID, numero string, qa, pa, qv, pv, charges int64) profit.AnalyseProfit {
	t.Helper()
	a, err := profit.NewAnalyseProfit(numero, time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), magasinID, produitID, nil,
		decimal.NewFromInt(qa), decimal.NewFromInt(pa), decimal.NewFromInt(qv), decimal.NewFromInt(pv), decimal.NewFromInt(charges))
	require.NoError(t, err)
	return *a
}

func TestAnalyseService_Create(t *testing.T) {
	ctx := context.Background()
	magasinID := uuid.New()
	produitID := uuid.New()

	t.Run("assigns the next numero and derives margins", func(t *testing.T) {
		analyses := new(MockAnalyseRepository)
		magasins := new(MockMagasinRepository)
		produits := new(MockProduitRepository)
		commerciaux := new(MockCommercialRepository)
		service := NewAnalyseService(analyses, magasins, produits, commerciaux, passthroughTx{})

		magasins.On("FindByID", ctx, magasinID).Return(&sales.Magasin{}, nil)
		produits.On("FindByID", ctx, produitID).Return(&supply.Produit{}, nil)
		analyses.On("ListNumeros", ctx, shared.PrefixProfit).Return([]string{"PRF0001", "PRF0002"}, nil)
		analyses.On("Save", ctx, mock.AnythingOfType("*profit.AnalyseProfit")).Return(nil)

		response, err := service.Create(ctx, CreateAnalyseRequest{
			Date:              time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			MagasinID:         magasinID,
			ProduitID:         produitID,
			QuantiteAchetee:   decimal.NewFromInt(100),
			PrixAchatUnitaire: decimal.NewFromInt(800),
			QuantiteVendue:    decimal.NewFromInt(90),
			PrixVenteUnitaire: decimal.NewFromInt(1000),
			ChargesAssociees:  decimal.NewFromInt(5000),
		})

		require.NoError(t, err)
		assert.Equal(t, "PRF0003", response.Numero)
		assert.Equal(t, "80000.00", response.MontantAchat.StringFixed(2))
		assert.Equal(t, "90000.00", response.MontantVente.StringFixed(2))
		assert.Equal(t, "10000.00", response.ProfitBrut.StringFixed(2))
		assert.Equal(t, "5000.00", response.ProfitNet.StringFixed(2))
		assert.Equal(t, "11.11", response.MargeBrute.StringFixed(2))
		assert.Equal(t, "5.56", response.MargeNette.StringFixed(2))
		assert.Equal(t, "6.25", response.Rentabilite.StringFixed(2))
		analyses.AssertExpectations(t)
	})

	t.Run("rejects unknown store and product together", func(t *testing.T) {
		analyses := new(MockAnalyseRepository)
		magasins := new(MockMagasinRepository)
		produits := new(MockProduitRepository)
		commerciaux := new(MockCommercialRepository)
		service := NewAnalyseService(analyses, magasins, produits, commerciaux, passthroughTx{})

		magasins.On("FindByID", ctx, magasinID).Return(nil, shared.ErrNotFound)
		produits.On("FindByID", ctx, produitID).Return(nil, shared.ErrNotFound)
		analyses.On("ListNumeros", ctx, shared.PrefixProfit).Return([]string{}, nil)

		_, err := service.Create(ctx, CreateAnalyseRequest{
			Date:      time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			MagasinID: magasinID,
			ProduitID: produitID,
		})

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"magasin", "produit"}, fields)
		analyses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown sales rep", func(t *testing.T) {
		analyses := new(MockAnalyseRepository)
		magasins := new(MockMagasinRepository)
		produits := new(MockProduitRepository)
		commerciaux := new(MockCommercialRepository)
		service := NewAnalyseService(analyses, magasins, produits, commerciaux, passthroughTx{})

		commercialID := uuid.New()
		magasins.On("FindByID", ctx, magasinID).Return(&sales.Magasin{}, nil)
		produits.On("FindByID", ctx, produitID).Return(&supply.Produit{}, nil)
		commerciaux.On("FindByID", ctx, commercialID).Return(nil, shared.ErrNotFound)
		analyses.On("ListNumeros", ctx, shared.PrefixProfit).Return([]string{}, nil)

		_, err := service.Create(ctx, CreateAnalyseRequest{
			Date:         time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			MagasinID:    magasinID,
			ProduitID:    produitID,
			CommercialID: &commercialID,
		})

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "commercial", verr.Fields[0].Field)
		assert.Equal(t, shared.FieldReference, verr.Fields[0].Code)
		analyses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestRapportService_Generer(t *testing.T) {
	ctx := context.Background()
	magasinID := uuid.New()
	produitID := uuid.New()

	t.Run("folds the month's lines into a fresh rollup", func(t *testing.T) {
		rapports := new(MockRapportRepository)
		analyses := new(MockAnalyseRepository)
		magasins := new(MockMagasinRepository)
		service := NewRapportService(rapports, analyses, magasins, passthroughTx{})

		lignes := []profit.AnalyseProfit{
			analyseLigne(t, magasinID, produitID, "PRF0001", 100, 800, 90, 1000, 5000),
			analyseLigne(t, magasinID, produitID, "PRF0002", 50, 400, 50, 600, 2000),
		}
		magasins.On("FindByID", ctx, magasinID).Return(&sales.Magasin{}, nil)
		analyses.On("FindByPeriode", ctx, 2026, 5, magasinID).Return(lignes, nil)
		rapports.On("FindByPeriodeMagasin", ctx, 2026, 5, magasinID).Return(nil, shared.ErrNotFound)
		rapports.On("Save", ctx, mock.AnythingOfType("*profit.RapportProfitMensuel")).Return(nil)

		response, err := service.Generer(ctx, GenererRapportRequest{Annee: 2026, Mois: 5, MagasinID: magasinID})

		require.NoError(t, err)
		assert.Equal(t, 2026, response.Annee)
		assert.Equal(t, 5, response.Mois)
		assert.Equal(t, 2, response.NbAnalyses)
		assert.Equal(t, "100000.00", response.MontantAchat.StringFixed(2))
		assert.Equal(t, "120000.00", response.MontantVente.StringFixed(2))
		assert.Equal(t, "20000.00", response.ProfitBrut.StringFixed(2))
		assert.Equal(t, "13000.00", response.ProfitNet.StringFixed(2))
		rapports.AssertExpectations(t)
	})

	t.Run("replaces an existing rollup in place", func(t *testing.T) {
		rapports := new(MockRapportRepository)
		analyses := new(MockAnalyseRepository)
		magasins := new(MockMagasinRepository)
		service := NewRapportService(rapports, analyses, magasins, passthroughTx{})

		existing, err := profit.BuildRapportMensuel(2026, 5, magasinID, nil)
		require.NoError(t, err)

		lignes := []profit.AnalyseProfit{
			analyseLigne(t, magasinID, produitID, "PRF0001", 100, 800, 90, 1000, 5000),
		}
		magasins.On("FindByID", ctx, magasinID).Return(&sales.Magasin{}, nil)
		analyses.On("FindByPeriode", ctx, 2026, 5, magasinID).Return(lignes, nil)
		rapports.On("FindByPeriodeMagasin", ctx, 2026, 5, magasinID).Return(existing, nil)
		rapports.On("Save", ctx, mock.AnythingOfType("*profit.RapportProfitMensuel")).Run(func(args mock.Arguments) {
			saved := args.Get(1).(*profit.RapportProfitMensuel)
			assert.Equal(t, existing.ID, saved.ID)
			assert.Equal(t, 1, saved.NbAnalyses)
		}).Return(nil)

		response, err := service.Generer(ctx, GenererRapportRequest{Annee: 2026, Mois: 5, MagasinID: magasinID})

		require.NoError(t, err)
		assert.Equal(t, existing.ID, response.ID)
		assert.Equal(t, "5000.00", response.ProfitNet.StringFixed(2))
		rapports.AssertExpectations(t)
	})

	t.Run("rejects an out of range month", func(t *testing.T) {
		rapports := new(MockRapportRepository)
		analyses := new(MockAnalyseRepository)
		magasins := new(MockMagasinRepository)
		service := NewRapportService(rapports, analyses, magasins, passthroughTx{})

		magasins.On("FindByID", ctx, magasinID).Return(&sales.Magasin{}, nil)
		analyses.On("FindByPeriode", ctx, 2026, 13, magasinID).Return([]profit.AnalyseProfit{}, nil)

		_, err := service.Generer(ctx, GenererRapportRequest{Annee: 2026, Mois: 13, MagasinID: magasinID})

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "mois", verr.Fields[0].Field)
		rapports.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
