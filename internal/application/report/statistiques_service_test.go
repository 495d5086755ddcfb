package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/report"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

type MockVenteReporter struct {
	mock.Mock
}

func (m *MockVenteReporter) Resume(ctx context.Context, filter shared.Filter) (*report.ResumeVentes, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ResumeVentes), args.Error(1)
}

func (m *MockVenteReporter) ParJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.PointJournalier), args.Error(1)
}

func (m *MockVenteReporter) ParMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.PointMensuel), args.Error(1)
}

type MockCreditReporter struct {
	mock.Mock
}

func (m *MockCreditReporter) Resume(ctx context.Context, filter shared.Filter) (*report.ResumeCredits, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ResumeCredits), args.Error(1)
}

func (m *MockCreditReporter) ParJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.PointJournalier), args.Error(1)
}

func (m *MockCreditReporter) ParMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.PointMensuel), args.Error(1)
}

func TestStatistiquesService_Ventes(t *testing.T) {
	ctx := context.Background()
	magasinID := uuid.New()

	t.Run("carries the dimension filters into every aggregate query", func(t *testing.T) {
		ventes := new(MockVenteReporter)
		service := NewStatistiquesService(ventes, nil, nil, nil, nil)

		expected := shared.Filter{
			OrderDir: "desc",
			Filters:  map[string]any{"magasin_id": magasinID},
		}
		ventes.On("Resume", ctx, expected).Return(&report.ResumeVentes{
			NbVentes:      3,
			TotalVentes:   decimal.NewFromInt(45000),
			TotalQuantite: decimal.NewFromInt(30),
		}, nil)
		ventes.On("ParJour", ctx, expected).Return([]report.PointJournalier{
			{Jour: time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(30000), Nombre: 2},
			{Jour: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(15000), Nombre: 1},
		}, nil)
		ventes.On("ParMois", ctx, expected).Return([]report.PointMensuel{
			{Annee: 2026, Mois: 5, Total: decimal.NewFromInt(45000), Nombre: 3},
		}, nil)

		response, err := service.Ventes(ctx, StatistiquesFilter{MagasinID: &magasinID})

		require.NoError(t, err)
		assert.Equal(t, int64(3), response.Resume.NbVentes)
		assert.Equal(t, "45000", response.Resume.TotalVentes.String())
		require.Len(t, response.ParJour, 2)
		assert.Equal(t, "2026-05-14", response.ParJour[0].Jour)
		assert.Equal(t, "2026-05-12", response.ParJour[1].Jour)
		require.Len(t, response.ParMois, 1)
		assert.Equal(t, 5, response.ParMois[0].Mois)
		ventes.AssertExpectations(t)
	})

	t.Run("overall total equals the sum of the daily groups", func(t *testing.T) {
		ventes := new(MockVenteReporter)
		service := NewStatistiquesService(ventes, nil, nil, nil, nil)

		ventes.On("Resume", ctx, mock.Anything).Return(&report.ResumeVentes{
			NbVentes:    3,
			TotalVentes: decimal.NewFromInt(45000),
		}, nil)
		ventes.On("ParJour", ctx, mock.Anything).Return([]report.PointJournalier{
			{Jour: time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(30000), Nombre: 2},
			{Jour: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(15000), Nombre: 1},
		}, nil)
		ventes.On("ParMois", ctx, mock.Anything).Return([]report.PointMensuel{}, nil)

		response, err := service.Ventes(ctx, StatistiquesFilter{})

		require.NoError(t, err)
		sum := decimal.Zero
		for _, p := range response.ParJour {
			sum = sum.Add(p.Total)
		}
		assert.True(t, response.Resume.TotalVentes.Equal(sum))
	})
}

func TestStatistiquesService_Credits(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the recovery rate from the summed columns", func(t *testing.T) {
		credits := new(MockCreditReporter)
		service := NewStatistiquesService(nil, nil, credits, nil, nil)

		credits.On("Resume", ctx, mock.Anything).Return(&report.ResumeCredits{
			NbCredits:   4,
			TotalCredit: decimal.NewFromInt(40000),
			TotalPaye:   decimal.NewFromInt(25000),
			TotalSolde:  decimal.NewFromInt(15000),
		}, nil)
		credits.On("ParJour", ctx, mock.Anything).Return([]report.PointJournalier{}, nil)
		credits.On("ParMois", ctx, mock.Anything).Return([]report.PointMensuel{}, nil)

		response, err := service.Credits(ctx, StatistiquesFilter{})

		require.NoError(t, err)
		assert.Equal(t, "62.50", response.Resume.TauxRecouvrement.StringFixed(2))
		assert.Empty(t, response.ParJour)
		assert.Empty(t, response.ParMois)
	})

	t.Run("recovery rate is zero when no credit was extended", func(t *testing.T) {
		credits := new(MockCreditReporter)
		service := NewStatistiquesService(nil, nil, credits, nil, nil)

		credits.On("Resume", ctx, mock.Anything).Return(&report.ResumeCredits{}, nil)
		credits.On("ParJour", ctx, mock.Anything).Return([]report.PointJournalier{}, nil)
		credits.On("ParMois", ctx, mock.Anything).Return([]report.PointMensuel{}, nil)

		response, err := service.Credits(ctx, StatistiquesFilter{})

		require.NoError(t, err)
		assert.True(t, response.Resume.TauxRecouvrement.IsZero())
	})
}
