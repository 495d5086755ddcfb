package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/cash"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/sales"
)

func TestVentes(t *testing.T) {
	magasinID := uuid.New()
	clientID := uuid.New()
	produitID := uuid.New()

	data, err := Ventes([]sales.VenteResponse{
		{
			Numero:         "VTE0001",
			Date:           time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			MagasinID:      magasinID,
			ClientID:       clientID,
			ProduitID:      produitID,
			Magasin:        "MAGASIN CENTRAL",
			Client:         "DIALLO Mamadou",
			Produit:        "RIZ PARFUME",
			QuantiteVendue: decimal.NewFromInt(10),
			TypeVente:      "cash",
			PrixUnitaire:   decimal.NewFromInt(1500),
			TotalVente:     decimal.NewFromInt(15000),
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Numéro", "Date", "Magasin", "Client", "Produit", "Quantité vendue", "Type vente", "Prix unitaire", "Total vente"}, rows[0])
	assert.Equal(t, "VTE0001", rows[1][0])
	assert.Equal(t, "12/05/2026", rows[1][1])
	// Reference columns carry resolved names, never raw ids
	assert.Equal(t, "MAGASIN CENTRAL", rows[1][2])
	assert.Equal(t, "DIALLO Mamadou", rows[1][3])
	assert.Equal(t, "RIZ PARFUME", rows[1][4])
	assert.NotContains(t, rows[1], magasinID.String())
	assert.Equal(t, "10.00", rows[1][5])
	assert.Equal(t, "15000.00", rows[1][8])
}

func TestCharges_DatePaiementVide(t *testing.T) {
	data, err := Charges([]charge.ChargeResponse{
		{
			Numero:       "CHG0001",
			Date:         time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			CategorieID:  uuid.New(),
			Libelle:      "LOYER ENTREPOT",
			Montant:      decimal.NewFromInt(250000),
			ModePaiement: "especes",
			Payee:        false,
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// GetRows drops trailing empty cells; an unpaid charge has no payment date
	assert.Equal(t, "Non", rows[1][8])
	assert.LessOrEqual(t, len(rows[1]), 9)
}

func TestCaisse(t *testing.T) {
	data, err := Caisse([]cash.MouvementResponse{
		{
			Date:          time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			Libelle:       "VERSEMENT BANQUE",
			MontantEntree: decimal.NewFromInt(100000),
			MontantSortie: decimal.Zero,
			Net:           decimal.NewFromInt(100000),
		},
		{
			Date:          time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC),
			Libelle:       "ACHAT FOURNITURES",
			MontantEntree: decimal.Zero,
			MontantSortie: decimal.NewFromInt(25000),
			Net:           decimal.NewFromInt(-25000),
		},
	})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Libellé,Montant entrée,Montant sortie,Net,Observations", string(lines[0]))
	assert.Contains(t, string(lines[1]), "12/05/2026,VERSEMENT BANQUE,100000.00,0.00,100000.00")
	assert.Contains(t, string(lines[2]), "-25000.00")
}
