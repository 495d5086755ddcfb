package profit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// RapportProfitMensuel is the monthly profit rollup of one store, unique
// per (annee, mois, magasin). It is rebuilt from the analysis lines of
// the month, never edited by hand.
type RapportProfitMensuel struct {
	shared.BaseEntity
	Annee        int       `gorm:"uniqueIndex:idx_rapport_periode_magasin"`
	Mois         int       `gorm:"uniqueIndex:idx_rapport_periode_magasin"`
	MagasinID    uuid.UUID `gorm:"uniqueIndex:idx_rapport_periode_magasin"`
	MontantAchat decimal.Decimal
	MontantVente decimal.Decimal
	ProfitBrut   decimal.Decimal
	ProfitNet    decimal.Decimal
	NbAnalyses   int
}

// TableName returns the database table name
func (RapportProfitMensuel) TableName() string { return "rapports_profit_mensuels" }

// BuildRapportMensuel folds the analysis lines of one month into the
// rollup for a store
func BuildRapportMensuel(annee, mois int, magasinID uuid.UUID, analyses []AnalyseProfit) (*RapportProfitMensuel, error) {
	verr := shared.NewValidationError()
	if annee < 2000 || annee > time.Now().Year()+1 {
		verr.Add("annee", shared.FieldRange, "Année invalide")
	}
	if mois < 1 || mois > 12 {
		verr.Add("mois", shared.FieldRange, "Le mois doit être compris entre 1 et 12")
	}
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin est requis")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	r := &RapportProfitMensuel{
		BaseEntity: shared.NewBaseEntity(),
		Annee:      annee,
		Mois:       mois,
		MagasinID:  magasinID,
	}
	for _, a := range analyses {
		r.MontantAchat = r.MontantAchat.Add(a.MontantAchat)
		r.MontantVente = r.MontantVente.Add(a.MontantVente)
		r.ProfitBrut = r.ProfitBrut.Add(a.ProfitBrut)
		r.ProfitNet = r.ProfitNet.Add(a.ProfitNet)
		r.NbAnalyses++
	}
	r.MontantAchat = r.MontantAchat.Round(2)
	r.MontantVente = r.MontantVente.Round(2)
	r.ProfitBrut = r.ProfitBrut.Round(2)
	r.ProfitNet = r.ProfitNet.Round(2)
	return r, nil
}
