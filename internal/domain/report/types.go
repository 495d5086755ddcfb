package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// PointJournalier is the aggregate of one calendar day. Only days with
// at least one record are emitted; absent aggregate values are coalesced
// to zero before arithmetic, never left null.
type PointJournalier struct {
	Jour   time.Time
	Total  decimal.Decimal
	Nombre int64
}

// PointMensuel is the aggregate of one calendar month
type PointMensuel struct {
	Annee  int
	Mois   int
	Total  decimal.Decimal
	Nombre int64
}

// ResumeVentes sums the sales columns over a filtered set
type ResumeVentes struct {
	NbVentes      int64
	TotalVentes   decimal.Decimal
	TotalQuantite decimal.Decimal
}

// ResumeLivraisons sums the delivery columns over a filtered set
type ResumeLivraisons struct {
	NbLivraisons  int64
	TotalAchats   decimal.Decimal
	TotalQuantite decimal.Decimal
}

// ResumeCredits sums the credit columns over a filtered set
type ResumeCredits struct {
	NbCredits   int64
	TotalCredit decimal.Decimal
	TotalPaye   decimal.Decimal
	TotalSolde  decimal.Decimal
}

// TauxRecouvrement returns paye / credit as a percentage, zero when no
// credit was extended
func (r ResumeCredits) TauxRecouvrement() decimal.Decimal {
	if r.TotalCredit.IsZero() {
		return decimal.Zero
	}
	return r.TotalPaye.Div(r.TotalCredit).Mul(decimal.NewFromInt(100)).Round(2)
}

// ResumeCharges sums the charge columns over a filtered set
type ResumeCharges struct {
	NbCharges     int64
	TotalCharges  decimal.Decimal
	TotalPayees   decimal.Decimal
	TotalImpayees decimal.Decimal
}

// ResumeProfits sums the profit columns over a filtered set
type ResumeProfits struct {
	NbAnalyses   int64
	MontantAchat decimal.Decimal
	MontantVente decimal.Decimal
	ProfitBrut   decimal.Decimal
	ProfitNet    decimal.Decimal
}
