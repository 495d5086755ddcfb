package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/report"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// StatistiquesFilter narrows the aggregated set. Dimensions that a module
// does not carry are ignored by its reporter.
type StatistiquesFilter struct {
	Search        string     `form:"search"`
	DateDebut     *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin       *time.Time `form:"date_fin" time_format:"2006-01-02"`
	MagasinID     *uuid.UUID `form:"magasin_id"`
	ClientID      *uuid.UUID `form:"client_id"`
	ProduitID     *uuid.UUID `form:"produit_id"`
	FournisseurID *uuid.UUID `form:"fournisseur_id"`
	CommercialID  *uuid.UUID `form:"commercial_id"`
	CategorieID   *uuid.UUID `form:"categorie_id"`
	TypeVente     string     `form:"type_vente"`
	EstSolde      *bool      `form:"est_solde"`
	Payee         *bool      `form:"payee"`
	OrderDir      string     `form:"order_dir"`
}

func buildFilter(filter StatistiquesFilter) shared.Filter {
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		DateFrom: filter.DateDebut,
		DateTo:   filter.DateFin,
		Filters:  make(map[string]any),
	}
	if filter.MagasinID != nil {
		domainFilter.Filters["magasin_id"] = *filter.MagasinID
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.ProduitID != nil {
		domainFilter.Filters["produit_id"] = *filter.ProduitID
	}
	if filter.FournisseurID != nil {
		domainFilter.Filters["fournisseur_id"] = *filter.FournisseurID
	}
	if filter.CommercialID != nil {
		domainFilter.Filters["commercial_id"] = *filter.CommercialID
	}
	if filter.CategorieID != nil {
		domainFilter.Filters["categorie_id"] = *filter.CategorieID
	}
	if filter.TypeVente != "" {
		domainFilter.Filters["type_vente"] = filter.TypeVente
	}
	if filter.EstSolde != nil {
		domainFilter.Filters["est_solde"] = *filter.EstSolde
	}
	if filter.Payee != nil {
		domainFilter.Filters["payee"] = *filter.Payee
	}
	return domainFilter
}

// PointJournalierResponse is one calendar day of the grouped view
type PointJournalierResponse struct {
	Jour   string          `json:"jour"`
	Total  decimal.Decimal `json:"total"`
	Nombre int64           `json:"nombre"`
}

// PointMensuelResponse is one calendar month of the grouped view
type PointMensuelResponse struct {
	Annee  int             `json:"annee"`
	Mois   int             `json:"mois"`
	Total  decimal.Decimal `json:"total"`
	Nombre int64           `json:"nombre"`
}

func toPointsJournaliers(points []report.PointJournalier) []PointJournalierResponse {
	responses := make([]PointJournalierResponse, len(points))
	for i, p := range points {
		responses[i] = PointJournalierResponse{
			Jour:   p.Jour.Format("2006-01-02"),
			Total:  p.Total,
			Nombre: p.Nombre,
		}
	}
	return responses
}

func toPointsMensuels(points []report.PointMensuel) []PointMensuelResponse {
	responses := make([]PointMensuelResponse, len(points))
	for i, p := range points {
		responses[i] = PointMensuelResponse{
			Annee:  p.Annee,
			Mois:   p.Mois,
			Total:  p.Total,
			Nombre: p.Nombre,
		}
	}
	return responses
}

// StatistiquesResponse pairs a module summary with its daily and monthly
// groupings over the same filtered set
type StatistiquesResponse[S any] struct {
	Resume  S                         `json:"resume"`
	ParJour []PointJournalierResponse `json:"par_jour"`
	ParMois []PointMensuelResponse    `json:"par_mois"`
}

// ResumeVentesResponse summarizes the sales set
type ResumeVentesResponse struct {
	NbVentes      int64           `json:"nb_ventes"`
	TotalVentes   decimal.Decimal `json:"total_ventes"`
	TotalQuantite decimal.Decimal `json:"total_quantite"`
}

// ResumeLivraisonsResponse summarizes the deliveries set
type ResumeLivraisonsResponse struct {
	NbLivraisons  int64           `json:"nb_livraisons"`
	TotalAchats   decimal.Decimal `json:"total_achats"`
	TotalQuantite decimal.Decimal `json:"total_quantite"`
}

// ResumeCreditsResponse summarizes the credit set, recovery rate included
type ResumeCreditsResponse struct {
	NbCredits        int64           `json:"nb_credits"`
	TotalCredit      decimal.Decimal `json:"total_credit"`
	TotalPaye        decimal.Decimal `json:"total_paye"`
	TotalSolde       decimal.Decimal `json:"total_solde"`
	TauxRecouvrement decimal.Decimal `json:"taux_recouvrement"`
}

// ResumeChargesResponse summarizes the expense set
type ResumeChargesResponse struct {
	NbCharges     int64           `json:"nb_charges"`
	TotalCharges  decimal.Decimal `json:"total_charges"`
	TotalPayees   decimal.Decimal `json:"total_payees"`
	TotalImpayees decimal.Decimal `json:"total_impayees"`
}

// ResumeProfitsResponse summarizes the profit analysis set
type ResumeProfitsResponse struct {
	NbAnalyses   int64           `json:"nb_analyses"`
	MontantAchat decimal.Decimal `json:"montant_achat"`
	MontantVente decimal.Decimal `json:"montant_vente"`
	ProfitBrut   decimal.Decimal `json:"profit_brut"`
	ProfitNet    decimal.Decimal `json:"profit_net"`
}
