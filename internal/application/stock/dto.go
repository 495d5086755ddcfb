package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/stock"
)

// =============================================================================
// MouvementStock DTOs
// =============================================================================

// CreateMouvementRequest represents a request to record a daily stock
// movement. When the numero is omitted the next one in the STK sequence
// is assigned.
type CreateMouvementRequest struct {
	Numero        string          `json:"numero" binding:"max=20"`
	Date          time.Time       `json:"date" binding:"required"`
	MagasinID     uuid.UUID       `json:"magasin_id" binding:"required"`
	ProduitID     uuid.UUID       `json:"produit_id" binding:"required"`
	CommercialID  *uuid.UUID      `json:"commercial_id"`
	StockInitial  decimal.Decimal `json:"stock_initial"`
	StockVendu    decimal.Decimal `json:"stock_vendu"`
	MontantVentes decimal.Decimal `json:"montant_ventes"`
}

// UpdateMouvementRequest represents a request to correct a movement's
// quantities
type UpdateMouvementRequest struct {
	StockInitial  decimal.Decimal `json:"stock_initial"`
	StockVendu    decimal.Decimal `json:"stock_vendu"`
	MontantVentes decimal.Decimal `json:"montant_ventes"`
}

// MouvementResponse represents a stock movement in API responses
type MouvementResponse struct {
	ID            uuid.UUID       `json:"id"`
	Numero        string          `json:"numero"`
	Date          time.Time       `json:"date"`
	MagasinID     uuid.UUID       `json:"magasin_id"`
	ProduitID     uuid.UUID       `json:"produit_id"`
	CommercialID  *uuid.UUID      `json:"commercial_id,omitempty"`
	Magasin       string          `json:"magasin,omitempty"`
	Produit       string          `json:"produit,omitempty"`
	Commercial    string          `json:"commercial,omitempty"`
	StockInitial  decimal.Decimal `json:"stock_initial"`
	StockVendu    decimal.Decimal `json:"stock_vendu"`
	StockFinal    decimal.Decimal `json:"stock_final"`
	MontantVentes decimal.Decimal `json:"montant_ventes"`
	EnRupture     bool            `json:"en_rupture"`
	EnAlerte      bool            `json:"en_alerte"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToMouvementResponse maps a movement to its response shape
func ToMouvementResponse(m *stock.MouvementStock) MouvementResponse {
	return MouvementResponse{
		ID:            m.ID,
		Numero:        m.Numero,
		Date:          m.Date,
		MagasinID:     m.MagasinID,
		ProduitID:     m.ProduitID,
		CommercialID:  m.CommercialID,
		StockInitial:  m.StockInitial,
		StockVendu:    m.StockVendu,
		StockFinal:    m.StockFinal,
		MontantVentes: m.MontantVentes,
		EnRupture:     m.EnRupture(),
		EnAlerte:      m.EnAlerte(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToMouvementResponses maps a slice of movements
func ToMouvementResponses(mouvements []stock.MouvementStock) []MouvementResponse {
	responses := make([]MouvementResponse, len(mouvements))
	for i := range mouvements {
		responses[i] = ToMouvementResponse(&mouvements[i])
	}
	return responses
}

// =============================================================================
// StockActuel DTOs
// =============================================================================

// CreateStockActuelRequest represents a request to open the current-stock
// row of a (store, product) pair
type CreateStockActuelRequest struct {
	MagasinID        uuid.UUID       `json:"magasin_id" binding:"required"`
	ProduitID        uuid.UUID       `json:"produit_id" binding:"required"`
	QuantiteActuelle decimal.Decimal `json:"quantite_actuelle"`
	SeuilAlerte      decimal.Decimal `json:"seuil_alerte"`
	PrixMoyenAchat   decimal.Decimal `json:"prix_moyen_achat"`
}

// AjusterStockRequest represents a manual stock adjustment
type AjusterStockRequest struct {
	QuantiteActuelle decimal.Decimal `json:"quantite_actuelle"`
	PrixMoyenAchat   decimal.Decimal `json:"prix_moyen_achat"`
}

// StockActuelResponse represents current stock in API responses
type StockActuelResponse struct {
	ID               uuid.UUID       `json:"id"`
	MagasinID        uuid.UUID       `json:"magasin_id"`
	ProduitID        uuid.UUID       `json:"produit_id"`
	Magasin          string          `json:"magasin,omitempty"`
	Produit          string          `json:"produit,omitempty"`
	QuantiteActuelle decimal.Decimal `json:"quantite_actuelle"`
	SeuilAlerte      decimal.Decimal `json:"seuil_alerte"`
	PrixMoyenAchat   decimal.Decimal `json:"prix_moyen_achat"`
	ValeurStock      decimal.Decimal `json:"valeur_stock"`
	EnRupture        bool            `json:"en_rupture"`
	EnAlerte         bool            `json:"en_alerte"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToStockActuelResponse maps a current-stock row to its response shape
func ToStockActuelResponse(s *stock.StockActuel) StockActuelResponse {
	return StockActuelResponse{
		ID:               s.ID,
		MagasinID:        s.MagasinID,
		ProduitID:        s.ProduitID,
		QuantiteActuelle: s.QuantiteActuelle,
		SeuilAlerte:      s.SeuilAlerte,
		PrixMoyenAchat:   s.PrixMoyenAchat,
		ValeurStock:      s.ValeurStock,
		EnRupture:        s.EnRupture(),
		EnAlerte:         s.EnAlerte(),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToStockActuelResponses maps a slice of current-stock rows
func ToStockActuelResponses(stocks []stock.StockActuel) []StockActuelResponse {
	responses := make([]StockActuelResponse, len(stocks))
	for i := range stocks {
		responses[i] = ToStockActuelResponse(&stocks[i])
	}
	return responses
}

// =============================================================================
// Inventaire DTOs
// =============================================================================

// CreateInventaireRequest represents a request to start a physical count
type CreateInventaireRequest struct {
	Numero      string    `json:"numero" binding:"max=20"`
	Date        time.Time `json:"date" binding:"required"`
	MagasinID   uuid.UUID `json:"magasin_id" binding:"required"`
	Responsable string    `json:"responsable" binding:"required,max=200"`
}

// AjouterLigneRequest represents the count of one product
type AjouterLigneRequest struct {
	ProduitID      uuid.UUID       `json:"produit_id" binding:"required"`
	StockTheorique decimal.Decimal `json:"stock_theorique"`
	StockPhysique  decimal.Decimal `json:"stock_physique"`
}

// LigneInventaireResponse represents an inventory line in API responses
type LigneInventaireResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProduitID      uuid.UUID       `json:"produit_id"`
	StockTheorique decimal.Decimal `json:"stock_theorique"`
	StockPhysique  decimal.Decimal `json:"stock_physique"`
	Ecart          decimal.Decimal `json:"ecart"`
}

// InventaireResponse represents an inventory in API responses
type InventaireResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Numero      string                    `json:"numero"`
	Date        time.Time                 `json:"date"`
	MagasinID   uuid.UUID                 `json:"magasin_id"`
	Responsable string                    `json:"responsable"`
	Statut      string                    `json:"statut"`
	Lignes      []LigneInventaireResponse `json:"lignes"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// ToInventaireResponse maps an inventory with its lines
func ToInventaireResponse(i *stock.Inventaire) InventaireResponse {
	lignes := make([]LigneInventaireResponse, len(i.Lignes))
	for j, l := range i.Lignes {
		lignes[j] = LigneInventaireResponse{
			ID:             l.ID,
			ProduitID:      l.ProduitID,
			StockTheorique: l.StockTheorique,
			StockPhysique:  l.StockPhysique,
			Ecart:          l.Ecart,
		}
	}
	return InventaireResponse{
		ID:          i.ID,
		Numero:      i.Numero,
		Date:        i.Date,
		MagasinID:   i.MagasinID,
		Responsable: i.Responsable,
		Statut:      string(i.Statut),
		Lignes:      lignes,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToInventaireResponses maps a slice of inventories
func ToInventaireResponses(inventaires []stock.Inventaire) []InventaireResponse {
	responses := make([]InventaireResponse, len(inventaires))
	for i := range inventaires {
		responses[i] = ToInventaireResponse(&inventaires[i])
	}
	return responses
}

// ListFilter represents the shared list query options of the module
type ListFilter struct {
	Search    string     `form:"search"`
	DateDebut *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin   *time.Time `form:"date_fin" time_format:"2006-01-02"`
	MagasinID *uuid.UUID `form:"magasin_id"`
	ProduitID *uuid.UUID `form:"produit_id"`
	Statut    string     `form:"statut"`
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir"`
}

func buildFilter(filter ListFilter, defaultOrderBy, defaultOrderDir string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = defaultOrderDir
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		DateFrom: filter.DateDebut,
		DateTo:   filter.DateFin,
		Filters:  make(map[string]any),
	}
	if filter.MagasinID != nil {
		domainFilter.Filters["magasin_id"] = *filter.MagasinID
	}
	if filter.ProduitID != nil {
		domainFilter.Filters["produit_id"] = *filter.ProduitID
	}
	if filter.Statut != "" {
		domainFilter.Filters["statut"] = filter.Statut
	}
	return domainFilter
}
