package router

import (
	"github.com/gin-gonic/gin"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/auth"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/interfaces/http/handler"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/interfaces/http/middleware"
)

// Handlers groups every HTTP handler mounted on the API
type Handlers struct {
	Auth *handler.AuthHandler

	Fournisseurs *handler.FournisseurHandler
	Produits     *handler.ProduitHandler
	Livraisons   *handler.LivraisonHandler

	Magasins    *handler.MagasinHandler
	Clients     *handler.ClientHandler
	Commerciaux *handler.CommercialHandler
	Ventes      *handler.VenteHandler

	Credits *handler.CreditHandler

	MouvementsStock *handler.MouvementStockHandler
	StocksActuels   *handler.StockActuelHandler
	Inventaires     *handler.InventaireHandler

	Vehicules    *handler.VehiculeHandler
	Carburants   *handler.CarburantHandler
	Maintenances *handler.MaintenanceHandler

	Employes *handler.EmployeHandler
	Paies    *handler.PaieHandler
	Conges   *handler.CongeHandler

	CategoriesCharges *handler.CategorieChargeHandler
	Charges           *handler.ChargeHandler
	Budgets           *handler.BudgetHandler
	Planifications    *handler.PlanificationHandler

	Caisse *handler.CaisseHandler

	Analyses *handler.AnalyseProfitHandler
	Rapports *handler.RapportProfitHandler

	Statistiques *handler.StatistiquesHandler
}

// Setup mounts all API routes on the engine. Everything under /api/v1
// except the login endpoint requires a valid JWT; destructive operations
// additionally require the admin role.
func Setup(engine *gin.Engine, jwtService *auth.JWTService, h Handlers) {
	api := engine.Group("/api/v1")

	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))

	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	fournisseurs := protected.Group("/fournisseurs")
	fournisseurs.POST("", h.Fournisseurs.Create)
	fournisseurs.GET("", h.Fournisseurs.List)
	fournisseurs.GET("/:id", h.Fournisseurs.Get)
	fournisseurs.PUT("/:id", h.Fournisseurs.Update)
	fournisseurs.DELETE("/:id", adminOnly, h.Fournisseurs.Delete)

	produits := protected.Group("/produits")
	produits.POST("", h.Produits.Create)
	produits.GET("", h.Produits.List)
	produits.GET("/:id", h.Produits.Get)
	produits.PUT("/:id", h.Produits.Update)
	produits.DELETE("/:id", adminOnly, h.Produits.Delete)

	livraisons := protected.Group("/livraisons")
	livraisons.POST("", h.Livraisons.Create)
	livraisons.GET("", h.Livraisons.List)
	livraisons.GET("/export", h.Livraisons.Export)
	livraisons.GET("/:id", h.Livraisons.Get)
	livraisons.PUT("/:id", h.Livraisons.Update)
	livraisons.DELETE("/:id", adminOnly, h.Livraisons.Delete)

	magasins := protected.Group("/magasins")
	magasins.POST("", h.Magasins.Create)
	magasins.GET("", h.Magasins.List)
	magasins.GET("/:id", h.Magasins.Get)
	magasins.PUT("/:id", h.Magasins.Update)
	magasins.DELETE("/:id", adminOnly, h.Magasins.Delete)

	clients := protected.Group("/clients")
	clients.POST("", h.Clients.Create)
	clients.GET("", h.Clients.List)
	clients.GET("/:id", h.Clients.Get)
	clients.PUT("/:id", h.Clients.Update)
	clients.DELETE("/:id", adminOnly, h.Clients.Delete)

	commerciaux := protected.Group("/commerciaux")
	commerciaux.POST("", h.Commerciaux.Create)
	commerciaux.GET("", h.Commerciaux.List)
	commerciaux.GET("/:id", h.Commerciaux.Get)
	commerciaux.PUT("/:id", h.Commerciaux.Update)
	commerciaux.POST("/:id/desactiver", h.Commerciaux.Desactiver)
	commerciaux.POST("/:id/reactiver", h.Commerciaux.Reactiver)

	ventes := protected.Group("/ventes")
	ventes.POST("", h.Ventes.Create)
	ventes.GET("", h.Ventes.List)
	ventes.GET("/export", h.Ventes.Export)
	ventes.GET("/:id", h.Ventes.Get)
	ventes.PUT("/:id", h.Ventes.Update)
	ventes.DELETE("/:id", adminOnly, h.Ventes.Delete)

	credits := protected.Group("/credits")
	credits.POST("", h.Credits.Create)
	credits.GET("", h.Credits.List)
	credits.GET("/export", h.Credits.Export)
	credits.GET("/:id", h.Credits.Get)
	credits.PUT("/:id", h.Credits.Update)
	credits.DELETE("/:id", adminOnly, h.Credits.Delete)
	credits.POST("/:id/paiements", h.Credits.EnregistrerPaiement)
	credits.GET("/:id/paiements", h.Credits.ListPaiements)
	credits.DELETE("/paiements/:id", adminOnly, h.Credits.SupprimerPaiement)

	mouvements := protected.Group("/stocks/mouvements")
	mouvements.POST("", h.MouvementsStock.Create)
	mouvements.GET("", h.MouvementsStock.List)
	mouvements.GET("/export", h.MouvementsStock.Export)
	mouvements.GET("/:id", h.MouvementsStock.Get)
	mouvements.PUT("/:id", h.MouvementsStock.Update)
	mouvements.DELETE("/:id", adminOnly, h.MouvementsStock.Delete)

	stocks := protected.Group("/stocks/actuels")
	stocks.POST("", h.StocksActuels.Create)
	stocks.GET("", h.StocksActuels.List)
	stocks.GET("/export", h.StocksActuels.Export)
	stocks.GET("/:id", h.StocksActuels.Get)
	stocks.PUT("/:id/ajuster", h.StocksActuels.Ajuster)
	stocks.DELETE("/:id", adminOnly, h.StocksActuels.Delete)

	inventaires := protected.Group("/inventaires")
	inventaires.POST("", h.Inventaires.Create)
	inventaires.GET("", h.Inventaires.List)
	inventaires.GET("/:id", h.Inventaires.Get)
	inventaires.POST("/:id/lignes", h.Inventaires.AjouterLigne)
	inventaires.POST("/:id/terminer", h.Inventaires.Terminer)
	inventaires.POST("/:id/valider", adminOnly, h.Inventaires.Valider)
	inventaires.DELETE("/:id", adminOnly, h.Inventaires.Delete)

	vehicules := protected.Group("/vehicules")
	vehicules.POST("", h.Vehicules.Create)
	vehicules.GET("", h.Vehicules.List)
	vehicules.GET("/export", h.Vehicules.Export)
	vehicules.GET("/:id", h.Vehicules.Get)
	vehicules.PUT("/:id/statut", h.Vehicules.ChangerStatut)
	vehicules.DELETE("/:id", adminOnly, h.Vehicules.Delete)
	vehicules.GET("/:id/maintenances", h.Maintenances.ListByVehicule)

	carburants := protected.Group("/carburants")
	carburants.POST("", h.Carburants.Create)
	carburants.GET("", h.Carburants.List)
	carburants.GET("/export", h.Carburants.Export)
	carburants.GET("/:id", h.Carburants.Get)
	carburants.PUT("/:id", h.Carburants.Update)
	carburants.DELETE("/:id", adminOnly, h.Carburants.Delete)

	maintenances := protected.Group("/maintenances")
	maintenances.POST("", h.Maintenances.Create)
	maintenances.GET("", h.Maintenances.List)
	maintenances.GET("/:id", h.Maintenances.Get)
	maintenances.DELETE("/:id", adminOnly, h.Maintenances.Delete)

	employes := protected.Group("/employes")
	employes.POST("", h.Employes.Create)
	employes.GET("", h.Employes.List)
	employes.GET("/export", h.Employes.Export)
	employes.GET("/:id", h.Employes.Get)
	employes.PUT("/:id", h.Employes.Update)
	employes.POST("/:id/desactiver", h.Employes.Desactiver)
	employes.POST("/:id/reactiver", h.Employes.Reactiver)
	employes.GET("/:id/conges", h.Conges.ListByEmploye)

	paies := protected.Group("/paies")
	paies.POST("", h.Paies.Create)
	paies.GET("", h.Paies.List)
	paies.GET("/export", h.Paies.Export)
	paies.GET("/:id", h.Paies.Get)
	paies.POST("/:id/payer", h.Paies.MarquerPayee)
	paies.DELETE("/:id", adminOnly, h.Paies.Delete)

	conges := protected.Group("/conges")
	conges.POST("", h.Conges.Create)
	conges.GET("", h.Conges.List)
	conges.GET("/:id", h.Conges.Get)
	conges.POST("/:id/approuver", h.Conges.Approuver)
	conges.DELETE("/:id", adminOnly, h.Conges.Delete)

	categories := protected.Group("/categories-charges")
	categories.POST("", h.CategoriesCharges.Create)
	categories.GET("", h.CategoriesCharges.List)
	categories.GET("/:id", h.CategoriesCharges.Get)
	categories.DELETE("/:id", adminOnly, h.CategoriesCharges.Delete)

	charges := protected.Group("/charges")
	charges.POST("", h.Charges.Create)
	charges.GET("", h.Charges.List)
	charges.GET("/export", h.Charges.Export)
	charges.GET("/:id", h.Charges.Get)
	charges.POST("/:id/payer", h.Charges.MarquerPayee)
	charges.DELETE("/:id", adminOnly, h.Charges.Delete)

	budgets := protected.Group("/budgets")
	budgets.POST("", h.Budgets.Create)
	budgets.GET("", h.Budgets.List)
	budgets.GET("/:id", h.Budgets.Get)
	budgets.POST("/:id/realise", h.Budgets.AjouterRealise)
	budgets.DELETE("/:id", adminOnly, h.Budgets.Delete)

	planifications := protected.Group("/planifications")
	planifications.POST("", h.Planifications.Create)
	planifications.GET("", h.Planifications.List)
	planifications.GET("/actives", h.Planifications.ListActives)
	planifications.GET("/:id", h.Planifications.Get)
	planifications.POST("/:id/echeance", h.Planifications.AvancerEcheance)
	planifications.DELETE("/:id", adminOnly, h.Planifications.Delete)

	caisse := protected.Group("/caisse")
	caisse.POST("", h.Caisse.Create)
	caisse.GET("", h.Caisse.List)
	caisse.GET("/solde", h.Caisse.Solde)
	caisse.GET("/export", h.Caisse.Export)
	caisse.GET("/:id", h.Caisse.Get)
	caisse.DELETE("/:id", adminOnly, h.Caisse.Delete)

	analyses := protected.Group("/profits/analyses")
	analyses.POST("", h.Analyses.Create)
	analyses.GET("", h.Analyses.List)
	analyses.GET("/export", h.Analyses.Export)
	analyses.GET("/:id", h.Analyses.Get)
	analyses.PUT("/:id", h.Analyses.Update)
	analyses.DELETE("/:id", adminOnly, h.Analyses.Delete)

	rapports := protected.Group("/profits/rapports")
	rapports.POST("/generer", h.Rapports.Generer)
	rapports.GET("", h.Rapports.List)
	rapports.GET("/periode", h.Rapports.GetByPeriode)
	rapports.DELETE("/:id", adminOnly, h.Rapports.Delete)

	statistiques := protected.Group("/statistiques")
	statistiques.GET("/ventes", h.Statistiques.Ventes)
	statistiques.GET("/livraisons", h.Statistiques.Livraisons)
	statistiques.GET("/credits", h.Statistiques.Credits)
	statistiques.GET("/charges", h.Statistiques.Charges)
	statistiques.GET("/profits", h.Statistiques.Profits)
}
