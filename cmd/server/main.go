package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cashapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/cash"
	chargeapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/charge"
	creditapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/credit"
	fleetapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/fleet"
	payrollapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/payroll"
	profitapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/profit"
	reportapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/report"
	salesapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/sales"
	stockapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/stock"
	supplyapp "github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/supply"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/auth"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/config"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/logger"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/infrastructure/persistence"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/interfaces/http/handler"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/interfaces/http/middleware"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ETS Yali Distribution backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	fournisseurRepo := persistence.NewGormFournisseurRepository(db)
	produitRepo := persistence.NewGormProduitRepository(db)
	livraisonRepo := persistence.NewGormLivraisonRepository(db)
	magasinRepo := persistence.NewGormMagasinRepository(db)
	clientRepo := persistence.NewGormClientRepository(db)
	commercialRepo := persistence.NewGormCommercialRepository(db)
	venteRepo := persistence.NewGormVenteRepository(db)
	creditRepo := persistence.NewGormCreditRepository(db)
	paiementRepo := persistence.NewGormPaiementRepository(db)
	mouvementStockRepo := persistence.NewGormMouvementStockRepository(db)
	stockActuelRepo := persistence.NewGormStockActuelRepository(db)
	inventaireRepo := persistence.NewGormInventaireRepository(db)
	vehiculeRepo := persistence.NewGormVehiculeRepository(db)
	carburantRepo := persistence.NewGormCarburantRepository(db)
	maintenanceRepo := persistence.NewGormMaintenanceRepository(db)
	employeRepo := persistence.NewGormEmployeRepository(db)
	paieRepo := persistence.NewGormPaieRepository(db)
	congeRepo := persistence.NewGormCongeRepository(db)
	categorieRepo := persistence.NewGormCategorieRepository(db)
	chargeRepo := persistence.NewGormChargeRepository(db)
	budgetRepo := persistence.NewGormBudgetRepository(db)
	planificationRepo := persistence.NewGormPlanificationRepository(db)
	caisseRepo := persistence.NewGormMouvementCaisseRepository(db)
	analyseRepo := persistence.NewGormAnalyseProfitRepository(db)
	rapportRepo := persistence.NewGormRapportProfitRepository(db)
	utilisateurRepo := auth.NewUtilisateurRepository(db)

	// Reporters feeding the statistics endpoints
	venteReporter := persistence.NewGormVenteReporter(db)
	livraisonReporter := persistence.NewGormLivraisonReporter(db)
	creditReporter := persistence.NewGormCreditReporter(db)
	chargeReporter := persistence.NewGormChargeReporter(db)
	profitReporter := persistence.NewGormProfitReporter(db)

	// Application services
	fournisseurService := supplyapp.NewFournisseurService(fournisseurRepo)
	produitService := supplyapp.NewProduitService(produitRepo)
	livraisonService := supplyapp.NewLivraisonService(livraisonRepo, fournisseurRepo, produitRepo, db)
	magasinService := salesapp.NewMagasinService(magasinRepo)
	clientService := salesapp.NewClientService(clientRepo)
	commercialService := salesapp.NewCommercialService(commercialRepo, magasinRepo)
	venteService := salesapp.NewVenteService(venteRepo, magasinRepo, clientRepo, produitRepo, stockActuelRepo, db)
	creditService := creditapp.NewCreditService(creditRepo, clientRepo, magasinRepo, produitRepo, stockActuelRepo, db)
	paiementService := creditapp.NewPaiementService(paiementRepo, creditRepo, db)
	mouvementStockService := stockapp.NewMouvementService(mouvementStockRepo, magasinRepo, produitRepo, commercialRepo, stockActuelRepo, db)
	stockActuelService := stockapp.NewStockActuelService(stockActuelRepo, magasinRepo, produitRepo)
	inventaireService := stockapp.NewInventaireService(inventaireRepo, magasinRepo, produitRepo, db)
	vehiculeService := fleetapp.NewVehiculeService(vehiculeRepo)
	carburantService := fleetapp.NewCarburantService(carburantRepo, vehiculeRepo, db)
	maintenanceService := fleetapp.NewMaintenanceService(maintenanceRepo, vehiculeRepo)
	employeService := payrollapp.NewEmployeService(employeRepo, db)
	paieService := payrollapp.NewPaieService(paieRepo, employeRepo)
	congeService := payrollapp.NewCongeService(congeRepo, employeRepo)
	categorieService := chargeapp.NewCategorieService(categorieRepo)
	chargeService := chargeapp.NewChargeService(chargeRepo, categorieRepo, db)
	budgetService := chargeapp.NewBudgetService(budgetRepo, categorieRepo)
	planificationService := chargeapp.NewPlanificationService(planificationRepo, categorieRepo)
	caisseService := cashapp.NewMouvementService(caisseRepo)
	analyseService := profitapp.NewAnalyseService(analyseRepo, magasinRepo, produitRepo, commercialRepo, db)
	rapportService := profitapp.NewRapportService(rapportRepo, analyseRepo, magasinRepo, db)
	statistiquesService := reportapp.NewStatistiquesService(venteReporter, livraisonReporter, creditReporter, chargeReporter, profitReporter)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := auth.NewService(utilisateurRepo, jwtService)

	handlers := router.Handlers{
		Auth:              handler.NewAuthHandler(authService),
		Fournisseurs:      handler.NewFournisseurHandler(fournisseurService),
		Produits:          handler.NewProduitHandler(produitService),
		Livraisons:        handler.NewLivraisonHandler(livraisonService),
		Magasins:          handler.NewMagasinHandler(magasinService),
		Clients:           handler.NewClientHandler(clientService),
		Commerciaux:       handler.NewCommercialHandler(commercialService),
		Ventes:            handler.NewVenteHandler(venteService),
		Credits:           handler.NewCreditHandler(creditService, paiementService),
		MouvementsStock:   handler.NewMouvementStockHandler(mouvementStockService),
		StocksActuels:     handler.NewStockActuelHandler(stockActuelService),
		Inventaires:       handler.NewInventaireHandler(inventaireService),
		Vehicules:         handler.NewVehiculeHandler(vehiculeService),
		Carburants:        handler.NewCarburantHandler(carburantService),
		Maintenances:      handler.NewMaintenanceHandler(maintenanceService),
		Employes:          handler.NewEmployeHandler(employeService),
		Paies:             handler.NewPaieHandler(paieService),
		Conges:            handler.NewCongeHandler(congeService),
		CategoriesCharges: handler.NewCategorieChargeHandler(categorieService),
		Charges:           handler.NewChargeHandler(chargeService),
		Budgets:           handler.NewBudgetHandler(budgetService),
		Planifications:    handler.NewPlanificationHandler(planificationService),
		Caisse:            handler.NewCaisseHandler(caisseService),
		Analyses:          handler.NewAnalyseProfitHandler(analyseService),
		Rapports:          handler.NewRapportProfitHandler(rapportService),
		Statistiques:      handler.NewStatistiquesHandler(statistiquesService),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.HTTP))

	engine.GET("/health", healthHandler(db))

	router.Setup(engine, jwtService, handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
