package export

import (
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/credit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/fleet"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/payroll"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/profit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/stock"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/supply"
)

// Livraisons writes the delivery rows as an xlsx workbook
func Livraisons(rows []supply.LivraisonResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Date", "Fournisseur", "Produit", "Quantité livrée", "Prix achat unitaire", "Montant total achat", "Observations"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, formatDate(r.Date), r.Fournisseur, r.Produit, formatMontant(r.QuantiteLivree), formatMontant(r.PrixAchatUnitaire), formatMontant(r.MontantTotalAchat), r.Observations}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Ventes writes the sale rows as an xlsx workbook
func Ventes(rows []sales.VenteResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Date", "Magasin", "Client", "Produit", "Quantité vendue", "Type vente", "Prix unitaire", "Total vente"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, formatDate(r.Date), r.Magasin, r.Client, r.Produit, formatMontant(r.QuantiteVendue), r.TypeVente, formatMontant(r.PrixUnitaire), formatMontant(r.TotalVente)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Credits writes the customer credit rows as an xlsx workbook
func Credits(rows []credit.CreditResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Date", "Client", "Magasin", "Produit", "Quantité", "Prix unitaire", "Montant total", "Montant payé", "Solde restant", "Soldé"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, formatDate(r.Date), r.Client, r.Magasin, r.Produit, formatMontant(r.Quantite), formatMontant(r.PrixUnitaire), formatMontant(r.MontantTotal), formatMontant(r.MontantPaye), formatMontant(r.SoldeRestant), formatBool(r.EstSolde)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// MouvementsStock writes the stock movement rows as an xlsx workbook
func MouvementsStock(rows []stock.MouvementResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Date", "Magasin", "Produit", "Commercial", "Stock initial", "Stock vendu", "Stock final", "Montant ventes"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, formatDate(r.Date), r.Magasin, r.Produit, r.Commercial, formatMontant(r.StockInitial), formatMontant(r.StockVendu), formatMontant(r.StockFinal), formatMontant(r.MontantVentes)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// StocksActuels writes the current stock rows as an xlsx workbook
func StocksActuels(rows []stock.StockActuelResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Magasin", "Produit", "Quantité actuelle", "Seuil alerte", "Prix moyen achat", "Valeur stock", "Rupture", "Alerte"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Magasin, r.Produit, formatMontant(r.QuantiteActuelle), formatMontant(r.SeuilAlerte), formatMontant(r.PrixMoyenAchat), formatMontant(r.ValeurStock), formatBool(r.EnRupture), formatBool(r.EnAlerte)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Vehicules writes the vehicle rows as an xlsx workbook
func Vehicules(rows []fleet.VehiculeResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Matricule", "Type", "Marque", "Modèle", "Année", "Date acquisition", "Prix acquisition", "Statut"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Matricule, r.Type, r.Marque, r.Modele, r.Annee, formatDate(r.DateAcquisition), formatMontant(r.PrixAcquisition), r.Statut}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Carburants writes the fuel consumption rows as an xlsx workbook
func Carburants(rows []fleet.CarburantResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Date", "Véhicule", "Quantité semaine", "Prix par litre", "Montant semaine", "Montant mois", "Observations"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, formatDate(r.Date), r.Vehicule, formatMontant(r.QuantiteSemaine), formatMontant(r.PrixParLitre), formatMontant(r.MontantSemaine), formatMontant(r.MontantMois), r.Observations}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Employes writes the employee rows as an xlsx workbook
func Employes(rows []payroll.EmployeResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Nom complet", "Matricule", "Fonction", "Téléphone", "Adresse", "Date embauche", "Salaire base", "Prime performance", "Actif"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, r.NomComplet, r.Matricule, r.Fonction, r.Telephone, r.Adresse, formatDate(r.DateEmbauche), formatMontant(r.SalaireBase), formatMontant(r.PrimePerformance), formatBool(r.Actif)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Paies writes the pay slip rows as an xlsx workbook
func Paies(rows []payroll.PaieResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Employé", "Année", "Mois", "Salaire base", "Prime", "Heures sup", "Autres primes", "Avances", "Retenues", "Salaire brut", "Salaire net", "Payée", "Date paiement"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Employe, r.Annee, r.Mois, formatMontant(r.SalaireBase), formatMontant(r.Prime), formatMontant(r.HeuresSup), formatMontant(r.AutresPrimes), formatMontant(r.Avances), formatMontant(r.Retenues), formatMontant(r.SalaireBrut), formatMontant(r.SalaireNet), formatBool(r.Payee), formatDatePtr(r.DatePaiement)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Charges writes the operating expense rows as an xlsx workbook
func Charges(rows []charge.ChargeResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Date", "Catégorie", "Libellé", "Montant", "Fournisseur", "Numéro facture", "Mode paiement", "Payée", "Date paiement"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, formatDate(r.Date), r.Categorie, r.Libelle, formatMontant(r.Montant), r.Fournisseur, r.NumeroFacture, r.ModePaiement, formatBool(r.Payee), formatDatePtr(r.DatePaiement)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}

// Analyses writes the profit analysis rows as an xlsx workbook
func Analyses(rows []profit.AnalyseResponse) ([]byte, error) {
	w, err := newWorkbook([]string{"Numéro", "Date", "Magasin", "Produit", "Commercial", "Montant achat", "Montant vente", "Charges associées", "Profit brut", "Profit net", "Marge brute %", "Marge nette %", "Rentabilité %"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.addRow([]any{r.Numero, formatDate(r.Date), r.Magasin, r.Produit, r.Commercial, formatMontant(r.MontantAchat), formatMontant(r.MontantVente), formatMontant(r.ChargesAssociees), formatMontant(r.ProfitBrut), formatMontant(r.ProfitNet), formatMontant(r.MargeBrute), formatMontant(r.MargeNette), formatMontant(r.Rentabilite)}); err != nil {
			return nil, err
		}
	}
	return w.bytes()
}
