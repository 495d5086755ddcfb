package export

import (
	"bytes"
	"encoding/csv"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/application/cash"
)

// Caisse writes the cash ledger as CSV, one line per movement with the
// running columns the book-keeper reconciles against
func Caisse(rows []cash.MouvementResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Libellé", "Montant entrée", "Montant sortie", "Net", "Observations"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			formatDate(r.Date),
			r.Libelle,
			formatMontant(r.MontantEntree),
			formatMontant(r.MontantSortie),
			formatMontant(r.Net),
			r.Observations,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
