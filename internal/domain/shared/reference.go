package shared

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reference-number prefixes used across the modules. Every human-readable
// numero is a fixed prefix followed by a zero-padded numeric suffix of at
// least four digits.
const (
	PrefixLivraison  = "LIV"
	PrefixVente      = "VTE"
	PrefixCredit     = "CRD"
	PrefixMouvement  = "STK"
	PrefixCharge     = "CHG"
	PrefixCarburant  = "CARB"
	PrefixProfit     = "PRF"
	PrefixEmploye    = "EMP-"
	PrefixInventaire = "INV"
)

var numeroPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, prefix := range []string{
		PrefixLivraison, PrefixVente, PrefixCredit, PrefixMouvement,
		PrefixCharge, PrefixCarburant, PrefixProfit, PrefixEmploye,
		PrefixInventaire,
	} {
		numeroPatterns[prefix] = regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `\d{4,}$`)
	}
}

// ValidNumero reports whether numero matches the required pattern for the
// given prefix: the prefix followed by at least four digits (VTE0001 is
// accepted, VTE12 is not).
func ValidNumero(prefix, numero string) bool {
	re, ok := numeroPatterns[prefix]
	if !ok {
		re = regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `\d{4,}$`)
	}
	return re.MatchString(numero)
}

// FormatNumero renders a sequence number as prefix + zero-padded 4 digits
func FormatNumero(prefix string, seq int) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// NumeroSuffix extracts the numeric suffix of a numero sharing the prefix.
// Returns 0 for values that do not carry a parsable suffix.
func NumeroSuffix(prefix, numero string) int {
	if !strings.HasPrefix(numero, prefix) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(numero, prefix))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NextNumero computes the next numero for a prefix given every existing
// numero sharing it: max suffix + 1, starting at 1 when none match.
// Generation is not safe against concurrent writers by itself; callers run
// it inside the inserting transaction and let the unique constraint surface
// a race as an integrity violation.
func NextNumero(prefix string, existing []string) string {
	maxSeq := 0
	for _, numero := range existing {
		if seq := NumeroSuffix(prefix, numero); seq > maxSeq {
			maxSeq = seq
		}
	}
	return FormatNumero(prefix, maxSeq+1)
}

// ResolveNumero validates a caller-provided numero for uniqueness or, when
// empty, assigns the next one in the prefix sequence. A duplicate is
// accumulated into verr so it surfaces alongside the other field violations
// of the same submission.
func ResolveNumero(
	ctx context.Context,
	numero, prefix string,
	verr *ValidationError,
	exists func(context.Context, string) (bool, error),
	list func(context.Context, string) ([]string, error),
) (string, error) {
	numero = NormalizeIdentifier(numero)
	if numero == "" {
		existing, err := list(ctx, prefix)
		if err != nil {
			return "", err
		}
		return NextNumero(prefix, existing), nil
	}

	taken, err := exists(ctx, numero)
	if err != nil {
		return "", err
	}
	if taken {
		verr.Add("numero", FieldDuplicate, "Ce numéro est déjà utilisé")
	}
	return numero, nil
}
