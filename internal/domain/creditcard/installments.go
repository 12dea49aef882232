package creditcard

import (
	"fmt"

	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	MinInstallments = 2
	MaxInstallments = 24
)

type InstallmentSplit struct {
	Total     decimal.Decimal `json:"total"`
	Base      decimal.Decimal `json:"base"`
	Remainder decimal.Decimal `json:"remainder"`
	Count     int             `json:"count"`
}

// Amount returns the value of the i-th installment (zero based). The last
// installment absorbs the remainder.
func (s InstallmentSplit) Amount(i int) decimal.Decimal {
	if i == s.Count-1 {
		return s.Base.Add(s.Remainder)
	}
	return s.Base
}

func (s InstallmentSplit) Amounts() []decimal.Decimal {
	out := make([]decimal.Decimal, s.Count)
	for i := range out {
		out[i] = s.Amount(i)
	}
	return out
}

func SplitInstallments(total decimal.Decimal, count int) (InstallmentSplit, error) {
	if count < MinInstallments || count > MaxInstallments {
		return InstallmentSplit{}, appErrors.ErrInvalidInstallmentCount.WithDetails(map[string]interface{}{
			"installment_count": count,
		})
	}
	if err := validateAmount(total); err != nil {
		return InstallmentSplit{}, err
	}

	n := decimal.NewFromInt(int64(count))
	base := total.Shift(2).Div(n).Floor().Shift(-2)
	if !base.IsPositive() {
		return InstallmentSplit{}, appErrors.NewValidationError("amount",
			fmt.Sprintf("Valor insuficiente para %d parcelas", count))
	}

	return InstallmentSplit{
		Total:     total,
		Base:      base,
		Remainder: total.Sub(base.Mul(n)),
		Count:     count,
	}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return appErrors.NewValidationError("amount", "Valor deve ser maior que zero")
	}
	if !amount.Equal(amount.Round(2)) {
		return appErrors.NewValidationError("amount", "Valor deve ter no máximo duas casas decimais")
	}
	return nil
}

func installmentLabel(i, count int) string {
	return fmt.Sprintf("%d/%d", i+1, count)
}

func installmentName(name string, i, count int) string {
	return fmt.Sprintf("%s (%s)", name, installmentLabel(i, count))
}

func installmentNote(note string, i, count int) string {
	if note == "" {
		return fmt.Sprintf("Parcela %s", installmentLabel(i, count))
	}
	return fmt.Sprintf("%s - Parcela %s", note, installmentLabel(i, count))
}
