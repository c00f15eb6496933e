package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	fdec "github.com/fireplan/fire-calculator/pkg/decimal"
)

var hundred = decimal.NewFromInt(100)

// ProjectionInput holds everything GenerateProjection needs
type ProjectionInput struct {
	CurrentAge     int
	CurrentSavings decimal.Decimal
	Contribution   decimal.Decimal // monthly, unrounded
	AnnualReturn   decimal.Decimal
	InflationRate  decimal.Decimal
	Years          int
}

// GenerateProjection compounds savings monthly for in.Years years and records one
// entry per year. Contribution and return are held constant across the series.
func GenerateProjection(in ProjectionInput) []domain.ProjectionEntry {
	if in.Years <= 0 {
		return []domain.ProjectionEntry{}
	}

	monthlyReturn := fdec.MonthlyRate(in.AnnualReturn)
	reportedContribution := fdec.RoundCents(in.Contribution)
	returnPercent := in.AnnualReturn.Mul(hundred)

	projection := make([]domain.ProjectionEntry, 0, in.Years)
	balance := in.CurrentSavings
	for year := 1; year <= in.Years; year++ {
		balance = fdec.Accumulate(balance, in.Contribution, monthlyReturn, 12)
		deflator := fdec.Growth(in.InflationRate, year)

		projection = append(projection, domain.ProjectionEntry{
			Year:                    year,
			Age:                     in.CurrentAge + year,
			AccumulatedAmount:       fdec.RoundCents(balance),
			MonthlyContribution:     reportedContribution,
			AnnualReturn:            returnPercent,
			InflationAdjustedAmount: fdec.RoundCents(balance.DivRound(deflator, fdec.Precision)),
		})
	}
	return projection
}
