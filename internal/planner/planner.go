// Package planner validates a request, runs the calculation engine and enriches
// the numeric result with insights and warnings.
package planner

import (
	"context"
	"fmt"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/insights"
)

// Planner is safe for concurrent use
type Planner struct {
	engine   *calculation.CalculationEngine
	parser   *config.InputParser
	enricher *insights.Enricher
	logger   calculation.Logger
}

// New returns a planner. A nil enricher uses the rule-based insights only.
func New(engine *calculation.CalculationEngine, enricher *insights.Enricher, logger calculation.Logger) *Planner {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Planner{
		engine:   engine,
		parser:   config.NewInputParser(),
		enricher: enricher,
		logger:   logger,
	}
}

// Engine exposes the underlying calculation engine.
func (p *Planner) Engine() *calculation.CalculationEngine {
	return p.engine
}

// Plan validates req, computes the FIRE result and attaches insights and warnings.
// Returns domain.ValidationErrors for a bad request and wraps
// domain.ErrInsufficientIncome when the primary calculation is infeasible.
// The numeric result is returned even if insight generation fails or times out.
func (p *Planner) Plan(ctx context.Context, req domain.Request) (*domain.FireResult, error) {
	if err := p.parser.ValidateRequest(&req); err != nil {
		return nil, err
	}

	result, err := p.engine.Calculate(req)
	if err != nil {
		p.logger.Warnf("calculation failed: %v", err)
		return nil, fmt.Errorf("calculate: %w", err)
	}

	result.Warnings = insights.Warnings(req, result)
	result.Insights = p.enricher.Insights(ctx, insights.NewSummary(req, result))
	return result, nil
}
