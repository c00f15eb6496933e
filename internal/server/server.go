// Package server exposes the planner over HTTP using fasthttp.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/planner"
	"github.com/fireplan/fire-calculator/internal/store"
)

// CalculationIDHeader carries the id under which a calculation was recorded.
const CalculationIDHeader = "X-Calculation-Id"

const historyPrefix = "/fire/history/"

// History is the subset of the calculation store the server needs.
type History interface {
	Save(ctx context.Context, id string, req domain.Request, result *domain.FireResult) (store.Record, error)
	Get(ctx context.Context, id string) (store.Record, error)
	List(ctx context.Context, limit int) ([]store.Record, error)
}

// Server routes HTTP requests to the planner
type Server struct {
	planner *planner.Planner
	history History
	log     zerolog.Logger
	newID   func() string
	baseCtx context.Context
}

// New returns a server. history may be nil, which disables persistence and
// makes the history endpoints answer 503.
func New(p *planner.Planner, history History, log zerolog.Logger) *Server {
	return &Server{
		planner: p,
		history: history,
		log:     log,
		newID:   uuid.NewString,
		baseCtx: context.Background(),
	}
}

// Handler returns the request router.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		s.route(ctx)
		s.log.Info().
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/fire/calculate":
		if !allow(ctx, fasthttp.MethodPost) {
			return
		}
		s.handleCalculate(ctx)
	case path == "/fire/scenarios":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleScenarios(ctx)
	case path == "/config/investment-types":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleInvestmentTypes(ctx)
	case path == "/fire/history":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleHistoryList(ctx)
	case strings.HasPrefix(path, historyPrefix):
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleHistoryGet(ctx, strings.TrimPrefix(path, historyPrefix))
	case path == "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, ErrorResponse{Status: fasthttp.StatusNotFound, Message: "not found: " + path})
	}
}

func allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, ErrorResponse{Status: fasthttp.StatusMethodNotAllowed, Message: "method not allowed"})
	return false
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	req, err := domain.DecodeRequestJSON(ctx.PostBody())
	if err != nil {
		if errors.Is(err, domain.ErrUnknownProfile) {
			writeError(ctx, ErrorResponse{
				Status:  fasthttp.StatusUnprocessableEntity,
				Message: err.Error(),
				Reason:  domain.ReasonUnknownProfile,
				Errors:  []domain.ValidationError{{Field: "investment_profile", Message: "unknown investment profile"}},
			})
			return
		}
		writeError(ctx, ErrorResponse{Status: fasthttp.StatusBadRequest, Message: "invalid request body: " + err.Error()})
		return
	}

	result, err := s.planner.Plan(s.baseCtx, req)
	if err != nil {
		writeError(ctx, planError(err))
		return
	}

	id := s.newID()
	if s.history != nil {
		if _, err := s.history.Save(s.baseCtx, id, req, result); err != nil {
			s.log.Error().Err(err).Str("calculation_id", id).Msg("saving calculation")
		}
	}

	ctx.Response.Header.Set(CalculationIDHeader, id)
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func planError(err error) ErrorResponse {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return ErrorResponse{Status: fasthttp.StatusUnprocessableEntity, Message: verrs.Error(), Reason: ReasonValidation, Errors: verrs}
	case errors.Is(err, domain.ErrInsufficientIncome):
		return ErrorResponse{Status: fasthttp.StatusUnprocessableEntity, Message: err.Error(), Reason: domain.ReasonInsufficientIncome}
	default:
		return ErrorResponse{Status: fasthttp.StatusInternalServerError, Message: err.Error(), Reason: domain.ReasonFor(err)}
	}
}

func (s *Server) handleScenarios(ctx *fasthttp.RequestCtx) {
	catalog := s.planner.Engine().Catalog()
	writeJSON(ctx, fasthttp.StatusOK, struct {
		Scenarios          any `json:"scenarios"`
		InvestmentProfiles any `json:"investment_profiles"`
	}{catalog.Tiers, catalog.Profiles})
}

func (s *Server) handleInvestmentTypes(ctx *fasthttp.RequestCtx) {
	catalog := s.planner.Engine().Catalog()
	writeJSON(ctx, fasthttp.StatusOK, struct {
		InvestmentTypes any `json:"investment_types"`
	}{catalog.InvestmentTypes})
}

func (s *Server) historyUnavailable(ctx *fasthttp.RequestCtx) bool {
	if s.history != nil {
		return false
	}
	writeError(ctx, ErrorResponse{Status: fasthttp.StatusServiceUnavailable, Message: "calculation history is not configured"})
	return true
}

func (s *Server) handleHistoryList(ctx *fasthttp.RequestCtx) {
	if s.historyUnavailable(ctx) {
		return
	}
	limit := store.DefaultListLimit
	if ctx.QueryArgs().Has("limit") {
		n, err := ctx.QueryArgs().GetUint("limit")
		if err != nil || n <= 0 {
			writeError(ctx, ErrorResponse{Status: fasthttp.StatusBadRequest, Message: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	records, err := s.history.List(s.baseCtx, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("listing history")
		writeError(ctx, ErrorResponse{Status: fasthttp.StatusInternalServerError, Message: "listing history failed", Reason: domain.ReasonInternal})
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, records)
}

func (s *Server) handleHistoryGet(ctx *fasthttp.RequestCtx, id string) {
	if s.historyUnavailable(ctx) {
		return
	}
	if id == "" || strings.Contains(id, "/") {
		writeError(ctx, ErrorResponse{Status: fasthttp.StatusNotFound, Message: "calculation not found"})
		return
	}

	rec, err := s.history.Get(s.baseCtx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(ctx, ErrorResponse{Status: fasthttp.StatusNotFound, Message: err.Error()})
			return
		}
		s.log.Error().Err(err).Str("calculation_id", id).Msg("loading history")
		writeError(ctx, ErrorResponse{Status: fasthttp.StatusInternalServerError, Message: "loading calculation failed", Reason: domain.ReasonInternal})
		return
	}
	ctx.Response.Header.Set(CalculationIDHeader, rec.ID)
	writeJSON(ctx, fasthttp.StatusOK, rec)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener, settings config.ServerSettings) error {
	s.baseCtx = ctx
	srv := &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "fire",
		ReadTimeout:        settings.ReadTimeout,
		WriteTimeout:       settings.WriteTimeout,
		MaxRequestBodySize: settings.MaxBodySize,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errCh
	}
}

// ListenAndServe listens on settings.Addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, settings config.ServerSettings) error {
	ln, err := net.Listen("tcp", settings.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", settings.Addr, err)
	}
	s.log.Info().Str("addr", ln.Addr().String()).Msg("fire server listening")
	return s.Serve(ctx, ln, settings)
}
