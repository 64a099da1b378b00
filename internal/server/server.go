package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/iwvelando/pension-quest/internal/projection"
	"github.com/iwvelando/pension-quest/internal/validator"
	"github.com/iwvelando/pension-quest/internal/wizard"
	"github.com/iwvelando/pension-quest/pkg/constants"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	assumptions    projection.Assumptions
	now            func() time.Time
}

// NewHandler constructs the HTTP handler that serves the questionnaire API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	return newHandler(logger, cfg, version, time.Now)
}

func newHandler(logger *zap.Logger, cfg *Config, version string, now func() time.Time) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg, _ = LoadConfig("")
	}

	maxRequestSize := cfg.RequestSizeBytes()
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
		assumptions:    cfg.Assumptions,
		now:            now,
	}

	mux := http.NewServeMux()

	// Single-field validation for form inputs
	mux.HandleFunc("/api/validate", h.handleValidate)

	// Stateless wizard step: the client sends back the accepted answers each time
	mux.HandleFunc("/api/wizard", h.handleWizard)

	// All four answers at once
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return h.withRequestID(mux)
}

type validateRequest struct {
	Field    string `json:"field"`
	Value    string `json:"value"`
	Birthday string `json:"birthday,omitempty"`
}

type wizardRequest struct {
	Answers wizard.Answers `json:"answers"`
	Value   *string        `json:"value,omitempty"`
}

type wizardResponse struct {
	Step             string                 `json:"step"`
	Progress         string                 `json:"progress"`
	ProgressFraction float64                `json:"progressFraction"`
	Complete         bool                   `json:"complete"`
	Answers          wizard.Answers         `json:"answers"`
	Prompt           *wizard.Prompt         `json:"prompt,omitempty"`
	Outcome          *validator.Outcome     `json:"outcome,omitempty"`
	Projection       *projection.Projection `json:"projection,omitempty"`
}

type projectionResponse struct {
	Answers    wizard.Answers        `json:"answers"`
	Projection projection.Projection `json:"projection"`
	Schedule   []projection.YearRow  `json:"schedule"`
}

type invalidAnswersResponse struct {
	Error    string              `json:"error"`
	Outcomes []validator.Outcome `json:"outcomes"`
}

func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("request served",
			zap.String("op", "server.withRequestID"),
			zap.String("requestId", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleValidate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req validateRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	field, err := validator.ParseField(req.Field)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	now := h.now()
	var ctx validator.Context
	if req.Birthday != "" {
		if birthday, err := validator.ValidateBirthday(req.Birthday, now); err == nil {
			ctx.Birthday = birthday
		}
	}

	outcome := validator.Validate(field, req.Value, ctx, now)
	if !outcome.Valid {
		h.logger.Debug("answer rejected",
			zap.String("op", op),
			zap.String("field", string(field)),
			zap.String("kind", string(outcome.Kind)),
		)
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *handler) handleWizard(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleWizard"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req wizardRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	now := h.now()
	state, replayed := wizard.Replay(h.assumptions, req.Answers, now)
	if replayed.Field != "" && !replayed.Valid {
		h.writeJSON(w, http.StatusUnprocessableEntity, invalidAnswersResponse{
			Error:    "previously accepted answers no longer validate",
			Outcomes: []validator.Outcome{replayed},
		})
		return
	}

	resp := wizardResponse{}
	if req.Value != nil {
		var outcome validator.Outcome
		state, outcome = wizard.Submit(state, *req.Value, now)
		resp.Outcome = &outcome
	}

	resp.Step = state.Step.String()
	resp.Progress = state.Progress()
	resp.ProgressFraction = state.ProgressFraction()
	resp.Complete = state.Complete()
	resp.Answers = state.Answers
	if prompt, ok := state.Prompt(); ok {
		resp.Prompt = &prompt
	}
	resp.Projection = state.Projection

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var answers wizard.Answers
	if !h.decode(w, r, &answers, op) {
		return
	}

	now := h.now()
	birthday, birthdayErr := validator.ValidateBirthday(answers.Birthday, now)
	ctx := validator.Context{}
	if birthdayErr == nil {
		ctx.Birthday = birthday
	}

	// Validate every field so the client can show all problems at once.
	var invalid []validator.Outcome
	for _, field := range validator.Fields {
		outcome := validator.Validate(field, answers.Get(field), ctx, now)
		if !outcome.Valid {
			invalid = append(invalid, outcome)
		}
	}
	if len(invalid) > 0 {
		h.writeJSON(w, http.StatusUnprocessableEntity, invalidAnswersResponse{
			Error:    "one or more answers are invalid",
			Outcomes: invalid,
		})
		return
	}

	state, _ := wizard.Replay(h.assumptions, answers, now)
	if !state.Complete() || state.Projection == nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, "failed to complete questionnaire", op)
		return
	}

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Answers:    state.Answers,
		Projection: *state.Projection,
		Schedule:   h.assumptions.Schedule(state.ProjectionAnswers(), now),
	})
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxRequestSize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
