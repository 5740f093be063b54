package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/LeventeLantos/household-messaging/internal/compose"
	"github.com/LeventeLantos/household-messaging/internal/i18n"
	"github.com/LeventeLantos/household-messaging/internal/model"
	"github.com/LeventeLantos/household-messaging/internal/repo"
	"github.com/LeventeLantos/household-messaging/internal/scheduler"
	"github.com/LeventeLantos/household-messaging/internal/service"
)

const (
	defaultLimit = 50
	maxLimit     = 200
	maxBodyBytes = 1 << 20
)

type AutoSendRunner interface {
	Run(ctx context.Context, opts service.RunOptions) (service.Summary, error)
	ForceTest(ctx context.Context, contactID int64) (service.Summary, error)
	Compose(ctx context.Context, kind model.MessageType, items []model.Item, lang i18n.Language, groupName string) string
}

type Store interface {
	ListMessages(ctx context.Context, limit, offset int) ([]model.MessageRecord, error)
	ListOutcomes(ctx context.Context, contactID int64, limit int) ([]model.AutoSendOutcome, error)
	AdjustGrocery(ctx context.Context, id int64, up bool) (model.GroceryItem, error)
}

type Handler struct {
	sched    scheduler.Trigger
	sender   AutoSendRunner
	store    Store
	validate *validator.Validate
}

// NewHandler accepts a nil sender; auto-send endpoints then answer 500.
func NewHandler(s scheduler.Trigger, sender AutoSendRunner, store Store) *Handler {
	return &Handler{
		sched:    s,
		sender:   sender,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type runRequest struct {
	ContactID int64 `json:"contactId" validate:"required_if=ForceTest true,gte=0"`
	ForceTest bool  `json:"forceTest"`
}

type testRequest struct {
	ContactID int64 `json:"contactId" validate:"required,gt=0"`
}

type adjustRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type previewRequest struct {
	Type      model.MessageType `json:"type" validate:"required,oneof=task meal grocery"`
	Language  string            `json:"language"`
	GroupName string            `json:"groupName" validate:"max=80"`
	Items     []model.Item      `json:"items" validate:"max=200,dive"`
}

type runResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
	Result  *service.Summary `json:"result,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) SchedulerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sched.Status())
}

func (h *Handler) SchedulerStart(w http.ResponseWriter, r *http.Request) {
	h.sched.Start()
	writeJSON(w, http.StatusOK, h.sched.Status())
}

func (h *Handler) SchedulerStop(w http.ResponseWriter, r *http.Request) {
	h.sched.Stop()
	writeJSON(w, http.StatusOK, h.sched.Status())
}

// RunAutoSend accepts an empty body as "run every due contact".
func (h *Handler) RunAutoSend(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := h.decode(r, &req, true); err != nil {
		writeJSON(w, http.StatusBadRequest, runResponse{Error: err.Error()})
		return
	}
	if h.sender == nil {
		writeJSON(w, http.StatusInternalServerError, runResponse{Error: service.ErrNotConfigured.Error()})
		return
	}

	var (
		sum service.Summary
		err error
	)
	if req.ForceTest {
		sum, err = h.sender.ForceTest(r.Context(), req.ContactID)
	} else {
		sum, err = h.sender.Run(r.Context(), service.RunOptions{ContactID: req.ContactID})
	}
	h.writeRun(w, sum, err)
}

func (h *Handler) ForceTest(w http.ResponseWriter, r *http.Request) {
	var req testRequest
	if err := h.decode(r, &req, false); err != nil {
		writeJSON(w, http.StatusBadRequest, runResponse{Error: err.Error()})
		return
	}
	if h.sender == nil {
		writeJSON(w, http.StatusInternalServerError, runResponse{Error: service.ErrNotConfigured.Error()})
		return
	}

	sum, err := h.sender.ForceTest(r.Context(), req.ContactID)
	h.writeRun(w, sum, err)
}

func (h *Handler) writeRun(w http.ResponseWriter, sum service.Summary, err error) {
	if err != nil {
		writeJSON(w, statusFor(err), runResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, runResponse{
		Success: true,
		Message: fmt.Sprintf("processed %d contact(s): %d sent, %d failed, %d skipped", sum.Processed, sum.Sent, sum.Failed, sum.Skipped),
		Result:  &sum,
	})
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	limit := clampLimit(parseInt(r.URL.Query().Get("limit"), defaultLimit))
	offset := max(parseInt(r.URL.Query().Get("offset"), 0), 0)

	items, err := h.store.ListMessages(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) ListOutcomes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid contact id", http.StatusBadRequest)
		return
	}
	limit := clampLimit(parseInt(r.URL.Query().Get("limit"), defaultLimit))

	items, err := h.store.ListOutcomes(r.Context(), id, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) AdjustGrocery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid grocery id", http.StatusBadRequest)
		return
	}

	var req adjustRequest
	if err := h.decode(r, &req, false); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.store.AdjustGrocery(r.Context(), id, req.Direction == "up")
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"item": item,
		"step": model.IncrementStep(item.Category, item.Unit),
	})
}

func (h *Handler) ComposePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := h.decode(r, &req, false); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lang := i18n.ParseLanguage(req.Language)
	var text string
	if h.sender != nil {
		text = h.sender.Compose(r.Context(), req.Type, req.Items, lang, req.GroupName)
	} else {
		text = compose.New(nil).Compose(req.Type, req.Items, lang, req.GroupName)
	}

	writeJSON(w, http.StatusOK, map[string]any{"text": text, "language": lang})
}

// decode reads a JSON body into dst and validates it. Unknown fields are
// rejected.
func (h *Handler) decode(r *http.Request, dst any, allowEmpty bool) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		if !allowEmpty {
			return errors.New("request body is required")
		}
	} else {
		dec := json.NewDecoder(strings.NewReader(string(body)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil {
			return fmt.Errorf("invalid json: %w", err)
		}
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid request: %s", strings.Join(parts, "; "))
		}
		return err
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAutoSendDisabled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
