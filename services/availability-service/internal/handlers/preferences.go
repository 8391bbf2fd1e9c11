package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/storage"
)

// PreferenceHandler is the boundary where loosely shaped preference input is
// validated once; the engine only ever sees a checked Policy.
type PreferenceHandler struct {
	repo   *storage.PreferenceRepository
	logger *slog.Logger
}

func NewPreferenceHandler(repo *storage.PreferenceRepository, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{repo: repo, logger: logger}
}

type preferencePayload struct {
	UserID              string `json:"user_id"`
	Timezone            string `json:"timezone"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	WorkDays            []int  `json:"work_days"`
	WorkStart           string `json:"work_start"`
	WorkEnd             string `json:"work_end"`
	BufferBeforeMinutes int    `json:"buffer_before_minutes"`
	BufferAfterMinutes  int    `json:"buffer_after_minutes"`
}

func (h *PreferenceHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PreferenceHandler) get(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	rec, err := h.repo.Get(r.Context(), userID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "preferences not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load preferences", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, preferencePayload{
		UserID:              rec.UserID,
		Timezone:            rec.Timezone,
		SlotDurationMinutes: rec.SlotDurationMinutes,
		WorkDays:            rec.WorkDays,
		WorkStart:           minuteClock(rec.WorkStartMinute),
		WorkEnd:             minuteClock(rec.WorkEndMinute),
		BufferBeforeMinutes: rec.BufferBeforeMinutes,
		BufferAfterMinutes:  rec.BufferAfterMinutes,
	})
}

func (h *PreferenceHandler) put(w http.ResponseWriter, r *http.Request) {
	var req preferencePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	workStart, err := schedule.ParseClock(req.WorkStart)
	if err != nil {
		http.Error(w, "bad work_start", http.StatusBadRequest)
		return
	}
	workEnd, err := schedule.ParseClock(req.WorkEnd)
	if err != nil {
		http.Error(w, "bad work_end", http.StatusBadRequest)
		return
	}

	rec := storage.PreferenceRecord{
		UserID:              req.UserID,
		Timezone:            strings.TrimSpace(req.Timezone),
		SlotDurationMinutes: req.SlotDurationMinutes,
		WorkDays:            req.WorkDays,
		WorkStartMinute:     workStart,
		WorkEndMinute:       workEnd,
		BufferBeforeMinutes: req.BufferBeforeMinutes,
		BufferAfterMinutes:  req.BufferAfterMinutes,
	}

	// Reject records the engine would refuse later.
	if _, err := rec.Policy(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Upsert(r.Context(), rec); err != nil {
		h.logger.Error("preference upsert failed", "err", err, "user_id", req.UserID)
		http.Error(w, "failed to store preferences", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func minuteClock(m int) string {
	return time.Date(2000, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("15:04")
}
