package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/ics"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/preferences"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/storage"
)

// AvailabilityHandler exposes the slot computation engine over HTTP. The
// calendar repository is optional; without it only inline busy data is
// accepted.
type AvailabilityHandler struct {
	logger    *slog.Logger
	prefs     preferences.Provider
	calendars *storage.CalendarRepository
	limits    schedule.WindowLimits
}

func NewAvailabilityHandler(logger *slog.Logger, prefs preferences.Provider, calendars *storage.CalendarRepository, limits schedule.WindowLimits) *AvailabilityHandler {
	return &AvailabilityHandler{
		logger:    logger,
		prefs:     prefs,
		calendars: calendars,
		limits:    limits,
	}
}

type windowRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Timezone   string `json:"timezone"`
	DailyOpen  string `json:"daily_open,omitempty"`
	DailyClose string `json:"daily_close,omitempty"`
}

type intervalItem struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type attendeeRequest struct {
	UserID              string         `json:"user_id,omitempty"`
	Timezone            string         `json:"timezone,omitempty"`
	WorkDays            []int          `json:"work_days,omitempty"`
	WorkStart           string         `json:"work_start,omitempty"`
	WorkEnd             string         `json:"work_end,omitempty"`
	SlotDurationMinutes int            `json:"slot_duration_minutes,omitempty"`
	BufferBeforeMinutes int            `json:"buffer_before_minutes,omitempty"`
	BufferAfterMinutes  int            `json:"buffer_after_minutes,omitempty"`
	Busy                []intervalItem `json:"busy,omitempty"`
	BusyICS             string         `json:"busy_ics,omitempty"`
	Preferred           []intervalItem `json:"preferred,omitempty"`
}

type recurrenceRequest struct {
	Frequency string `json:"frequency"`
	Interval  int    `json:"interval,omitempty"`
	EndDate   string `json:"end_date"`
}

type slotsRequest struct {
	Window              windowRequest   `json:"window"`
	ReceiverTimezone    string          `json:"receiver_timezone,omitempty"`
	SlotDurationMinutes int             `json:"slot_duration_minutes,omitempty"`
	Attendee            attendeeRequest `json:"attendee"`
}

type meetingAssistRequest struct {
	Window              windowRequest      `json:"window"`
	ReceiverTimezone    string             `json:"receiver_timezone,omitempty"`
	SlotDurationMinutes int                `json:"slot_duration_minutes,omitempty"`
	Attendees           []attendeeRequest  `json:"attendees"`
	Recurrence          *recurrenceRequest `json:"recurrence,omitempty"`
	TopK                int                `json:"top_k,omitempty"`
}

type slotsResponse struct {
	SlotsByDate schedule.SlotsByDate `json:"slots_by_date"`
	Dates       []string             `json:"dates"`
	TotalSlots  int                  `json:"total_slots"`
}

type occurrenceResponse struct {
	WindowStart string               `json:"window_start"`
	WindowEnd   string               `json:"window_end"`
	SlotsByDate schedule.SlotsByDate `json:"slots_by_date"`
	TotalSlots  int                  `json:"total_slots"`
}

type meetingAssistResponse struct {
	Occurrences []occurrenceResponse `json:"occurrences"`
}

// Slots computes a single attendee's availability.
func (h *AvailabilityHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req slotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	win, err := h.buildWindow(req.Window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	receiver, err := h.receiverLocation(req.ReceiverTimezone, win)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	attendee, err := h.resolveAttendee(r, req.Attendee, win)
	if err != nil {
		if isBadRequest(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to resolve attendee data", http.StatusInternalServerError)
		return
	}
	if attendee.DataMissing {
		// Single-attendee case: missing busy data means zero availability.
		writeJSON(w, http.StatusOK, slotsResponse{SlotsByDate: schedule.SlotsByDate{}, Dates: []string{}})
		return
	}

	out, err := schedule.GenerateSlots(win, attendee.Busy, attendee.Policy, slotDuration(req.SlotDurationMinutes), receiver)
	if err != nil {
		if isBadRequest(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "slot computation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, slotsResponse{
		SlotsByDate: out,
		Dates:       out.Dates(),
		TotalSlots:  out.TotalSlots(),
	})
}

// MeetingAssist intersects multiple attendees' availability, optionally over a
// recurrence of the window. Any invalid input is a 400; a valid request with
// no mutual slots is a 200 with empty results.
func (h *AvailabilityHandler) MeetingAssist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req meetingAssistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if len(req.Attendees) == 0 {
		http.Error(w, "at least one attendee required", http.StatusBadRequest)
		return
	}

	win, err := h.buildWindow(req.Window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	receiver, err := h.receiverLocation(req.ReceiverTimezone, win)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	windows := []schedule.TimeWindow{win}
	if req.Recurrence != nil {
		rec, err := h.buildRecurrence(*req.Recurrence, win)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		windows, err = schedule.ExpandWindows(win, rec)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	resp := meetingAssistResponse{Occurrences: make([]occurrenceResponse, 0, len(windows))}
	for _, occWin := range windows {
		attendees := make([]schedule.Attendee, 0, len(req.Attendees))
		for _, ar := range req.Attendees {
			a, err := h.resolveAttendee(r, ar, occWin)
			if err != nil {
				if isBadRequest(err) {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				http.Error(w, "failed to resolve attendee data", http.StatusInternalServerError)
				return
			}
			attendees = append(attendees, a)
		}

		out, err := schedule.IntersectAvailability(r.Context(), occWin, attendees, slotDuration(req.SlotDurationMinutes), receiver)
		if err != nil {
			if isBadRequest(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "availability computation failed", http.StatusInternalServerError)
			return
		}
		if req.TopK > 0 {
			out = out.TopK(req.TopK)
		}
		resp.Occurrences = append(resp.Occurrences, occurrenceResponse{
			WindowStart: occWin.Start.UTC().Format(time.RFC3339),
			WindowEnd:   occWin.End.UTC().Format(time.RFC3339),
			SlotsByDate: out,
			TotalSlots:  out.TotalSlots(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AvailabilityHandler) buildWindow(wr windowRequest) (schedule.TimeWindow, error) {
	openMin := 0
	if s := strings.TrimSpace(wr.DailyOpen); s != "" {
		m, err := schedule.ParseClock(s)
		if err != nil {
			return schedule.TimeWindow{}, fmt.Errorf("%w: %v", schedule.ErrInvalidWindow, err)
		}
		openMin = m
	}
	closeMin := 24 * 60
	if s := strings.TrimSpace(wr.DailyClose); s != "" {
		m, err := schedule.ParseClock(s)
		if err != nil {
			return schedule.TimeWindow{}, fmt.Errorf("%w: %v", schedule.ErrInvalidWindow, err)
		}
		closeMin = m
	}
	zone := strings.TrimSpace(wr.Timezone)
	if zone == "" {
		zone = "UTC"
	}
	return schedule.NewTimeWindow(strings.TrimSpace(wr.StartDate), strings.TrimSpace(wr.EndDate), zone, openMin, closeMin, h.limits)
}

func (h *AvailabilityHandler) receiverLocation(zone string, win schedule.TimeWindow) (*time.Location, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return win.Loc, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown receiver timezone", schedule.ErrInvalidWindow)
	}
	return loc, nil
}

func (h *AvailabilityHandler) buildRecurrence(rr recurrenceRequest, win schedule.TimeWindow) (schedule.Recurrence, error) {
	until, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(rr.EndDate), win.Loc)
	if err != nil {
		return schedule.Recurrence{}, fmt.Errorf("%w: bad recurrence end date", schedule.ErrInvalidWindow)
	}
	return schedule.Recurrence{
		Frequency: rr.Frequency,
		Interval:  rr.Interval,
		// Until is inclusive, so the whole end date counts but the next
		// day's midnight does not.
		Until: until.AddDate(0, 0, 1).Add(-time.Second),
	}, nil
}

// resolveAttendee turns a request attendee into engine inputs. Inline
// preference fields take precedence; otherwise stored/remote preferences are
// loaded by user id. Busy data merges inline intervals, an optional iCalendar
// payload and, when a calendar store is configured, the user's synced events.
func (h *AvailabilityHandler) resolveAttendee(r *http.Request, ar attendeeRequest, win schedule.TimeWindow) (schedule.Attendee, error) {
	ctx := r.Context()
	userID := strings.TrimSpace(ar.UserID)

	pol, preferred, err := h.attendeePolicy(r, ar, win)
	if err != nil {
		return schedule.Attendee{}, err
	}

	var raw []schedule.Interval
	for _, item := range ar.Busy {
		iv, err := parseIntervalItem(item)
		if err != nil {
			return schedule.Attendee{}, err
		}
		raw = append(raw, iv)
	}
	if ar.BusyICS != "" {
		icsBusy, err := ics.ParseBusyIntervals([]byte(ar.BusyICS), pol.Loc, h.logger)
		if err != nil {
			return schedule.Attendee{}, fmt.Errorf("%w: bad iCalendar payload", schedule.ErrInvalidPreference)
		}
		raw = append(raw, icsBusy...)
	}

	dataMissing := false
	if userID != "" && h.calendars != nil {
		stored, err := h.calendars.ListBusyIntervals(ctx, userID, win.Start, win.End)
		if err != nil {
			// Treat an unreadable calendar as zero availability for this
			// attendee; aggregation fails closed rather than guessing.
			h.logger.Warn("busy interval fetch failed", "err", err, "user_id", userID)
			dataMissing = true
		} else {
			raw = append(raw, stored...)
		}
	}

	for _, item := range ar.Preferred {
		iv, err := parseIntervalItem(item)
		if err != nil {
			return schedule.Attendee{}, err
		}
		preferred = append(preferred, iv)
	}

	return schedule.Attendee{
		ID:          userID,
		Busy:        schedule.NewBusySet(raw),
		Policy:      pol,
		Preferred:   preferred,
		DataMissing: dataMissing,
	}, nil
}

func (h *AvailabilityHandler) attendeePolicy(r *http.Request, ar attendeeRequest, win schedule.TimeWindow) (schedule.Policy, []schedule.Interval, error) {
	inline := ar.Timezone != "" || ar.WorkStart != "" || ar.WorkEnd != "" ||
		len(ar.WorkDays) > 0 || ar.SlotDurationMinutes > 0 ||
		ar.BufferBeforeMinutes > 0 || ar.BufferAfterMinutes > 0

	if !inline && strings.TrimSpace(ar.UserID) != "" {
		return h.prefs.Load(r.Context(), strings.TrimSpace(ar.UserID), win.Start, win.End)
	}

	loc := win.Loc
	if z := strings.TrimSpace(ar.Timezone); z != "" {
		var err error
		loc, err = time.LoadLocation(z)
		if err != nil {
			return schedule.Policy{}, nil, fmt.Errorf("%w: unknown attendee timezone", schedule.ErrInvalidPreference)
		}
	}

	pol := schedule.DefaultPolicy(loc)
	if len(ar.WorkDays) > 0 {
		var days [7]bool
		for _, wd := range ar.WorkDays {
			if wd < 0 || wd > 6 {
				return schedule.Policy{}, nil, fmt.Errorf("%w: work day out of range", schedule.ErrInvalidPreference)
			}
			days[wd] = true
		}
		pol.WorkDays = days
	}
	if ar.WorkStart != "" {
		m, err := schedule.ParseClock(ar.WorkStart)
		if err != nil {
			return schedule.Policy{}, nil, fmt.Errorf("%w: %v", schedule.ErrInvalidPreference, err)
		}
		pol.WorkStart = m
	}
	if ar.WorkEnd != "" {
		m, err := schedule.ParseClock(ar.WorkEnd)
		if err != nil {
			return schedule.Policy{}, nil, fmt.Errorf("%w: %v", schedule.ErrInvalidPreference, err)
		}
		pol.WorkEnd = m
	}
	if ar.SlotDurationMinutes > 0 {
		pol.SlotDuration = time.Duration(ar.SlotDurationMinutes) * time.Minute
	}
	pol.BufferBefore = time.Duration(ar.BufferBeforeMinutes) * time.Minute
	pol.BufferAfter = time.Duration(ar.BufferAfterMinutes) * time.Minute

	if err := pol.Validate(); err != nil {
		return schedule.Policy{}, nil, err
	}
	return pol, nil, nil
}

func parseIntervalItem(item intervalItem) (schedule.Interval, error) {
	start, err := time.Parse(time.RFC3339, item.Start)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("%w: bad interval start", schedule.ErrInvalidWindow)
	}
	end, err := time.Parse(time.RFC3339, item.End)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("%w: bad interval end", schedule.ErrInvalidWindow)
	}
	iv := schedule.Interval{Start: start, End: end}
	if !iv.IsValid() {
		return schedule.Interval{}, fmt.Errorf("%w: interval end not after start", schedule.ErrInvalidWindow)
	}
	return iv, nil
}

func slotDuration(minutes int) time.Duration {
	if minutes <= 0 {
		return 0 // engine falls back to the policy default
	}
	return time.Duration(minutes) * time.Minute
}

func isBadRequest(err error) bool {
	return errors.Is(err, schedule.ErrInvalidWindow) || errors.Is(err, schedule.ErrInvalidPreference)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
