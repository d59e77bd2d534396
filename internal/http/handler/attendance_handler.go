package handler

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/response"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/repository"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/service"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/workflow"
)

const (
	dayStateNone      = "not_checked_in"
	dayStateCheckedIn = "checked_in"
	dayStateCompleted = "completed"
)

type AttendanceHandler struct {
	attendance service.AttendanceServiceInterface
}

func NewAttendanceHandler(attendance service.AttendanceServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

type challengeRequest struct {
	Purpose string `json:"purpose"`
}

type challengeResponse struct {
	ChallengeID string            `json:"challenge_id"`
	Purpose     biometric.Purpose `json:"purpose"`
	Nonce       string            `json:"nonce"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

type actionRequest struct {
	DeviceStatus string `json:"device_status"`
	ChallengeID  string `json:"challenge_id"`
	Signature    string `json:"signature"`
}

type actionResponse struct {
	Outcome workflow.OutcomeKind     `json:"outcome"`
	Record  *domain.AttendanceRecord `json:"record"`
}

type todayResponse struct {
	State  string                   `json:"state"`
	Record *domain.AttendanceRecord `json:"record"`
}

type historyResponse struct {
	Items      []domain.AttendanceRecord `json:"items"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
	Total      int64                     `json:"total"`
	TotalPages int                       `json:"total_pages"`
}

// Challenge issues a single-use nonce the device signs with its marker.
func (h *AttendanceHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	id, ok := currentEmployee(w, r)
	if !ok {
		return
	}
	var req challengeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	purpose, ok := biometric.ParsePurpose(req.Purpose)
	if !ok {
		response.Error(w, r, http.StatusBadRequest, "INVALID_PURPOSE", "purpose must be check_in or check_out", nil)
		return
	}
	c, err := h.attendance.IssueChallenge(r.Context(), id, purpose)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, challengeResponse{
		ChallengeID: c.ID,
		Purpose:     c.Purpose,
		Nonce:       base64.StdEncoding.EncodeToString(c.Nonce),
		ExpiresAt:   c.ExpiresAt,
	})
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, workflow.IntentCheckIn)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, workflow.IntentCheckOut)
}

func (h *AttendanceHandler) act(w http.ResponseWriter, r *http.Request, intent workflow.Intent) {
	id, ok := currentEmployee(w, r)
	if !ok {
		return
	}
	var req actionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var sig []byte
	if raw := strings.TrimSpace(req.Signature); raw != "" {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "INVALID_SIGNATURE", "signature must be base64 encoded", nil)
			return
		}
		sig = decoded
	}

	out, err := h.attendance.Execute(r.Context(), workflow.Command{
		EmployeeID: id,
		Intent:     intent,
		Evidence: workflow.Evidence{
			DeviceStatus: req.DeviceStatus,
			ChallengeID:  req.ChallengeID,
			Signature:    sig,
		},
	})
	if err != nil {
		response.FromError(w, r, err)
		return
	}

	audit := observability.AuditInput{
		EventName:   "attendance." + string(intent),
		ActorUserID: actorID(id),
		TargetType:  "attendance_record",
		Action:      string(intent),
		Outcome:     string(out.Kind),
		Reason:      out.Reason,
	}
	if out.Record != nil {
		audit.TargetID = actorID(out.Record.ID)
	}
	observability.Audit(r, audit)

	switch out.Kind {
	case workflow.OutcomeSuccess:
		response.JSON(w, r, http.StatusOK, actionResponse{Outcome: out.Kind, Record: out.Record})
	case workflow.OutcomeRequireBiometricEnrollment:
		response.Error(w, r, http.StatusConflict, "BIOMETRIC_ENROLLMENT_REQUIRED", "register a biometric marker before recording attendance",
			map[string]any{"outcome": out.Kind})
	default:
		response.Error(w, r, http.StatusConflict, "ATTENDANCE_REJECTED", out.Reason,
			map[string]any{"outcome": out.Kind, "reason": out.Reason})
	}
}

// Today reports the caller's record for the current work date.
func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	id, ok := currentEmployee(w, r)
	if !ok {
		return
	}
	rec, err := h.attendance.Today(r.Context(), id)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, todayResponse{State: dayState(rec), Record: rec})
}

func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := currentEmployee(w, r)
	if !ok {
		return
	}
	pageReq, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	res, err := h.attendance.History(r.Context(), id, pageReq)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, toHistoryResponse(res))
}

func dayState(rec *domain.AttendanceRecord) string {
	switch {
	case rec == nil:
		return dayStateNone
	case rec.Open():
		return dayStateCheckedIn
	default:
		return dayStateCompleted
	}
}

func toHistoryResponse(res repository.PageResult[domain.AttendanceRecord]) historyResponse {
	items := res.Items
	if items == nil {
		items = []domain.AttendanceRecord{}
	}
	return historyResponse{
		Items:      items,
		Page:       res.Page,
		PageSize:   res.PageSize,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}
}
