package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/response"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/service"
)

type EmployeeHandler struct {
	identity service.IdentityServiceInterface
}

func NewEmployeeHandler(identity service.IdentityServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{identity: identity}
}

func (h *EmployeeHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := currentEmployee(w, r)
	if !ok {
		return
	}
	emp, err := h.identity.Find(r.Context(), id)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, emp)
}

type registerBiometricRequest struct {
	Marker string `json:"marker"`
}

// BiometricStatus reports whether the caller has enrolled a device marker.
func (h *EmployeeHandler) BiometricStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := currentEmployee(w, r)
	if !ok {
		return
	}
	st, err := h.identity.BiometricStatus(r.Context(), id)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, st)
}

// RegisterBiometric enrolls (or replaces) the caller's device marker.
func (h *EmployeeHandler) RegisterBiometric(w http.ResponseWriter, r *http.Request) {
	id, ok := currentEmployee(w, r)
	if !ok {
		return
	}
	var req registerBiometricRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	marker, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.Marker))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "INVALID_BIOMETRIC_MARKER", "marker must be base64 encoded", nil)
		return
	}
	reg, err := h.identity.RegisterBiometric(r.Context(), id, marker)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	observability.Audit(r, observability.AuditInput{
		EventName:   "biometric.register",
		ActorUserID: actorID(id),
		TargetType:  "biometric_registration",
		TargetID:    actorID(id),
		Action:      "register",
		Outcome:     "success",
	})
	response.JSON(w, r, http.StatusCreated, reg)
}
