package handler

import (
	"net/http"
	"time"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/middleware"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/http/response"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/service"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/session"
)

// AuthHandler drives signup, login and logout through the session machine
// and tells the client which screen it lands on.
type AuthHandler struct {
	identity service.IdentityServiceInterface
	tokens   service.TokenServiceInterface
}

func NewAuthHandler(identity service.IdentityServiceInterface, tokens service.TokenServiceInterface) *AuthHandler {
	return &AuthHandler{identity: identity, tokens: tokens}
}

type authResult struct {
	Screen   session.Screen       `json:"screen"`
	Employee *domain.Employee     `json:"employee,omitempty"`
	Token    *service.IssuedToken `json:"token,omitempty"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "signup", status, time.Since(start))
	}()

	var in service.SignupInput
	if !decodeJSON(w, r, &in) {
		status = "failure"
		return
	}
	m := session.NewMachine(h.identity)
	if _, err := m.ShowSignup(r.Context()); err != nil {
		status = "failure"
		response.FromError(w, r, err)
		return
	}
	st, emp, err := m.Signup(r.Context(), in)
	if err != nil {
		status = "failure"
		writeAuthError(w, r, err, st.Screen)
		return
	}
	observability.Audit(r, observability.AuditInput{
		EventName:   "auth.signup",
		ActorUserID: actorID(emp.ID),
		TargetType:  "employee",
		TargetID:    actorID(emp.ID),
		Action:      "create",
		Outcome:     "success",
	})
	response.JSON(w, r, http.StatusCreated, authResult{Screen: st.Screen, Employee: emp})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "login", status, time.Since(start))
	}()

	var in service.LoginInput
	if !decodeJSON(w, r, &in) {
		status = "failure"
		return
	}
	m := session.NewMachine(h.identity)
	st, err := m.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		status = "failure"
		observability.Audit(r, observability.AuditInput{
			EventName:  "auth.login",
			TargetType: "employee",
			Action:     "login",
			Outcome:    "failure",
			Reason:     apperr.CodeOf(err),
		})
		writeAuthError(w, r, err, st.Screen)
		return
	}
	tok, err := h.tokens.Issue(r.Context(), st.Employee)
	if err != nil {
		status = "failure"
		response.FromError(w, r, err)
		return
	}
	observability.Audit(r, observability.AuditInput{
		EventName:   "auth.login",
		ActorUserID: actorID(st.Employee.ID),
		TargetType:  "employee",
		TargetID:    actorID(st.Employee.ID),
		Action:      "login",
		Outcome:     "success",
	})
	response.JSON(w, r, http.StatusOK, authResult{Screen: st.Screen, Employee: st.Employee, Token: tok})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "success"
	defer func() {
		observability.RecordAuthRequestDuration(r.Context(), "logout", status, time.Since(start))
	}()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		status = "failure"
		observability.RecordAuthLogout(r.Context(), "failure")
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	id, err := claims.EmployeeID()
	if err != nil {
		status = "failure"
		observability.RecordAuthLogout(r.Context(), "failure")
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid subject", nil)
		return
	}

	m := session.Restore(h.identity, session.State{
		Screen:   session.ScreenHome,
		Employee: &domain.Employee{ID: id, Email: claims.Email},
	})
	if err := h.tokens.Revoke(r.Context(), claims); err != nil {
		status = "failure"
		observability.RecordAuthLogout(r.Context(), "failure")
		response.FromError(w, r, err)
		return
	}
	st, err := m.Logout(r.Context())
	if err != nil {
		status = "failure"
		observability.RecordAuthLogout(r.Context(), "failure")
		response.FromError(w, r, err)
		return
	}
	observability.RecordAuthLogout(r.Context(), "success")
	observability.Audit(r, observability.AuditInput{
		EventName:   "auth.logout",
		ActorUserID: actorID(id),
		TargetType:  "employee",
		TargetID:    actorID(id),
		Action:      "logout",
		Outcome:     "success",
	})
	response.JSON(w, r, http.StatusOK, authResult{Screen: st.Screen})
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error, screen session.Screen) {
	response.Error(w, r, response.StatusOf(err), apperr.CodeOf(err), apperr.MessageOf(err), map[string]any{"screen": screen})
}
