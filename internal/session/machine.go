package session

import (
	"context"
	"sync"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/apperr"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/observability"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/service"
)

type Screen string

const (
	ScreenLogin  Screen = "login"
	ScreenSignup Screen = "signup"
	ScreenHome   Screen = "home"
)

var ErrInvalidTransition = apperr.Conflict("INVALID_TRANSITION", "action is not available from the current screen")

// State is SignedOut on the login or signup screen, or SignedIn on home with
// the authenticated employee.
type State struct {
	Screen   Screen
	Employee *domain.Employee
}

func (s State) SignedIn() bool { return s.Screen == ScreenHome && s.Employee != nil }

type Authenticator interface {
	Login(ctx context.Context, in service.LoginInput) (*domain.Employee, error)
	Signup(ctx context.Context, in service.SignupInput) (*domain.Employee, error)
}

// Machine drives navigation between the signed-out screens and home. A
// transition that fails leaves the state as it was.
type Machine struct {
	auth Authenticator

	mu    sync.Mutex
	state State
}

func NewMachine(auth Authenticator) *Machine {
	return &Machine{auth: auth, state: State{Screen: ScreenLogin}}
}

// Restore builds a machine already in st, for requests that carry their
// session with them.
func Restore(auth Authenticator, st State) *Machine {
	if st.Screen == "" || (st.Screen == ScreenHome && st.Employee == nil) {
		st = State{Screen: ScreenLogin}
	}
	return &Machine{auth: auth, state: st}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Login(ctx context.Context, email, password string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Screen != ScreenLogin {
		return m.reject(ctx, "login")
	}
	emp, err := m.auth.Login(ctx, service.LoginInput{Email: email, Password: password})
	if err != nil {
		observability.RecordSessionTransition(ctx, "login", "failed")
		return m.state, err
	}
	return m.move(ctx, "login", State{Screen: ScreenHome, Employee: emp}), nil
}

// Signup creates the account and returns to the login screen without
// signing the new employee in.
func (m *Machine) Signup(ctx context.Context, in service.SignupInput) (State, *domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Screen != ScreenSignup {
		st, err := m.reject(ctx, "signup")
		return st, nil, err
	}
	emp, err := m.auth.Signup(ctx, in)
	if err != nil {
		observability.RecordSessionTransition(ctx, "signup", "failed")
		return m.state, nil, err
	}
	return m.move(ctx, "signup", State{Screen: ScreenLogin}), emp, nil
}

func (m *Machine) Logout(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.SignedIn() {
		return m.reject(ctx, "logout")
	}
	return m.move(ctx, "logout", State{Screen: ScreenLogin}), nil
}

func (m *Machine) ShowSignup(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Screen != ScreenLogin {
		return m.reject(ctx, "show_signup")
	}
	return m.move(ctx, "show_signup", State{Screen: ScreenSignup}), nil
}

func (m *Machine) ShowLogin(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Screen != ScreenSignup {
		return m.reject(ctx, "show_login")
	}
	return m.move(ctx, "show_login", State{Screen: ScreenLogin}), nil
}

func (m *Machine) move(ctx context.Context, event string, next State) State {
	m.state = next
	observability.RecordSessionTransition(ctx, event, "success")
	return next
}

func (m *Machine) reject(ctx context.Context, event string) (State, error) {
	observability.RecordSessionTransition(ctx, event, "invalid")
	return m.state, ErrInvalidTransition
}
