package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelRunsActionAndRendersResult(t *testing.T) {
	m := model{title: "migrate up", timeout: time.Second, action: func(ctx context.Context) ([]string, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected action context to carry a deadline")
		}
		return []string{"schema migration applied"}, nil
	}}
	if !strings.Contains(m.View(), "Running") {
		t.Fatalf("expected running view, got %q", m.View())
	}

	msg := m.Init()()
	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected quit command after action finished")
	}
	view := next.(model).View()
	if !strings.Contains(view, "OK") || !strings.Contains(view, "schema migration applied") {
		t.Fatalf("unexpected view: %q", view)
	}
}

func TestModelRendersFailure(t *testing.T) {
	m := model{title: "seed apply", timeout: time.Second, action: func(context.Context) ([]string, error) {
		return nil, errors.New("db down")
	}}
	next, _ := m.Update(m.Init()())
	res := next.(model)
	if res.err == nil || !strings.Contains(res.View(), "FAILED") {
		t.Fatalf("expected failure view, got %q", res.View())
	}
}

func TestModelCtrlCCancels(t *testing.T) {
	m := model{title: "x", timeout: time.Second}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !errors.Is(next.(model).err, context.Canceled) {
		t.Fatalf("expected cancel on ctrl+c, got %+v", next)
	}
}
