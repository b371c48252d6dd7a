package registry

import (
	"testing"

	"github.com/vovakirdan/retro-snake/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game {
		return &stubGame{id: "stub_a", title: "Stub A"}
	})

	if !Exists("stub_a") {
		t.Fatal("registered mode should exist")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title = %q, expected %q", g.Title(), "Stub A")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_mode"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestRebindReplacesFactory(t *testing.T) {
	Register("stub_b", func() Game {
		return &stubGame{id: "stub_b", title: "Stub B"}
	})

	Rebind("stub_b", func() Game {
		return &stubGame{id: "stub_b", title: "Stub B (tuned)"}
	})

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub B (tuned)" {
		t.Errorf("Title = %q, expected rebound factory to win", g.Title())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub_b" {
			found = true
			if info.Title != "Stub B (tuned)" {
				t.Errorf("List title = %q, expected rebound title", info.Title)
			}
		}
	}
	if !found {
		t.Error("rebound mode missing from List")
	}
}

func TestRebindUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Rebind of an unregistered mode should panic")
		}
	}()
	Rebind("no_such_mode", func() Game { return &stubGame{} })
}
