package registry

import (
	"testing"

	"github.com/DeXoteric/MatchThreeGame/internal/config"
	"github.com/DeXoteric/MatchThreeGame/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

type configurableStub struct {
	stubGame
	got *config.MatchThreeConfig
}

func (s configurableStub) Configure(cfg config.MatchThreeConfig) { *s.got = cfg }

func TestCreateConfigured(t *testing.T) {
	var got config.MatchThreeConfig
	Register("zz_configurable", func() Game {
		return configurableStub{stubGame: stubGame{id: "zz_configurable"}, got: &got}
	})

	base := config.DefaultMatchThreeConfig()
	if _, err := CreateConfigured("zz_configurable", base, config.DifficultyHard); err != nil {
		t.Fatalf("CreateConfigured() error = %v", err)
	}
	if got.Board.Kinds != 6 || got.Rules.MoveLimit != 20 {
		t.Errorf("hard preset not applied: kinds=%d moves=%d", got.Board.Kinds, got.Rules.MoveLimit)
	}
	if base.Board.Kinds != config.DefaultMatchThreeConfig().Board.Kinds {
		t.Error("caller's config should not be modified")
	}

	if _, err := CreateConfigured("zz_configurable", base, ""); err != nil {
		t.Fatalf("CreateConfigured() error = %v", err)
	}
	if got.Board.Kinds != base.Board.Kinds || got.Rules.MoveLimit != base.Rules.MoveLimit {
		t.Errorf("empty preset should pass the config through, got %+v", got.Rules)
	}

	g, err := CreateConfigured("zz_stub_plain", base, config.DifficultyEasy)
	if err == nil {
		t.Errorf("unknown ID should fail, got %v", g)
	}
}
