package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

type stubGame struct {
	id      string
	players int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type stubMultiGame struct {
	stubGame
}

func (g *stubMultiGame) Players() int { return g.players }
func (g *stubMultiGame) StepMulti(core.MultiInputFrame) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_single", func() Game { return &stubGame{id: "zz_stub_single"} })
	Register("zz_stub_multi", func() Game {
		return &stubMultiGame{stubGame{id: "zz_stub_multi", players: 2}}
	})

	if !Exists("zz_stub_single") || !Exists("zz_stub_multi") {
		t.Fatal("registered games should exist")
	}

	g, err := Create("zz_stub_multi")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := g.(MultiPlayerGame); !ok {
		t.Error("multi-player game should satisfy MultiPlayerGame")
	}

	infos := make(map[string]GameInfo)
	for _, info := range List() {
		infos[info.ID] = info
	}
	if infos["zz_stub_single"] != (GameInfo{ID: "zz_stub_single", Title: "ZZ_STUB_SINGLE", Players: 1}) {
		t.Errorf("single info = %+v", infos["zz_stub_single"])
	}
	if infos["zz_stub_multi"].Players != 2 {
		t.Errorf("multi players = %d, want 2", infos["zz_stub_multi"].Players)
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_sort_b", func() Game { return &stubGame{id: "zz_sort_b"} })
	Register("zz_sort_a", func() Game { return &stubGame{id: "zz_sort_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !strings.Contains(err.Error(), "no_such_game") {
		t.Errorf("error should name the game, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
