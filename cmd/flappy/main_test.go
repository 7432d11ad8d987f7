package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		args    []string
		want    config.Variant
		wantErr bool
	}{
		{nil, config.VariantClassic, false},
		{[]string{"classic"}, config.VariantClassic, false},
		{[]string{"arcade"}, config.VariantArcade, false},
		{[]string{flappy.IDClassic}, config.VariantClassic, false},
		{[]string{flappy.IDArcade}, config.VariantArcade, false},
		{[]string{"tetris"}, "", true},
	}

	for _, tt := range tests {
		got, err := resolveVariant(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveVariant(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveVariant(%v) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}

func TestGameIDIsRegistered(t *testing.T) {
	for _, v := range config.Variants() {
		g, err := registry.Create(gameID(v))
		if err != nil {
			t.Fatalf("variant %q: %v", v, err)
		}
		if g.ID() != gameID(v) {
			t.Errorf("variant %q created game %q", v, g.ID())
		}
	}
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "impossible"
	defer func() { flagDifficulty = "" }()

	if err := applyGameFlags(config.VariantClassic); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestPrintVariantsGroupsByFamily(t *testing.T) {
	var b strings.Builder
	printVariants(&b, []registry.GameInfo{
		{ID: flappy.IDClassic, Title: "Flappy Bird", Family: flappy.Family, Alias: "classic"},
		{ID: flappy.IDArcade, Title: "Flappy Bird (Arcade)", Family: flappy.Family, Alias: "arcade"},
		{ID: "zz_other", Title: "Other", Family: "zz"},
	})
	out := b.String()

	if n := strings.Count(out, "NAME"); n != 2 {
		t.Errorf("expected one table per family, got %d headers:\n%s", n, out)
	}
	for _, want := range []string{"classic", "flappy_arcade", "Flappy Bird (Arcade)", "zz_other"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "arcade") > strings.Index(out, "zz_other") {
		t.Error("flappy variants should be listed before the next family")
	}
}

func TestResolveVariantRejectsOtherFamilies(t *testing.T) {
	registry.Register(registry.GameInfo{ID: "zz_cli_other", Title: "Other", Family: "zz"},
		func() registry.Game { return flappy.New(config.VariantClassic) })

	if _, err := resolveVariant([]string{"zz_cli_other"}); err == nil {
		t.Error("a game outside the flappy family should not resolve to a variant")
	}
}
