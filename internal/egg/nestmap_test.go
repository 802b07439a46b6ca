package egg

import (
	"testing"
)

func TestResolveNest(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"minecraft", NestMinecraft},
		{"gmod", NestSourceEngine},
		{"rust", NestSteamGames},
		{"ksp", NestSimulation},
		{"trackmania", NestRacing},
		{"gta", NestRoleplay},
		{"rimworld", NestSurvival},
		{"terraria", NestCustomGames},
		{"League Sandbox", NestCustomGames},
		{"Aska", NestSteamGames},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := ResolveNest(tt.slug); got != tt.want {
				t.Errorf("ResolveNest(%q) = %q, want %q", tt.slug, got, tt.want)
			}
			if !IsKnownSlug(tt.slug) {
				t.Errorf("IsKnownSlug(%q) = false, want true", tt.slug)
			}
		})
	}
}

func TestResolveNestFallback(t *testing.T) {
	for _, slug := range []string{"", "unknown_game", "Minecraft", "aska", "RUST", "egg-paper.json", "minecraft/paper"} {
		if got := ResolveNest(slug); got != DefaultNest {
			t.Errorf("ResolveNest(%q) = %q, want fallback %q", slug, got, DefaultNest)
		}
		if IsKnownSlug(slug) {
			t.Errorf("IsKnownSlug(%q) = true, want false", slug)
		}
	}
}

func TestMapReturnsCopy(t *testing.T) {
	m := Map()
	m["minecraft"] = "Tampered"
	delete(m, "rust")

	if ResolveNest("minecraft") != NestMinecraft {
		t.Error("Modifying Map() result changed the category map")
	}
	if ResolveNest("rust") != NestSteamGames {
		t.Error("Deleting from Map() result changed the category map")
	}
}

func TestNestNames(t *testing.T) {
	names := NestNames()
	want := []string{
		NestCustomGames,
		NestMinecraft,
		NestRacing,
		NestRoleplay,
		NestSimulation,
		NestSourceEngine,
		NestSteamGames,
		NestSurvival,
	}

	if len(names) != len(want) {
		t.Fatalf("NestNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("NestNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestSlugsByNest(t *testing.T) {
	groups := SlugsByNest()

	total := 0
	for nest, slugs := range groups {
		total += len(slugs)
		for i, slug := range slugs {
			if ResolveNest(slug) != nest {
				t.Errorf("slug %q grouped under %q but resolves to %q", slug, nest, ResolveNest(slug))
			}
			if i > 0 && slugs[i-1] > slug {
				t.Errorf("slugs for %q not sorted: %v", nest, slugs)
			}
		}
	}
	if total != len(Map()) {
		t.Errorf("SlugsByNest() holds %d slugs, want %d", total, len(Map()))
	}
	if len(groups[NestMinecraft]) != 1 {
		t.Errorf("Expected one Minecraft slug, got %v", groups[NestMinecraft])
	}
}
