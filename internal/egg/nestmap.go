package egg

import "sort"

// Nest names used by the category map.
const (
	NestMinecraft    = "Minecraft"
	NestSourceEngine = "Source Engine"
	NestSteamGames   = "Steam Games"
	NestSimulation   = "Simulation Games"
	NestRacing       = "Racing Games"
	NestRoleplay     = "Roleplay & Social"
	NestSurvival     = "Survival & Sandbox"
	NestCustomGames  = "Custom Games"
)

// DefaultNest receives every game slug missing from the category map.
const DefaultNest = NestCustomGames

// nestMap maps a game slug (the top-level directory of the egg repository)
// to its nest. Keys are case-sensitive and must match the directory names.
var nestMap = map[string]string{
	// Minecraft
	"minecraft": NestMinecraft,

	// Source Engine
	"counter_strike":          NestSourceEngine,
	"gmod":                    NestSourceEngine,
	"half_life_2_deathmatch":  NestSourceEngine,
	"hlds_server":             NestSourceEngine,
	"left4dead":               NestSourceEngine,
	"left4dead_2":             NestSourceEngine,
	"nmrih":                   NestSourceEngine,
	"open_fortress":           NestSourceEngine,
	"svencoop":                NestSourceEngine,
	"team_fortress_2_classic": NestSourceEngine,
	"contagion":               NestSourceEngine,
	"fof":                     NestSourceEngine,
	"sourcecoop":              NestSourceEngine,
	"black_mesa":              NestSourceEngine,

	// Steam Games
	"7_days_to_die":              NestSteamGames,
	"Aska":                       NestSteamGames,
	"abiotic_factor":             NestSteamGames,
	"aloft":                      NestSteamGames,
	"ark_survival_ascended":      NestSteamGames,
	"ark_survival_evolved":       NestSteamGames,
	"arma":                       NestSteamGames,
	"avorion":                    NestSteamGames,
	"banana_shooter":             NestSteamGames,
	"barotrauma":                 NestSteamGames,
	"battalion_legacy":           NestSteamGames,
	"citadel":                    NestSteamGames,
	"conan_exiles":               NestSteamGames,
	"core_keeper":                NestSteamGames,
	"craftopia":                  NestSteamGames,
	"cryofall":                   NestSteamGames,
	"cubic_odyssey":              NestSteamGames,
	"dayz":                       NestSteamGames,
	"ddnet":                      NestSteamGames,
	"dont_starve":                NestSteamGames,
	"eco":                        NestSteamGames,
	"empyrion":                   NestSteamGames,
	"enshrouded":                 NestSteamGames,
	"foundry":                    NestSteamGames,
	"frozen_flame":               NestSteamGames,
	"holdfast":                   NestSteamGames,
	"hurtworld":                  NestSteamGames,
	"icarus":                     NestSteamGames,
	"insurgency_sandstorm":       NestSteamGames,
	"killing_floor_2":            NestSteamGames,
	"longvinter":                 NestSteamGames,
	"midnight_ghost_hunt":        NestSteamGames,
	"modiverse":                  NestSteamGames,
	"mordhau":                    NestSteamGames,
	"necesse":                    NestSteamGames,
	"night_of_the_dead":          NestSteamGames,
	"no_love_lost":               NestSteamGames,
	"novalife_amboise":           NestSteamGames,
	"onset":                      NestSteamGames,
	"operation_harsh_doorstop":   NestSteamGames,
	"palworld":                   NestSteamGames,
	"pavlov_vr":                  NestSteamGames,
	"pixark":                     NestSteamGames,
	"plains_of_pain":             NestSteamGames,
	"portal_knights":             NestSteamGames,
	"post_scriptum":              NestSteamGames,
	"project_zomboid":            NestSteamGames,
	"quake_live":                 NestSteamGames,
	"return_to_moria":            NestSteamGames,
	"rising_world":               NestSteamGames,
	"risk_of_rain_2":             NestSteamGames,
	"rust":                       NestSteamGames,
	"satisfactory":               NestSteamGames,
	"scpsl":                      NestSteamGames,
	"scum":                       NestSteamGames,
	"smalland_survive_the_wilds": NestSteamGames,
	"soldat":                     NestSteamGames,
	"sonsoftheforest":            NestSteamGames,
	"soulmask":                   NestSteamGames,
	"squad":                      NestSteamGames,
	"starbound":                  NestSteamGames,
	"stationeers":                NestSteamGames,
	"stormworks":                 NestSteamGames,
	"subnautica_nitrox_mod":      NestSteamGames,
	"terratech_worlds":           NestSteamGames,
	"the_forest":                 NestSteamGames,
	"the_isle":                   NestSteamGames,
	"thefront":                   NestSteamGames,
	"tower_unite":                NestSteamGames,
	"truck-simulator":            NestSteamGames,
	"unturned":                   NestSteamGames,
	"v_rising":                   NestSteamGames,
	"valheim":                    NestSteamGames,

	// Space / Simulation
	"astroneer":       NestSimulation,
	"astro_colony":    NestSimulation,
	"ksp":             NestSimulation,
	"space_engineers": NestSimulation,

	// Racing
	"assetto_corsa":  NestRacing,
	"automobilista2": NestRacing,
	"trackmania":     NestRacing,

	// Role-Play / Social
	"among_us":         NestRoleplay,
	"gta":              NestRoleplay,
	"losangelescrimes": NestRoleplay,
	"neosvr":           NestRoleplay,
	"resonite":         NestRoleplay,

	// Survival / Sandbox
	"colony_survival": NestSurvival,
	"ground_breach":   NestSurvival,
	"humanitz":        NestSurvival,
	"rimworld":        NestSurvival,
	"sunkenland":      NestSurvival,
	"vintage_story":   NestSurvival,
	"wurm_unlimited":  NestSurvival,

	// Indie / Custom
	"Archean":                     NestCustomGames,
	"League Sandbox":              NestCustomGames,
	"Nazi Zombies Portable":       NestCustomGames,
	"Nightingale":                 NestCustomGames,
	"SuperTuxKart":                NestCustomGames,
	"americas_army":               NestCustomGames,
	"beamng":                      NestCustomGames,
	"brickadia":                   NestCustomGames,
	"classicube":                  NestCustomGames,
	"clone_hero":                  NestCustomGames,
	"cod":                         NestCustomGames,
	"cs2d":                        NestCustomGames,
	"cubeengine":                  NestCustomGames,
	"ddracenetwork":               NestCustomGames,
	"dead_matter":                 NestCustomGames,
	"doom":                        NestCustomGames,
	"eft":                         NestCustomGames,
	"factorio":                    NestCustomGames,
	"fortresscraft_evolved":       NestCustomGames,
	"foundry_vtt":                 NestCustomGames,
	"ftl_tachyon":                 NestCustomGames,
	"hogwarp":                     NestCustomGames,
	"hytale":                      NestCustomGames,
	"just_cause":                  NestCustomGames,
	"mindustry":                   NestCustomGames,
	"minetest":                    NestCustomGames,
	"mohaa":                       NestCustomGames,
	"mount_blade_II_bannerlord":   NestCustomGames,
	"myth_of_empires":             NestCustomGames,
	"neverwinter_nights_ee":       NestCustomGames,
	"nuclear_option":              NestCustomGames,
	"openarena":                   NestCustomGames,
	"openra":                      NestCustomGames,
	"openrct2":                    NestCustomGames,
	"openttd":                     NestCustomGames,
	"path_of_titans":              NestCustomGames,
	"puck":                        NestCustomGames,
	"r5reloaded":                  NestCustomGames,
	"rdr":                         NestCustomGames,
	"renown":                      NestCustomGames,
	"solace_crafting":             NestCustomGames,
	"soldat_2":                    NestCustomGames,
	"sonic_robo_blast_2":          NestCustomGames,
	"spacestation_14":             NestCustomGames,
	"starmade":                    NestCustomGames,
	"swords_'n_Magic_and_Stuff":   NestCustomGames,
	"teeworlds":                   NestCustomGames,
	"terraria":                    NestCustomGames,
	"urbanterror":                 NestCustomGames,
	"vein":                        NestCustomGames,
	"veloren":                     NestCustomGames,
	"voyagers_of_nera":            NestCustomGames,
	"wine":                        NestCustomGames,
	"wolfenstein_enemy_territory": NestCustomGames,
	"xonotic":                     NestCustomGames,
}

// ResolveNest returns the nest an egg under the given game slug belongs to.
// Unknown slugs resolve to DefaultNest.
func ResolveNest(slug string) string {
	if nest, ok := nestMap[slug]; ok {
		return nest
	}
	return DefaultNest
}

// IsKnownSlug reports whether slug has an explicit entry in the category map.
func IsKnownSlug(slug string) bool {
	_, ok := nestMap[slug]
	return ok
}

// Map returns a copy of the category map.
func Map() map[string]string {
	m := make(map[string]string, len(nestMap))
	for slug, nest := range nestMap {
		m[slug] = nest
	}
	return m
}

// NestNames returns the distinct nest names, sorted.
func NestNames() []string {
	seen := map[string]bool{DefaultNest: true}
	for _, nest := range nestMap {
		seen[nest] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SlugsByNest groups the mapped slugs by nest, each list sorted.
func SlugsByNest() map[string][]string {
	groups := make(map[string][]string)
	for slug, nest := range nestMap {
		groups[nest] = append(groups[nest], slug)
	}
	for _, slugs := range groups {
		sort.Strings(slugs)
	}
	return groups
}
