package config

var Presets = map[string]*Config{
	"sparse": {
		Scene: SceneConfig{Bodies: 32, WorldSize: 20.0, MaxSpeed: 2.0, BodySize: 0.5},
		Run:   RunConfig{Steps: 500, Dt: 0.01, Seed: 1},
		Table: TableConfig{InitialSize: 16},
	},
	"dense": {
		Scene: SceneConfig{Bodies: 128, WorldSize: 8.0, MaxSpeed: 3.0, BodySize: 1.0},
		Run:   RunConfig{Steps: 500, Dt: 0.01, Seed: 1},
		Table: TableConfig{InitialSize: 64},
	},
	"swarm": {
		Scene: SceneConfig{Bodies: 512, WorldSize: 15.0, MaxSpeed: 4.0, BodySize: 0.75},
		Run:   RunConfig{Steps: 1000, Dt: 0.005, Seed: 1},
		Table: TableConfig{InitialSize: 256, ShrinkAfter: true},
	},
	"burst": {
		// Everything overlaps at the start, then the set thins out, the
		// worst case for removal-triggered compaction.
		Scene: SceneConfig{Bodies: 96, WorldSize: 4.0, MaxSpeed: 6.0, BodySize: 1.5},
		Run:   RunConfig{Steps: 300, Dt: 0.01, Seed: 1},
		Table: TableConfig{InitialSize: 16, ShrinkAfter: true},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
