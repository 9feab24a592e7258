package config

var Presets = map[string]*Config{
	"default": {
		DriftRate: 1.5, Threshold: 2.0, StartingBias: 0.0, NoiseScale: 1.0,
		Dt: 0.05, MaxTime: 5.0, Trials: DefaultTrials,
	},
	"impulsive": {
		DriftRate: 1.5, Threshold: 0.8, StartingBias: 0.0, NoiseScale: 1.0,
		Dt: 0.05, MaxTime: 5.0, Trials: DefaultTrials,
	},
	"cautious": {
		DriftRate: 1.5, Threshold: 4.0, StartingBias: 0.0, NoiseScale: 1.0,
		Dt: 0.05, MaxTime: 10.0, Trials: DefaultTrials,
	},
	"biased": {
		DriftRate: 0.5, Threshold: 2.0, StartingBias: 1.2, NoiseScale: 1.0,
		Dt: 0.05, MaxTime: 5.0, Trials: DefaultTrials,
	},
	"noisy": {
		DriftRate: 0.5, Threshold: 2.0, StartingBias: 0.0, NoiseScale: 2.5,
		Dt: 0.05, MaxTime: 5.0, Trials: DefaultTrials,
	},
	"deterministic": {
		DriftRate: 1.5, Threshold: 2.0, StartingBias: 0.0, NoiseScale: 0.0,
		Dt: 0.05, MaxTime: 5.0, Trials: 1,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
