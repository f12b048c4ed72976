package config

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"compact": {
		Window: WindowConfig{Width: 960, Height: 600, Title: DefaultWindowTitle},
		Region: RegionConfig{X: 20, Y: 20, Width: 540, Height: 540},
		Emitter: EmitterConfig{
			Kind: "sand", X: 290, Y: 30, Rate: DefaultEmitRate,
		},
		FPS: DefaultFPS, Dt: DefaultDt, Duration: DefaultDuration,
	},
	"flood": {
		Window: WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight, Title: DefaultWindowTitle},
		Region: RegionConfig{X: DefaultRegionX, Y: DefaultRegionY, Width: DefaultRegionSize, Height: DefaultRegionSize},
		Emitter: EmitterConfig{
			Kind: "sand", X: DefaultRegionX + DefaultRegionSize/2, Y: DefaultRegionY + 10, Rate: 600,
		},
		FPS: DefaultFPS, Dt: DefaultDt, Duration: 30.0,
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
