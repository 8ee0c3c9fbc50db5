package config

// EngineConfig is the root config for engine.yaml
type EngineConfig struct {
	Display DisplayConfig `yaml:"display"`
	Fonts   FontConfig    `yaml:"fonts"`
	Buttons ButtonConfig  `yaml:"buttons"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
	Menu    MenuConfig    `yaml:"menu"`
}

type DisplayConfig struct {
	ScreenWidth  int  `yaml:"screenWidth"`
	ScreenHeight int  `yaml:"screenHeight"`
	Scale        int  `yaml:"scale"`
	Framerate    int  `yaml:"framerate"`
	Resizable    bool `yaml:"resizable"` // Follow the window size instead of scaling a fixed view
}

// FontConfig selects the caption font. An empty path uses the built-in Go font.
type FontConfig struct {
	Caption     string  `yaml:"caption"`
	CaptionSize float64 `yaml:"captionSize"`
}

// ButtonConfig holds image paths of the advance controls
type ButtonConfig struct {
	Next  string `yaml:"next"`
	Close string `yaml:"close"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sampleRate"`
}

// InputConfig maps actions to ebiten key names (e.g. "Enter", "Escape")
type InputConfig struct {
	Accept []string `yaml:"accept"`
	Cancel []string `yaml:"cancel"`
}

// MenuConfig lists the fullscreen images used by cutscenes with menu_backgrounds
type MenuConfig struct {
	Backgrounds []string `yaml:"backgrounds"`
}

// DefaultEngineConfig returns the configuration used for missing values
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    60,
		},
		Fonts: FontConfig{
			CaptionSize: 16,
		},
		Buttons: ButtonConfig{
			Next:  "images/menus/buttons/right.png",
			Close: "images/menus/buttons/button_x.png",
		},
		Audio: AudioConfig{
			SampleRate: 48000,
		},
		Input: InputConfig{
			Accept: []string{"Enter", "Space"},
			Cancel: []string{"Escape"},
		},
	}
}

// applyDefaults fills zero values from DefaultEngineConfig
func (c *EngineConfig) applyDefaults() {
	def := DefaultEngineConfig()
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = def.Display.ScreenWidth
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = def.Display.ScreenHeight
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = def.Display.Scale
	}
	if c.Display.Framerate <= 0 {
		c.Display.Framerate = def.Display.Framerate
	}
	if c.Fonts.CaptionSize <= 0 {
		c.Fonts.CaptionSize = def.Fonts.CaptionSize
	}
	if c.Buttons.Next == "" {
		c.Buttons.Next = def.Buttons.Next
	}
	if c.Buttons.Close == "" {
		c.Buttons.Close = def.Buttons.Close
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	if len(c.Input.Accept) == 0 {
		c.Input.Accept = def.Input.Accept
	}
	if len(c.Input.Cancel) == 0 {
		c.Input.Cancel = def.Input.Cancel
	}
}
