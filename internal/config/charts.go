package config

type ChartsConfig struct {
	Enable bool    `yaml:"enabled"`
	Folder string  `yaml:"dir"`
	Width  float64 `yaml:"width-inches"`
	Height float64 `yaml:"height-inches"`
}

func (c *ChartsConfig) Enabled() bool {
	return c.Enable
}

func (c *ChartsConfig) Dir() string {
	return c.Folder
}

func (c *ChartsConfig) WidthInches() float64 {
	return c.Width
}

func (c *ChartsConfig) HeightInches() float64 {
	return c.Height
}
