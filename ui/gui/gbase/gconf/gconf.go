package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultConfigFile = "chessboard.json"

type Config struct {
	Theme    string `json:"theme"`     // light/dark
	Title    string `json:"title"`     // window title
	WindowW  int    `json:"window_w"`  //
	WindowH  int    `json:"window_h"`  //
	TPS      int    `json:"tps"`       // updates per second
	FontPath string `json:"font_path"` // ttf/otf, empty for the embedded font
	ShowFPS  bool   `json:"show_fps"`  // fps overlay on start
	Debug    bool   `json:"debug"`     // true/false

	file string
}

func defaultConfig() Config {
	return Config{
		Theme:   "light",
		Title:   "Chessboard",
		WindowW: 1280,
		WindowH: 720,
		TPS:     60,
		ShowFPS: false,
		Debug:   false,
	}
}

// NewGUIConfig reads file, or returns the defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultConfigFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.file = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.file = file

	return &c, nil
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.WindowH < 240 || c.WindowW < 320 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
	if c.TPS <= 0 || c.TPS > 240 {
		c.TPS = def.TPS
	}
}
