package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "chesshall/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// Colors are terminal palette indexes (0-255).
type Colors struct {
	BoardLight int `json:"board_light"`
	BoardDark  int `json:"board_dark"`
	WhitePiece int `json:"white_piece"`
	BlackPiece int `json:"black_piece"`
	CursorBG   int `json:"cursor_bg"`
	SelectedBG int `json:"selected_bg"`
	HintBG     int `json:"hint_bg"`
}

type Config struct {
	ServerAddr string `json:"server_addr"`
	Colors     Colors `json:"colors"`
}

// DefaultConfig is used when no config file exists.
var DefaultConfig = Config{
	ServerAddr: "localhost:3000",
	Colors: Colors{
		BoardLight: 180,
		BoardDark:  94,
		WhitePiece: 231,
		BlackPiece: 16,
		CursorBG:   39,
		SelectedBG: 34,
		HintBG:     108,
	},
}

// InitConfig loads the user config from the XDG config path, falling
// back to DefaultConfig when no file exists.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, v := range []int{
		c.Colors.BoardLight, c.Colors.BoardDark,
		c.Colors.WhitePiece, c.Colors.BlackPiece,
		c.Colors.CursorBG, c.Colors.SelectedBG, c.Colors.HintBG,
	} {
		if v < 0 || v > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d outside the terminal palette (0-255)", v)}
		}
	}
	if c.ServerAddr == "" {
		return &InvalidConfig{"server_addr must not be empty"}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, a)
}
