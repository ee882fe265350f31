package config

import (
	"fmt"

	"github.com/spf13/viper"

	"hopper/game"
)

// fileLane mirrors one lane entry in the settings file.
type fileLane struct {
	Kind  string  `json:"kind" mapstructure:"kind"`
	Dir   string  `json:"dir" mapstructure:"dir"`
	Speed float64 `json:"speed" mapstructure:"speed"`
	Max   int     `json:"max" mapstructure:"max"`
}

type fileSettings struct {
	FieldWidth  float64    `json:"fieldWidth" mapstructure:"fieldWidth"`
	RowHeight   float64    `json:"rowHeight" mapstructure:"rowHeight"`
	Lives       int        `json:"lives" mapstructure:"lives"`
	ScoresToWin int        `json:"scoresToWin" mapstructure:"scoresToWin"`
	TimerMax    int        `json:"timerSeconds" mapstructure:"timerSeconds"`
	HomeCount   int        `json:"homes" mapstructure:"homes"`
	Traffic     []fileLane `json:"traffic" mapstructure:"traffic"`
	River       []fileLane `json:"river" mapstructure:"river"`
}

// Classic five-and-five layout used when no config file overrides it.
var defaultTraffic = []map[string]any{
	{"kind": "car", "dir": "left", "speed": 1.0, "max": 3},
	{"kind": "bus", "dir": "right", "speed": 0.8, "max": 2},
	{"kind": "car", "dir": "left", "speed": 1.4, "max": 3},
	{"kind": "car", "dir": "right", "speed": 1.1, "max": 3},
	{"kind": "bus", "dir": "left", "speed": 0.7, "max": 2},
}

var defaultRiver = []map[string]any{
	{"kind": "log", "dir": "right", "speed": 0.9, "max": 2},
	{"kind": "turtle", "dir": "left", "speed": 1.0, "max": 3},
	{"kind": "log", "dir": "right", "speed": 1.3, "max": 2},
	{"kind": "log", "dir": "right", "speed": 0.7, "max": 2},
	{"kind": "turtle", "dir": "left", "speed": 1.2, "max": 3},
}

// Load reads hopper.cfg.json from configDir on top of full defaults and
// returns the resulting game settings. A missing file means defaults.
func Load(configDir string) (game.Settings, error) {
	viper.SetDefault("fieldWidth", 448.0)
	viper.SetDefault("rowHeight", 32.0)
	viper.SetDefault("lives", 3)
	viper.SetDefault("scoresToWin", 5)
	viper.SetDefault("timerSeconds", 30)
	viper.SetDefault("homes", 5)
	viper.SetDefault("traffic", defaultTraffic)
	viper.SetDefault("river", defaultRiver)

	viper.SetConfigName("hopper.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return game.Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var fs fileSettings
	if err := viper.Unmarshal(&fs); err != nil {
		return game.Settings{}, fmt.Errorf("error parsing config: %w", err)
	}
	return fs.toSettings()
}

func (fs fileSettings) toSettings() (game.Settings, error) {
	st := game.Settings{
		FieldWidth:  fs.FieldWidth,
		RowHeight:   fs.RowHeight,
		Lives:       fs.Lives,
		ScoresToWin: fs.ScoresToWin,
		TimerMax:    fs.TimerMax,
		HomeCount:   fs.HomeCount,
	}
	var err error
	if st.TrafficLanes, err = toPlans(fs.Traffic); err != nil {
		return game.Settings{}, fmt.Errorf("traffic: %w", err)
	}
	if st.RiverLanes, err = toPlans(fs.River); err != nil {
		return game.Settings{}, fmt.Errorf("river: %w", err)
	}
	if err := st.Validate(); err != nil {
		return game.Settings{}, err
	}
	return st, nil
}

func toPlans(lanes []fileLane) ([]game.LanePlan, error) {
	out := make([]game.LanePlan, 0, len(lanes))
	for i, l := range lanes {
		kind, err := game.ParseKind(l.Kind)
		if err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
		dir, err := game.ParseDirection(l.Dir)
		if err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
		out = append(out, game.LanePlan{Kind: kind, Dir: dir, Speed: l.Speed, MaxCount: l.Max})
	}
	return out, nil
}
