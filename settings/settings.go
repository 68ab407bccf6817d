package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"waypointd/params"
	"waypointd/utils"
)

var (
	Settings = WaypointdSettings{}
)

type WaypointdSettings struct {
	LogLevel    string `json:"log_level"`
	RouteDB     string `json:"route_db"`
	RouteName   string `json:"route_name"`
	RouteFile   string `json:"route_file"`
	PersistPose bool   `json:"persist_pose"`
}

func (s *WaypointdSettings) Default() {
	s.LogLevel = "info"
	s.RouteDB = "routes.db"
	s.RouteName = ""
	s.RouteFile = ""
	s.PersistPose = false
}

func (s *WaypointdSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.WAYPOINTD_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *WaypointdSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *WaypointdSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.WAYPOINTD_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *WaypointdSettings) Unmarshal(data []byte) {
	err := json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return
	}
	s.setLogLevel()
}

func (s *WaypointdSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}
}
