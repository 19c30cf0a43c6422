package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xeui/pkg/config/xconf"
	"github.com/omeyang/xeui/pkg/util/xeui"
)

// 默认值。
const (
	defaultWidth      = 48
	defaultFormat     = "canonical"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 3
)

// settings 是配置文件的结构，键名与命令行选项对应。
//
//	width: 64
//	format: colon
//	log:
//	  level: debug
//	  format: json
//	  file: /var/log/xeuictl.log
//	  max_size_mb: 50
//	  max_backups: 5
type settings struct {
	Width  int         `koanf:"width"`
	Format string      `koanf:"format"`
	Log    logSettings `koanf:"log"`
}

type logSettings struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

func defaultSettings() settings {
	return settings{
		Width:  defaultWidth,
		Format: defaultFormat,
		Log: logSettings{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
	}
}

// loadSettings 读取配置文件覆盖默认值。path 为空时只返回默认值。
// 未知键视为错误，避免拼写错误被静默忽略。
func loadSettings(path string) (settings, error) {
	st := defaultSettings()
	if path == "" {
		return st, nil
	}

	cfg, err := xconf.New(path, xconf.WithStrict())
	if err != nil {
		return st, err
	}
	if err := cfg.Unmarshal("", &st); err != nil {
		return st, err
	}
	return st, nil
}

// appState 保存一次运行中解析后的设置和日志器。
type appState struct {
	settings settings
	logger   *slog.Logger
	closer   io.Closer
}

// init 按 默认值 < 配置文件 < 命令行 的优先级合并设置，并创建日志器。
func (s *appState) init(cmd *cli.Command, stderr io.Writer) error {
	st, err := loadSettings(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.IsSet("log-level") {
		st.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		st.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		st.Log.File = cmd.String("log-file")
	}

	logger, closer, err := newLogger(st.Log, stderr)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	s.settings = st
	s.logger = logger
	s.closer = closer
	logger.Debug("settings resolved",
		slog.String("config", cmd.String("config")),
		slog.Int("width", st.Width),
		slog.String("format", st.Format),
	)
	return nil
}

func (s *appState) close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// width 返回生效的地址宽度：命令行 --width 优先，其次为配置。
func (s *appState) width(cmd *cli.Command) (int, error) {
	w := s.settings.Width
	if cmd.IsSet("width") {
		w = cmd.Int("width")
	}
	if w != 48 && w != 64 {
		return 0, &usageError{msg: fmt.Sprintf("宽度必须为 48 或 64，实际为 %d", w)}
	}
	return w, nil
}

// format 返回生效的输出格式。
func (s *appState) format(cmd *cli.Command) (xeui.Format, error) {
	name := s.settings.Format
	if cmd.IsSet("format") {
		name = cmd.String("format")
	}
	f, err := xeui.ParseFormat(name)
	if err != nil {
		return 0, &usageError{msg: err.Error()}
	}
	return f, nil
}
