package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/buildinfo"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 HABIT_SERVER_LISTEN_ADDR
const EnvPrefix = "HABIT"

// Config 应用配置
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Version  string `mapstructure:"version"`
	LogLevel string `mapstructure:"log_level"`
	LogPath  string `mapstructure:"log_path"`
	Timezone string `mapstructure:"timezone"` // 为空使用本地时区
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	ListenAddr           string   `mapstructure:"listen_addr"`
	CORSOrigins          []string `mapstructure:"cors_origins"`
	ReadHeaderTimeoutSec int      `mapstructure:"read_header_timeout_sec"`
}

// StorageConfig 存储配置
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || errors.Is(err, fs.ErrNotExist) {
			slog.Warn("配置文件未找到，使用默认配置", "path", configPath)
		} else {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	} else {
		slog.Info("加载配置文件", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = resolvePath(cfg.Storage.DBPath)
	if cfg.App.LogPath != "" {
		cfg.App.LogPath = resolvePath(cfg.App.LogPath)
	}

	return &cfg, nil
}

// Default 返回仅包含默认值的配置
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "habit-hero")
	v.SetDefault("app.version", buildinfo.Version)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_path", "")
	v.SetDefault("app.timezone", "")

	// Server
	v.SetDefault("server.listen_addr", "0.0.0.0:8000")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.read_header_timeout_sec", 5)

	// Storage
	v.SetDefault("storage.db_path", "./data/habits.db")
}

// Location 解析 app.timezone
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.App.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("无效的时区 %q: %w", tz, err)
	}
	return loc, nil
}

// ReadHeaderTimeout 请求头读取超时
func (c *Config) ReadHeaderTimeout() time.Duration {
	if c.Server.ReadHeaderTimeoutSec <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Server.ReadHeaderTimeoutSec) * time.Second
}

// resolvePath 相对路径按当前工作目录解析；:memory: 原样返回
func resolvePath(path string) string {
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
