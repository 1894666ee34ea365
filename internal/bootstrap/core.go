package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/eventbus"
	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/config"
	"github.com/diya-el-fadhil/Habit-Hero/internal/repository"
	"github.com/diya-el-fadhil/Habit-Hero/internal/service"
)

// Core 持有 server 与 cli 共享的核心依赖
type Core struct {
	Cfg       *config.Config
	CfgPath   string
	DB        *repository.Database
	Hub       *eventbus.Hub
	LogCloser io.Closer

	Repos struct {
		Habit   *repository.HabitRepository
		CheckIn *repository.CheckInRepository
	}

	Services struct {
		Habits    *service.HabitService
		CheckIns  *service.CheckInService
		Analytics *service.AnalyticsService
	}
}

// Options 构建 Core 的可选项
type Options struct {
	// Clock 为空时使用 time.Now
	Clock service.Clock
	// SkipLogger 不修改全局 logger（测试用）
	SkipLogger bool
}

// NewCore 加载配置并构建核心依赖
func NewCore(cfgPath string) (*Core, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	c, err := NewCoreWithConfig(cfg, Options{})
	if err != nil {
		return nil, err
	}
	c.CfgPath = cfgPath
	return c, nil
}

// NewCoreWithConfig 使用已加载的配置构建核心依赖
func NewCoreWithConfig(cfg *config.Config, opts Options) (*Core, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg 不能为空")
	}

	var logCloser io.Closer
	if !opts.SkipLogger {
		closer, err := config.SetupLogger(config.LoggerOptions{
			Level:     cfg.App.LogLevel,
			Path:      cfg.App.LogPath,
			Component: filepath.Base(os.Args[0]),
		})
		if err != nil {
			return nil, fmt.Errorf("初始化日志失败: %w", err)
		}
		logCloser = closer
	}

	loc, err := cfg.Location()
	if err != nil {
		closeQuietly(logCloser)
		return nil, err
	}

	db, err := repository.NewDatabase(cfg.Storage.DBPath)
	if err != nil {
		closeQuietly(logCloser)
		return nil, err
	}

	c := &Core{Cfg: cfg, DB: db, Hub: eventbus.NewHub(), LogCloser: logCloser}

	// Repos
	c.Repos.Habit = repository.NewHabitRepository(db.DB)
	c.Repos.CheckIn = repository.NewCheckInRepository(db.DB)

	// Services
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	c.Services.Habits = service.NewHabitService(c.Repos.Habit, c.Hub)
	c.Services.CheckIns = service.NewCheckInService(c.Repos.CheckIn, c.Hub)
	c.Services.Analytics = service.NewAnalyticsService(c.Repos.Habit, c.Repos.CheckIn, clock, loc)

	return c, nil
}

// Close 关闭核心依赖资源
func (c *Core) Close() error {
	if c == nil {
		return nil
	}
	var dbErr error
	if c.DB != nil {
		dbErr = c.DB.Close()
	}
	closeQuietly(c.LogCloser)
	return dbErr
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
