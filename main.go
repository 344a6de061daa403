package main

import (
	"flag"
	"time"

	"github.com/gonewx/scrapshot/pkg/app"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	settingsPath = flag.String("config", config.DefaultSettingsPath, "启动设置文件路径（TOML，可选）")
	seedFlag     = flag.String("seed", "", "随机种子（数字或任意文本），覆盖设置文件")
	verbose      = flag.Bool("verbose", false, "输出调试日志")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		bootstrap, _ := config.NewLogger(config.DefaultSettings().Logging)
		bootstrap.Fatal("failed to load settings", zap.String("path", *settingsPath), zap.Error(err))
	}
	if *verbose {
		settings.Logging.Level = "debug"
	}

	logger, err := config.NewLogger(settings.Logging)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	gameCfg, err := config.LoadGameConfig(settings.GameConfig)
	if err != nil {
		logger.Fatal("failed to load game config", zap.Error(err))
	}
	levels, err := config.LoadLevelTable(settings.LevelTable)
	if err != nil {
		logger.Fatal("failed to load level table", zap.Error(err))
	}
	if settings.SpawnerMode != "" {
		gameCfg.Spawner.Mode = config.SpawnerMode(settings.SpawnerMode)
	}

	seedText := settings.Seed
	if *seedFlag != "" {
		seedText = *seedFlag
	}
	seed := uint64(time.Now().UnixNano())
	if seedText != "" {
		seed = config.SeedFromString(seedText)
	}

	a, err := app.NewApp(app.Config{
		Settings: settings,
		Game:     gameCfg,
		Levels:   levels,
		Seed:     seed,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	ebiten.SetWindowSize(a.WindowSize())
	ebiten.SetWindowTitle("Scrapshot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.StartFullscreen())

	if err := ebiten.RunGame(a); err != nil {
		logger.Fatal("game loop terminated", zap.Error(err))
	}
}
