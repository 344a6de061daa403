// Package app 提供游戏应用的核心包装器
//
// 该包把模拟、渲染场景、输入和存档组装成 ebiten.Game，
// main.go 只负责解析参数、加载配置和启动窗口。
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/scenes"
	"github.com/gonewx/scrapshot/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// 退出全屏后等待窗口管理器处理的帧数
const windowResetDelay = 3

// Config 定义应用启动配置
type Config struct {
	Settings *config.Settings
	Game     *config.GameConfig
	Levels   *config.LevelTable
	// Seed 本次启动的随机种子，决定所有局的波次和舰船外观
	Seed   uint64
	Logger *zap.Logger
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sim          *simulation.Simulation
	sceneManager *scenes.SceneManager
	saves        *game.SaveManager
	display      *game.SettingsManager
	width        int
	height       int
	scale        int
	logger       *zap.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 存档目录不可用时以降级模式运行（最佳成绩只保存在内存中）。
func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil || cfg.Levels == nil {
		return nil, fmt.Errorf("app: game config and level table are required")
	}
	settings := cfg.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	storage, err := game.OpenStorage(settings.SaveAppName)
	if err != nil {
		logger.Warn("save storage unavailable, best runs will not persist", zap.Error(err))
		storage = nil
	}
	saves := game.NewSaveManager(storage, logger)
	display := game.NewSettingsManager(storage, logger)

	atlas := scenes.NewSpriteAtlas(logger)
	gs := game.NewGameState(cfg.Game, cfg.Levels, cfg.Seed)
	sim := simulation.New(gs, scenes.EbitenInput{}, atlas, logger)

	width, height := int(cfg.Game.PlayArea.Width), int(cfg.Game.PlayArea.Height)
	play := scenes.NewPlayScene(atlas, width, height, cfg.Seed)
	sceneManager := scenes.NewSceneManager(play, logger)
	sceneManager.Register(scenes.NewMenuScene(play), game.PhaseMenu)
	sceneManager.Register(scenes.NewShopScene(play), game.PhaseSetup)
	sceneManager.Register(scenes.NewGameOverScene(play), game.PhaseGameOver)

	a := &App{
		sim:          sim,
		sceneManager: sceneManager,
		saves:        saves,
		display:      display,
		width:        width,
		height:       height,
		scale:        display.WindowScale(settings.WindowScale),
		logger:       logger.Named("App"),
	}
	sim.OnGameOver = a.recordRun

	a.logger.Info("app initialized",
		zap.Uint64("seed", cfg.Seed),
		zap.String("spawner", string(cfg.Game.Spawner.Mode)),
		zap.Int("width", width),
		zap.Int("height", height))
	return a, nil
}

// recordRun 每局结束时提交成绩
func (a *App) recordRun(gs *game.GameState) {
	record := game.RecordFromState(gs, time.Now())
	improved, err := a.saves.Submit(record)
	if err != nil {
		a.logger.Error("failed to save best run", zap.Error(err))
		return
	}
	if improved {
		a.logger.Info("best run updated", zap.Int("level", record.Level), zap.Int("scrap", record.ScrapEarned))
	}
}

// WindowSize 返回按设置放大后的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.width * a.scale, a.height * a.scale
}

// StartFullscreen 返回上次退出时是否处于全屏
func (a *App) StartFullscreen() bool {
	return a.display.Settings().Fullscreen
}

// saveDisplay 保存显示偏好，失败只记录日志
func (a *App) saveDisplay() {
	if err := a.display.Save(); err != nil {
		a.logger.Warn("failed to save display settings", zap.Error(err))
	}
}

// handleDisplayKeys F11 切换全屏，+/- 调整窗口放大倍数
func (a *App) handleDisplayKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = windowResetDelay
			a.display.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.display.SetFullscreen(true)
		}
		a.saveDisplay()
		return
	}

	if ebiten.IsFullscreen() {
		return
	}
	step := 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		step = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		step = -1
	}
	if step == 0 {
		return
	}
	a.display.SetWindowScale(a.scale + step)
	a.scale = a.display.Settings().WindowScale
	ebiten.SetWindowSize(a.WindowSize())
	a.saveDisplay()
}

// Update 推进一个模拟 tick
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	a.handleDisplayKeys()

	if err := a.sim.Tick(); err != nil {
		return fmt.Errorf("simulation tick %d: %w", a.sim.State().Tick, err)
	}
	return nil
}

// Draw 绘制当前阶段的画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	var best *game.RunRecord
	if record, ok := a.saves.Best(); ok {
		best = &record
	}
	a.sceneManager.Draw(screen, scenes.FrameOf(a.sim, best))
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 像素画面使用最近邻缩放，全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即游戏区域大小）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
