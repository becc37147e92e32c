// Package app 提供刮刮卡应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/scratchcard/pkg/config"
	"github.com/decker502/scratchcard/pkg/game"
	"github.com/decker502/scratchcard/pkg/scenes"
	"github.com/decker502/scratchcard/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "scratchcard"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 刮刮卡配置文件路径，为空时使用嵌入的 data/scratch.yaml
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	viewport        *game.Viewport
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.ScratchConfigPath
	}
	scratchConfig, err := config.LoadScratchConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s: threshold=%.2f brush=%.0f fade=%.3f",
		configPath, scratchConfig.RevealThreshold, scratchConfig.BrushSize, scratchConfig.FadeStep)

	// 打开持久化存储，失败时进入降级模式
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	storage, err := game.OpenStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (stats and settings will not be saved)", err)
	}

	settingsManager := game.NewSettingsManager(storage, game.UserSettings{
		SoundEnabled: scratchConfig.SoundEnabled,
		SoundVolume:  scratchConfig.ChimeVolume,
	})
	statsManager := game.NewStatsManager(storage)

	audioContext := audio.NewContext(game.SampleRate)
	resourceManager := game.NewResourceManager(audioContext)

	settings := settingsManager.GetSettings()
	audioManager := game.NewAudioManager(audioContext, settings.SoundEnabled, settings.SoundVolume)
	log.Printf("[App] AudioManager initialized (enabled=%v volume=%.2f)", settings.SoundEnabled, settings.SoundVolume)

	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	viewport := game.NewViewport(config.GameWindowWidth, config.GameWindowHeight)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewScratchScene(scenes.SceneDeps{
			Config:          scratchConfig,
			ResourceManager: resourceManager,
			StatsManager:    statsManager,
			SettingsManager: settingsManager,
			AudioManager:    audioManager,
			Viewport:        viewport,
		})
	})
	sceneManager.Reload()

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		viewport:        viewport,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	wasFullscreen := ebiten.IsFullscreen()
	if wasFullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!wasFullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
//
// 逻辑尺寸跟随窗口尺寸，窗口的宽高比决定卡片方向。
// 视口在这里更新，场景在下一次 Update 中检测变化。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewport.Set(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Shutdown 退出前保存当前场景和设置
func (a *App) Shutdown() {
	if !a.sceneManager.SaveCurrent() {
		log.Printf("[App] Warning: scene state was not saved on exit")
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings on exit: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
