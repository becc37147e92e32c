package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/scratchcard/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ScratchConfigPath 默认刮刮卡配置文件路径（嵌入资源）
const ScratchConfigPath = "data/scratch.yaml"

// ScratchConfig 刮刮卡配置
//
// 包含揭晓阈值、笔刷宽度、淡出速度、基础尺寸、遮罩颜色和奖品图片等参数。
//
// 配置文件位置: data/scratch.yaml
type ScratchConfig struct {
	// RevealThreshold 揭晓阈值（已刮除像素占比，0.0 ~ 1.0）
	RevealThreshold float64 `yaml:"revealThreshold"`

	// BrushSize 笔刷宽度（表面坐标单位）
	BrushSize float64 `yaml:"brushSize"`

	// FadeStep 每帧淡出步长
	FadeStep float64 `yaml:"fadeStep"`

	// BaseWidth / BaseHeight 竖屏时的卡片尺寸，横屏时宽高互换
	BaseWidth  int `yaml:"baseWidth"`
	BaseHeight int `yaml:"baseHeight"`

	// MaskColor 遮罩颜色，格式 "#RRGGBB"
	MaskColor string `yaml:"maskColor"`

	// PrizeImage 奖品图片路径（"assets/" 开头从嵌入资源读取）
	PrizeImage string `yaml:"prizeImage"`

	// DecodeRetryDelay 图片未解码时的重绘延迟，如 "100ms"
	DecodeRetryDelay Duration `yaml:"decodeRetryDelay"`

	// MessageText 完全揭晓后显示的祝贺文字
	MessageText string `yaml:"messageText"`

	// MessageFontSize 祝贺文字字号
	MessageFontSize float64 `yaml:"messageFontSize"`

	// SoundEnabled 揭晓时是否播放提示音
	SoundEnabled bool `yaml:"soundEnabled"`

	// ChimeVolume 提示音音量 0.0 ~ 1.0
	ChimeVolume float64 `yaml:"chimeVolume"`
}

// Duration 支持 YAML 字符串形式（"100ms"）的时长
type Duration time.Duration

// UnmarshalYAML 解析 "100ms" 形式的时长
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML 输出 "100ms" 形式
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std 返回 time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DefaultScratchConfig 返回默认配置
func DefaultScratchConfig() *ScratchConfig {
	return &ScratchConfig{
		RevealThreshold:  0.40,
		BrushSize:        40,
		FadeStep:         0.02,
		BaseWidth:        400,
		BaseHeight:       600,
		MaskColor:        "#AAAAAA",
		PrizeImage:       "assets/images/prize.png",
		DecodeRetryDelay: Duration(100 * time.Millisecond),
		MessageText:      "Congratulations! You won!",
		MessageFontSize:  28,
		SoundEnabled:     true,
		ChimeVolume:      0.6,
	}
}

// LoadScratchConfig 加载刮刮卡配置
//
// 路径以 "data/" 开头且嵌入资源已初始化时从嵌入资源读取，否则从磁盘读取。
// 文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/scratch.yaml"）
//
// 返回:
//   - *ScratchConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadScratchConfig(path string) (*ScratchConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scratch config: %w", err)
	}
	return ParseScratchConfig(data)
}

// ParseScratchConfig 从 YAML 数据解析配置
func ParseScratchConfig(data []byte) (*ScratchConfig, error) {
	cfg := DefaultScratchConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scratch config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scratch config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") {
		if data, err := embedded.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return os.ReadFile(path)
}

// Validate 验证配置有效性
//
// 检查：
//   - 揭晓阈值在 (0, 1] 范围内
//   - 笔刷宽度、淡出步长、尺寸为正
//   - 遮罩颜色可解析
//   - 奖品图片路径非空
func (c *ScratchConfig) Validate() error {
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		return fmt.Errorf("revealThreshold must be in (0, 1], got %.3f", c.RevealThreshold)
	}
	if c.BrushSize <= 0 {
		return fmt.Errorf("brushSize must be positive, got %.1f", c.BrushSize)
	}
	if c.FadeStep <= 0 || c.FadeStep > 1 {
		return fmt.Errorf("fadeStep must be in (0, 1], got %.3f", c.FadeStep)
	}
	if c.BaseWidth <= 0 || c.BaseHeight <= 0 {
		return fmt.Errorf("base size must be positive, got %dx%d", c.BaseWidth, c.BaseHeight)
	}
	if _, err := ParseHexColor(c.MaskColor); err != nil {
		return fmt.Errorf("maskColor: %w", err)
	}
	if c.PrizeImage == "" {
		return fmt.Errorf("prizeImage must not be empty")
	}
	if c.DecodeRetryDelay < 0 {
		return fmt.Errorf("decodeRetryDelay must not be negative")
	}
	if c.ChimeVolume < 0 || c.ChimeVolume > 1 {
		return fmt.Errorf("chimeVolume must be in [0, 1], got %.2f", c.ChimeVolume)
	}
	return nil
}

// Mask 返回解析后的遮罩颜色（Validate 之后调用不会失败）
func (c *ScratchConfig) Mask() color.RGBA {
	col, err := ParseHexColor(c.MaskColor)
	if err != nil {
		return color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	}
	return col
}

// ParseHexColor 解析 "#RGB" 或 "#RRGGBB" 格式的不透明颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RGB or #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
