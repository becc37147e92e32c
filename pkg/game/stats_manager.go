package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScratchStats 刮刮卡统计数据
// 只记录累计计数，不保存任何卡片的刮擦或揭晓状态
type ScratchStats struct {
	CardsStarted  int       `yaml:"cardsStarted"`  // 初始化过的卡片数
	CardsRevealed int       `yaml:"cardsRevealed"` // 完全揭晓的卡片数
	StrokesTotal  int       `yaml:"strokesTotal"`  // 累计刮擦笔画数
	LastRevealAt  time.Time `yaml:"lastRevealAt"`  // 最近一次揭晓时间
}

// StatsManager 统计管理器
// 负责统计数据的加载、保存和内存管理
type StatsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	stats        *ScratchStats  // 当前统计
	dirty        bool           // 是否有未保存的修改
	now          func() time.Time
}

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "global"
)

// OpenStorage 打开 gdata 存储
// 失败时返回 nil 和错误，调用方可以使用降级模式继续运行
func OpenStorage(appName string) (*gdata.Manager, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return manager, nil
}

// NewStatsManager 创建新的统计管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存统计）
//
// 返回：
//   - *StatsManager: 统计管理器实例（加载失败时使用空统计）
func NewStatsManager(gdataManager *gdata.Manager) *StatsManager {
	sm := &StatsManager{
		gdataManager: gdataManager,
		stats:        &ScratchStats{},
		now:          time.Now,
	}

	// 加载失败不是致命错误，使用空统计
	if err := sm.Load(); err != nil {
		log.Printf("[StatsManager] Warning: Failed to load stats: %v (starting fresh)", err)
	}

	return sm
}

// Load 从 gdata 加载统计
//
// 如果 gdataManager 为 nil 或数据不存在，使用空统计
func (sm *StatsManager) Load() error {
	if sm.gdataManager == nil {
		sm.stats = &ScratchStats{}
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		sm.stats = &ScratchStats{}
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		sm.stats = &ScratchStats{}
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var loaded ScratchStats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.stats = &ScratchStats{}
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	sm.stats = &loaded
	sm.dirty = false
	log.Printf("[StatsManager] Stats loaded: %d started, %d revealed", loaded.CardsStarted, loaded.CardsRevealed)
	return nil
}

// Save 保存统计到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *StatsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	sm.dirty = false
	log.Printf("[StatsManager] Stats saved successfully")
	return nil
}

// GetStats 获取当前统计（返回副本）
func (sm *StatsManager) GetStats() ScratchStats {
	return *sm.stats
}

// IsDirty 是否有未保存的修改
func (sm *StatsManager) IsDirty() bool {
	return sm.dirty
}

// RecordCardStarted 记录一张新卡片
func (sm *StatsManager) RecordCardStarted() {
	sm.stats.CardsStarted++
	sm.dirty = true
}

// RecordStroke 记录一次刮擦笔画
func (sm *StatsManager) RecordStroke() {
	sm.stats.StrokesTotal++
	sm.dirty = true
}

// RecordReveal 记录一次完全揭晓
func (sm *StatsManager) RecordReveal() {
	sm.stats.CardsRevealed++
	sm.stats.LastRevealAt = sm.now()
	sm.dirty = true
}
