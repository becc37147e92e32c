package game

import (
	"testing"
)

var testDefaults = UserSettings{SoundEnabled: true, SoundVolume: 0.6}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil, testDefaults)

	got := sm.GetSettings()
	if !got.SoundEnabled || got.SoundVolume != 0.6 || got.Fullscreen {
		t.Errorf("unexpected defaults %+v", got)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsDefaultsNotShared 测试修改设置不会影响默认值
func TestSettingsDefaultsNotShared(t *testing.T) {
	sm := NewSettingsManager(nil, testDefaults)
	sm.SetSoundEnabled(false)
	if err := sm.Load(); err != nil {
		t.Fatal(err)
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("Load() in degraded mode should restore the defaults")
	}
}

// TestSetSoundVolume 测试音量限制
func TestSetSoundVolume(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"正常值", 0.5, 0.5},
		{"最小值", 0.0, 0.0},
		{"最大值", 1.0, 1.0},
		{"超出上限", 1.5, 1.0},
		{"低于下限", -0.3, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil, testDefaults)
			sm.SetSoundVolume(tt.input)
			if got := sm.GetSettings().SoundVolume; got != tt.want {
				t.Errorf("SoundVolume = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestToggleSound 测试提示音开关切换
func TestToggleSound(t *testing.T) {
	sm := NewSettingsManager(nil, testDefaults)
	if sm.ToggleSound() {
		t.Error("first toggle should disable sound")
	}
	if !sm.ToggleSound() {
		t.Error("second toggle should enable sound")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestStorage(t, "test_scratch_settings")

	sm1 := NewSettingsManager(manager, testDefaults)
	sm1.SetSoundEnabled(false)
	sm1.SetSoundVolume(0.25)
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 保存过的设置优先于默认值
	sm2 := NewSettingsManager(manager, UserSettings{SoundEnabled: true, SoundVolume: 1})
	got := sm2.GetSettings()
	if got.SoundEnabled || got.SoundVolume != 0.25 || !got.Fullscreen {
		t.Errorf("reloaded settings = %+v", got)
	}
}

// TestSettingsLoadCorrupted 测试损坏数据时回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	manager := openTestStorage(t, "test_scratch_settings_corrupt")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("{{{")); err != nil {
		t.Fatalf("failed to seed corrupt data: %v", err)
	}

	sm := NewSettingsManager(manager, testDefaults)
	if got := sm.GetSettings(); *got != testDefaults {
		t.Errorf("corrupt data should fall back to defaults, got %+v", got)
	}
}
