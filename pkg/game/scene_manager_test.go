package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// MockSaveableScene also implements Saveable.
type MockSaveableScene struct {
	MockScene
	saveCalls int
	result    bool
}

func (m *MockSaveableScene) SaveOnExit() bool {
	m.saveCalls++
	return m.result
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerDraw verifies that Draw reaches the current scene.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene verifies that a manager without a scene is inert.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	if !sm.SaveCurrent() {
		t.Error("SaveCurrent with no scene should report success")
	}
}

// TestSceneManagerReload verifies that Reload saves the old scene and installs a new one.
func TestSceneManagerReload(t *testing.T) {
	tests := []struct {
		name      string
		factory   SceneFactory
		wantSwap  bool
		wantSaved int
	}{
		{"no factory", nil, false, 0},
		{"factory returns nil", func() Scene { return nil }, false, 1},
		{"factory returns scene", func() Scene { return &MockScene{} }, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			old := &MockSaveableScene{result: true}
			sm.SwitchTo(old)
			sm.SetSceneFactory(tt.factory)

			sm.Reload()

			swapped := sm.GetCurrentScene() != Scene(old)
			if swapped != tt.wantSwap {
				t.Errorf("scene swapped = %v, want %v", swapped, tt.wantSwap)
			}
			if old.saveCalls != tt.wantSaved {
				t.Errorf("SaveOnExit called %d times, want %d", old.saveCalls, tt.wantSaved)
			}
		})
	}
}

// TestSceneManagerSaveCurrent verifies the Saveable result is passed through.
func TestSceneManagerSaveCurrent(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&MockSaveableScene{result: false})
	if sm.SaveCurrent() {
		t.Error("SaveCurrent should report the scene's failure")
	}
}
