package fbx

import (
	"errors"
)

// Manager 管理一次导出会话的全部资源，用完必须Destroy
type Manager struct {
	ioSettings *IOSettings
	exporters  []*Exporter
	destroyed  bool
}

// IOSettings 导出选项，目前只支持ASCII输出
type IOSettings struct {
	ASCII bool
}

func NewManager() (*Manager, error) {
	m := &Manager{}
	return m, nil
}

func NewIOSettings(m *Manager) *IOSettings {
	if m == nil || m.destroyed {
		return nil
	}
	return &IOSettings{ASCII: true}
}

func (m *Manager) SetIOSettings(ios *IOSettings) {
	m.ioSettings = ios
}

func (m *Manager) IOSettings() *IOSettings {
	return m.ioSettings
}

// Destroy 释放所有挂在管理器上的资源，可重复调用
func (m *Manager) Destroy() {
	if m == nil || m.destroyed {
		return
	}
	for _, e := range m.exporters {
		e.Destroy()
	}
	m.exporters = nil
	m.destroyed = true
}

func (m *Manager) alive() error {
	if m == nil {
		return errors.New("fbx: nil manager")
	}
	if m.destroyed {
		return errors.New("fbx: manager already destroyed")
	}
	return nil
}
