package testutil

import (
	"errors"

	"github.com/AntonioJCosta/dbgalias/internal/core/ports"
)

// MockInitFileAccessor is a mock implementation of ports.InitFileAccessor for testing.
type MockInitFileAccessor struct {
	GetExistingShortcutsFunc func() (map[string]string, error)
	WriteShortcutFileFunc    func(content string) (string, error)
	EnsureSourcedFunc        func(path string) (bool, error)
	GetInitFilePathFunc      func() string
}

func (m *MockInitFileAccessor) GetExistingShortcuts() (map[string]string, error) {
	if m.GetExistingShortcutsFunc != nil {
		return m.GetExistingShortcutsFunc()
	}
	return nil, errors.New("MockInitFileAccessor: GetExistingShortcutsFunc not implemented")
}

func (m *MockInitFileAccessor) WriteShortcutFile(content string) (string, error) {
	if m.WriteShortcutFileFunc != nil {
		return m.WriteShortcutFileFunc(content)
	}
	return "", errors.New("MockInitFileAccessor: WriteShortcutFileFunc not implemented")
}

func (m *MockInitFileAccessor) EnsureSourced(path string) (bool, error) {
	if m.EnsureSourcedFunc != nil {
		return m.EnsureSourcedFunc(path)
	}
	return false, errors.New("MockInitFileAccessor: EnsureSourcedFunc not implemented")
}

func (m *MockInitFileAccessor) GetInitFilePath() string {
	if m.GetInitFilePathFunc != nil {
		return m.GetInitFilePathFunc()
	}
	return ""
}

var _ ports.InitFileAccessor = (*MockInitFileAccessor)(nil)
