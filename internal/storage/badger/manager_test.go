package badger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hospitek/vitrine/internal/common"
)

// newTestManager opens a storage manager on a throwaway directory
func newTestManager(t *testing.T) *Manager {
	t.Helper()

	cfg := &common.BadgerConfig{Path: t.TempDir()}
	manager, err := NewManager(common.GetLogger(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		manager.Close()
	})

	return manager.(*Manager)
}
