package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/tsplay/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the debug log
	logger.Reset()
	logger.Init(os.DevNull)

	SetStyles(
		lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(),
		lipgloss.Color("#7C3AED"), lipgloss.Color("#06B6D4"), lipgloss.Color("#F9FAFB"),
		lipgloss.Color("#9CA3AF"), lipgloss.Color("#1F2937"), lipgloss.Color("#F59E0B"),
		60, 100,
	)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
