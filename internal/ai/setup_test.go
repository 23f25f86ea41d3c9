package ai

import (
	"os"
	"testing"

	"github.com/szydell/ufoai/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
