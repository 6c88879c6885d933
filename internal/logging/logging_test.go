package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-lootsheet/internal/config"
	"github.com/KirkDiggler/rpg-lootsheet/internal/logging"
)

type LoggingTestSuite struct {
	suite.Suite
}

func (s *LoggingTestSuite) TestJSONToStderr() {
	var buf bytes.Buffer
	logger, closer := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("Populated token", "token", "Scene.cave.Token.g1")

	var line map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &line))
	s.Equal("Populated token", line["msg"])
	s.Equal("Scene.cave.Token.g1", line["token"])
}

func (s *LoggingTestSuite) TestRotatingFile() {
	path := filepath.Join(s.T().TempDir(), "lootsheet.log")
	var buf bytes.Buffer
	logger, closer := logging.New(config.LogConfig{Level: "debug", Format: "text", File: path}, &buf)

	logger.Debug("Rolled table", "table", "armory")
	s.Require().NoError(closer.Close())

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(data), "table=armory")
	s.Contains(buf.String(), "table=armory")
}

func (s *LoggingTestSuite) TestParseLevel() {
	s.Equal(slog.LevelDebug, logging.ParseLevel("debug"))
	s.Equal(slog.LevelWarn, logging.ParseLevel("WARN"))
	s.Equal(slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestLoggingSuite(t *testing.T) {
	suite.Run(t, new(LoggingTestSuite))
}
