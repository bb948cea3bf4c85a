// scenegen builds triangle mesh scenes from a YAML scene file or a named
// preset and writes them as STL.
//
//	scenegen -preset fractals -o fractals.stl
//	scenegen -config scene.yaml -format text -preview scene.png
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/soypat/scene3d/internal/config"
	"github.com/soypat/scene3d/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Fatal("saving config", zap.String("path", path), zap.Error(err))
		}
		logger.Info("saved config", zap.String("path", path))
	}

	s, err := buildScene(cfg.Scene)
	if err != nil {
		logger.Fatal("building scene", zap.Error(err))
	}
	defer s.Destroy()
	if s.Count() == 0 {
		logger.Warn("scene is empty")
	}

	if err := writeScene(s, cfg.Output); err != nil {
		logger.Fatal("writing scene", zap.String("path", cfg.Output.Path), zap.Error(err))
	}
}
