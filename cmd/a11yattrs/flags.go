package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateScenarioPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("scenario file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve scenario path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("scenario file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("scenario path %s is a directory", abs)
	}

	return nil
}
