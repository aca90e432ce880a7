package suite

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/patternlab/internal/ctxlog"
)

// Load reads the suite file or directory at path and merges every .hcl file
// found into a single Config. A directory is walked recursively; a file is
// loaded as-is.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading suite configuration.", "path", path)

	filePaths, err := findSuiteFiles(path)
	if err != nil {
		return nil, fmt.Errorf("failed to locate suite files: %w", err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl suite files found in path.", "path", path)
		return NewConfig(), nil
	}
	logger.Debug("Found suite files to load.", "files", filePaths)

	cfg := NewConfig()
	parser := hclparse.NewParser()

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse suite file %s: %w", filePath, diags)
		}

		var sf suiteFile
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &sf); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode suite file %s: %w", filePath, diags)
		}

		if err := cfg.merge(&sf, filePath); err != nil {
			return nil, err
		}
		logger.Debug("Successfully loaded suite file.", "file", filePath)
	}

	logger.Info("Suite configuration loaded.", "selected", len(cfg.Examples), "argument_blocks", len(cfg.Arguments))
	return cfg, nil
}

// merge folds one decoded suite file into the config.
func (c *Config) merge(sf *suiteFile, filePath string) error {
	if sf.Suite != nil {
		c.Examples = append(c.Examples, sf.Suite.Examples...)
	}

	for _, ex := range sf.Examples {
		if _, exists := c.Arguments[ex.Name]; exists {
			return fmt.Errorf("duplicate example block %q in %s", ex.Name, filePath)
		}
		args, err := extractBodyAttributes(ex.Arguments)
		if err != nil {
			return fmt.Errorf("in example block %q of %s: %w", ex.Name, filePath, err)
		}
		c.Arguments[ex.Name] = args
	}
	return nil
}

// findSuiteFiles resolves path to the list of .hcl files it names: the file
// itself, or every .hcl file under it when path is a directory.
func findSuiteFiles(rootPath string) ([]string, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
