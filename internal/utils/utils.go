// Package utils holds small file-system helpers shared by the CLI and the
// persistence operation.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory (and parents) if it doesn't exist.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetOutputPath generates an output path based on input path and options.
func GetOutputPath(inputPath, outputOption string) (string, error) {
	if outputOption == "" {
		// Use input filename with .md extension
		base := filepath.Base(inputPath)
		ext := filepath.Ext(base)
		return strings.TrimSuffix(base, ext) + ".md", nil
	}

	// Check if outputOption is a directory
	info, err := os.Stat(outputOption)
	if err == nil && info.IsDir() {
		base := filepath.Base(inputPath)
		ext := filepath.Ext(base)
		return filepath.Join(outputOption, strings.TrimSuffix(base, ext)+".md"), nil
	}

	// Output is a specific file path
	return outputOption, nil
}

// SaveToMarkdownFile writes content under outputDir, creating the directory
// if needed and appending ".md" to fileName when missing. An existing file
// at that path is overwritten. Returns the absolute path written.
func SaveToMarkdownFile(content, fileName, outputDir string) (string, error) {
	if err := EnsureDir(outputDir); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	if !strings.HasSuffix(fileName, ".md") {
		fileName += ".md"
	}

	outputPath, err := filepath.Abs(filepath.Join(outputDir, fileName))
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outputPath, err)
	}

	return outputPath, nil
}
