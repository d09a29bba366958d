package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/treemarkgo/internal/app"
	"github.com/vk/treemarkgo/internal/config"
	"github.com/vk/treemarkgo/internal/hcl"
	"github.com/vk/treemarkgo/internal/registry"
	"github.com/vk/treemarkgo/internal/yamlcfg"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Output    string
	Err       error
	App       *app.App
}

// RunCompileTest provides a standardized harness for running integration
// tests using a default background context.
func RunCompileTest(t *testing.T, files map[string]string, packs ...registry.Module) *HarnessResult {
	t.Helper()
	return RunCompileTestWithContext(context.Background(), t, files, packs...)
}

// RunCompileTestWithContext writes the given fixture files into a temporary
// directory, builds an App against its components/ subdirectory, compiles
// everything under its markup/ subdirectory, and captures the results.
//
// File names are relative paths such as "components/widget.hcl" or
// "markup/page.html"; the subdirectory structure is created as needed. The
// manifest loader is chosen the way the CLI chooses it: YAML when the
// fixtures carry only YAML manifests, HCL otherwise.
func RunCompileTestWithContext(ctx context.Context, t *testing.T, files map[string]string, packs ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-integration-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	markupDir := filepath.Join(tmpDir, "markup")
	componentsDir := filepath.Join(tmpDir, "components")
	require.NoError(t, os.Mkdir(markupDir, 0755))
	require.NoError(t, os.Mkdir(componentsDir, 0755))

	hclCount, yamlCount := 0, 0
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

		switch {
		case strings.HasSuffix(name, ".hcl"):
			hclCount++
		case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
			yamlCount++
		}
	}

	var loader config.Loader = hcl.NewLoader()
	if hclCount == 0 && yamlCount > 0 {
		loader = yamlcfg.NewLoader()
	}

	appConfig := &app.Config{
		MarkupPath:     markupDir,
		ComponentsPath: componentsDir,
		LogLevel:       "debug",
		LogFormat:      "text",
		Strict:         true,
		Workers:        4,
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("TREEMARK_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, appConfig, loader, packs...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Output:    outBuffer.String(),
			Err:       fmt.Errorf("application startup panicked: %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx, appConfig)

	if os.Getenv("TREEMARK_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    outBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
