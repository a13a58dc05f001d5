// Package sample fabricates synthetic MX messages from JSON or YAML scenario
// templates, for fixtures and integration testing.
package sample

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"mxmessage_backend/internal/mx/validate"
)

// ScenarioPathEnv overrides the scenario search paths with a colon separated
// list of directories.
const ScenarioPathEnv = "MX_SCENARIO_PATH"

var scenarioExtensions = []string{".json", ".yaml", ".yml"}

// Scenario is a parsed scenario template: a set of named variables and a
// schema that references them.
type Scenario struct {
	Variables map[string]any `json:"variables" yaml:"variables"`
	Schema    map[string]any `json:"schema" yaml:"schema"`
}

// DefaultPaths returns the scenario search paths: the environment override
// when set, otherwise the conventional test_scenarios directories.
func DefaultPaths() []string {
	if env := os.Getenv(ScenarioPathEnv); env != "" {
		var paths []string
		for _, p := range strings.Split(env, ":") {
			if p != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) > 0 {
			return paths
		}
	}
	return []string{"test_scenarios", filepath.Join("..", "test_scenarios")}
}

// FindScenario locates and parses the named scenario for a message type,
// searching each base path for <type>/<name> with a known extension. The
// message type directory uses the compact spelling, e.g. "pacs008".
func FindScenario(basePaths []string, messageType, name string) (*Scenario, error) {
	dir := compactType(messageType)
	for _, base := range basePaths {
		for _, ext := range scenarioExtensions {
			path := filepath.Join(base, dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return loadScenario(path)
			}
		}
	}
	return nil, validate.NewError(validate.CodeScenario,
		fmt.Sprintf("no scenario %q found for message type %s", name, messageType))
}

// ListScenarios returns the scenario names available for a message type
// across all base paths, sorted and deduplicated.
func ListScenarios(basePaths []string, messageType string) ([]string, error) {
	dir := compactType(messageType)
	seen := map[string]bool{}
	for _, base := range basePaths {
		items, err := os.ReadDir(filepath.Join(base, dir))
		if err != nil {
			continue
		}
		for _, item := range items {
			if item.IsDir() {
				continue
			}
			ext := filepath.Ext(item.Name())
			for _, known := range scenarioExtensions {
				if ext == known {
					seen[strings.TrimSuffix(item.Name(), ext)] = true
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func loadScenario(path string) (*Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, validate.NewError(validate.CodeScenario,
			fmt.Sprintf("failed to read scenario file: %v", err))
	}

	var scenario Scenario
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &scenario)
	default:
		err = json.Unmarshal(content, &scenario)
	}
	if err != nil {
		return nil, validate.NewError(validate.CodeScenario,
			fmt.Sprintf("failed to parse scenario file %s: %v", filepath.Base(path), err))
	}
	if scenario.Schema == nil {
		return nil, validate.NewError(validate.CodeScenario,
			fmt.Sprintf("scenario %s is missing the schema section", filepath.Base(path)))
	}
	return &scenario, nil
}

func compactType(messageType string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(messageType)), ".", "")
}
