package sample

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"mxmessage_backend/internal/mx/validate"
)

// Generator produces synthetic message payloads from scenario templates.
type Generator struct {
	paths []string
}

// NewGenerator creates a generator searching the given base paths, or the
// default paths when none are given.
func NewGenerator(paths ...string) *Generator {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	return &Generator{paths: paths}
}

// Paths returns the scenario search paths.
func (g *Generator) Paths() []string {
	return g.paths
}

// Generate loads the named scenario for a message type and produces a
// JSON-shaped payload. An empty scenario name selects "default".
func (g *Generator) Generate(messageType, scenarioName string) (map[string]any, error) {
	if scenarioName == "" {
		scenarioName = "default"
	}
	scenario, err := FindScenario(g.paths, messageType, scenarioName)
	if err != nil {
		return nil, err
	}
	return processScenario(scenario)
}

// Scenarios lists the scenario names available for a message type.
func (g *Generator) Scenarios(messageType string) ([]string, error) {
	return ListScenarios(g.paths, messageType)
}

// processScenario generates the variables, then substitutes them into the
// schema.
func processScenario(scenario *Scenario) (map[string]any, error) {
	vars := make(map[string]any, len(scenario.Variables))
	for key, spec := range scenario.Variables {
		value, err := generateValue(spec)
		if err != nil {
			return nil, err
		}
		vars[key] = value
	}

	result, err := substitute(scenario.Schema, vars)
	if err != nil {
		return nil, err
	}
	payload, ok := result.(map[string]any)
	if !ok {
		return nil, validate.NewError(validate.CodeGeneration,
			"scenario schema did not produce an object")
	}
	return payload, nil
}

// generateValue evaluates a value spec: a fake generator, a concatenation,
// a random pick, or a literal.
func generateValue(spec any) (any, error) {
	obj, ok := spec.(map[string]any)
	if !ok {
		return spec, nil
	}

	if fakeSpec, ok := obj["fake"].([]any); ok && len(fakeSpec) > 0 {
		kind, ok := fakeSpec[0].(string)
		if !ok {
			return nil, validate.NewError(validate.CodeGeneration, "fake spec kind must be a string")
		}
		return fakeValue(kind, fakeSpec[1:])
	}

	if parts, ok := obj["cat"].([]any); ok {
		return concatenate(parts)
	}

	if options, ok := obj["pick"].([]any); ok && len(options) > 0 {
		return options[rand.Intn(len(options))], nil
	}

	return spec, nil
}

func concatenate(parts []any) (any, error) {
	// A single non-literal part is evaluated directly, stringifying numbers.
	if len(parts) == 1 {
		if _, ok := parts[0].(map[string]any); ok {
			value, err := generateValue(parts[0])
			if err != nil {
				return nil, err
			}
			return stringify(value), nil
		}
	}

	var sb strings.Builder
	for _, part := range parts {
		switch typed := part.(type) {
		case string:
			sb.WriteString(typed)
		case map[string]any:
			value, err := generateValue(typed)
			if err != nil {
				return nil, err
			}
			sb.WriteString(stringify(value))
		default:
			sb.WriteString(stringify(part))
		}
	}
	return sb.String(), nil
}

func stringify(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int:
		return strconv.Itoa(typed)
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// substitute walks the schema, resolving {"var": name} references and
// evaluating any remaining generator specs in place.
func substitute(value any, vars map[string]any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		if name, ok := typed["var"].(string); ok {
			if resolved, exists := vars[name]; exists {
				return resolved, nil
			}
			return nil, validate.NewError(validate.CodeGeneration,
				fmt.Sprintf("scenario references undefined variable %q", name))
		}
		if _, ok := typed["fake"]; ok {
			return generateValue(typed)
		}
		if parts, ok := typed["cat"].([]any); ok {
			resolved := make([]any, len(parts))
			for i, part := range parts {
				r, err := substitute(part, vars)
				if err != nil {
					return nil, err
				}
				resolved[i] = r
			}
			return concatenate(resolved)
		}
		if _, ok := typed["pick"]; ok {
			return generateValue(typed)
		}

		out := make(map[string]any, len(typed))
		for key, val := range typed {
			resolved, err := substitute(val, vars)
			if err != nil {
				return nil, err
			}
			out[key] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			resolved, err := substitute(item, vars)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return value, nil
	}
}
