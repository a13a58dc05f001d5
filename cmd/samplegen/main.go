// Command samplegen generates sample MX messages for every supported type
// and scenario, writing JSON payloads and document XML to an output
// directory. Useful for seeding test fixtures and downstream simulators.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"mxmessage_backend/internal/messages/service"
	"mxmessage_backend/internal/messages/transport"
	"mxmessage_backend/internal/mx/registry"
	"mxmessage_backend/internal/sample"
	"mxmessage_backend/platform/config"
	"mxmessage_backend/platform/logger"
)

func main() {
	outDir := flag.String("out", "samples", "output directory")
	count := flag.Int("count", 1, "samples per scenario")
	only := flag.String("type", "", "restrict to one message type (e.g. pacs.008)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	log := logger.New(cfg.Env)
	log.Info("starting sample generation", "out", *outDir, "count", *count)

	gen := sample.NewGenerator(cfg.GetScenarioPaths()...)
	svc := service.New(gen, cfg, log)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(4)

	for _, entry := range registry.Entries() {
		if *only != "" && !matches(entry, *only) {
			continue
		}
		scenarios, err := gen.Scenarios(entry.ShortForm)
		if err != nil {
			log.Error("failed to list scenarios", "type", entry.ShortForm, "error", err)
			continue
		}
		for _, scenario := range scenarios {
			entry, scenario := entry, scenario
			g.Go(func() error {
				return writeSamples(ctx, svc, log, *outDir, entry.ShortForm, scenario, *count)
			})
		}
	}

	if err := g.Wait(); err != nil {
		log.Error("sample generation failed", "error", err)
		os.Exit(1)
	}
	log.Info("sample generation complete")
}

func matches(entry registry.Entry, messageType string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(messageType), ".", "")
	return strings.ReplaceAll(entry.ShortForm, ".", "") == normalized ||
		entry.FullForm == messageType
}

func writeSamples(ctx context.Context, svc *service.Service, log *logger.Logger, outDir, messageType, scenario string, count int) error {
	resp, err := svc.Generate(ctx, transport.GenerateRequest{
		MessageType: messageType,
		Scenario:    scenario,
		Count:       count,
		Format:      "xml",
	})
	if err != nil {
		return fmt.Errorf("generate %s/%s: %w", messageType, scenario, err)
	}

	dir := filepath.Join(outDir, strings.ReplaceAll(messageType, ".", ""))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for i, generated := range resp.Samples {
		if !generated.Valid {
			log.Warn("generated sample failed validation",
				"type", messageType, "scenario", scenario, "errors", len(generated.Errors))
		}
		data, err := json.MarshalIndent(generated.Payload, "", "  ")
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s_%d.json", scenario, i+1)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
		if generated.XML != "" {
			name = fmt.Sprintf("%s_%d.xml", scenario, i+1)
			if err := os.WriteFile(filepath.Join(dir, name), []byte(generated.XML), 0o644); err != nil {
				return err
			}
		}
	}

	log.Info("samples written", "type", messageType, "scenario", scenario, "count", len(resp.Samples))
	return nil
}
