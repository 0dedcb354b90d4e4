package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/websiteboss/sitegen/internal/record"
	"github.com/websiteboss/sitegen/pkg/export"
	"github.com/websiteboss/sitegen/pkg/orchestrator"
)

func main() {
	// A .env next to the binary can pre-seed the directories; absence is
	// fine.
	_ = godotenv.Load()

	store := pflag.String("store", envOr("SITEGEN_STORE_DIR", ".sitegen"), "wizard session directory to read records from")
	output := pflag.String("output", envOr("SITEGEN_OUTPUT_DIR", "."), "directory the exported file is written to")
	renderer := pflag.String("renderer", "document", "renderer to use (document or preview)")
	stdout := pflag.Bool("stdout", false, "write the rendered output to stdout instead of a file")
	pflag.Parse()

	ctx := context.Background()
	gen := orchestrator.New()

	rendered, err := gen.Generate(ctx, orchestrator.Request{
		StoreDir: *store,
		Renderer: *renderer,
	})
	if err != nil {
		log.Fatalf("Failed to generate site: %v", err)
	}

	if *stdout {
		fmt.Println(string(rendered))
		return
	}

	records := record.Load(*store)
	name := export.Filename(records.Profile.BusinessName)
	if *renderer == "preview" {
		name = strings.TrimSuffix(name, ".html") + ".json"
	}

	path, err := export.Write(*output, name, rendered)
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Website written to %s\n", path)
}

func envOr(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
