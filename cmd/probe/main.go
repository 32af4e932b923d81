package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/turismo/backoffice-console/internal/config"
	"github.com/turismo/backoffice-console/internal/pkg/resource"
)

func main() {
	cfg := config.Load()

	name := flag.String("resource", "customers", "resource to fetch, e.g. bookings")
	id := flag.Int64("id", 0, "fetch a single entity instead of the list")
	timeout := flag.Duration("timeout", cfg.BackendTimeout, "request timeout")
	flag.Parse()

	if err := run(os.Stdout, cfg, *name, *id, *timeout); err != nil {
		log.Fatalf("Probe failed: %v", err)
	}
}

func run(out io.Writer, cfg *config.Config, name string, id int64, timeout time.Duration) error {
	if !known(name) {
		return fmt.Errorf("unknown resource %q, expected one of %v", name, config.Resources)
	}

	client := resource.New[json.RawMessage, json.RawMessage](name, cfg.ResourceURL(name),
		resource.WithTimeout(timeout),
		resource.WithUserAgent(cfg.BackendUserAgent),
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var data interface{}
	if id > 0 {
		item, err := client.GetByID(ctx, id)
		if err != nil {
			return err
		}
		data = item
	} else {
		items, err := client.ListAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "--- %s: %d ---\n", name, len(items))
		data = items
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func known(name string) bool {
	for _, r := range config.Resources {
		if r == name {
			return true
		}
	}
	return false
}
