package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"seiscube/internal/models"
	"seiscube/internal/tui"
	"seiscube/pkg/client"
	"seiscube/pkg/config"
	"seiscube/pkg/cube"
	"seiscube/pkg/render"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "seiscube.yaml", "Configuration file path")
	serverURL := flag.String("server", "", "Backend API base URL (remote mode)")
	demo := flag.Bool("demo", false, "View a synthetic demo cube (offline mode)")
	upload := flag.String("upload", "", "Seismic file to upload to the backend before viewing")
	output := flag.String("out", "", "Output HTML document (overrides config)")
	scheme := flag.String("scheme", "", "Initial color scheme (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *output != "" {
		cfg.Viewer.OutputHTML = *output
	}
	if *scheme != "" {
		cfg.Viewer.ColorScheme = *scheme
	}
	if *serverURL != "" {
		cfg.Server.BaseURL = *serverURL
	}

	// Pick the fetch boundary: the backend API, or the synthetic cube.
	var fetcher client.Fetcher
	switch {
	case *demo:
		fetcher = client.NewLocalFetcher(cube.Demo(cfg.Demo.Inlines, cfg.Demo.Xlines, cfg.Demo.Samples))
	case *serverURL != "" || cfg.Server.BaseURL != "":
		httpc := client.NewHTTPClient(cfg.Server.BaseURL,
			time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
		if err := httpc.Health(context.Background()); err != nil {
			log.Fatalf("Backend is not reachable: %v", err)
		}
		if *upload != "" {
			if err := uploadFile(httpc, *upload); err != nil {
				log.Fatalf("Upload failed: %v", err)
			}
		}
		fetcher = httpc
	default:
		flag.Usage()
		log.Fatal("Either -server or -demo is required")
	}

	renderer := &render.HTMLRenderer{Path: cfg.Viewer.OutputHTML}
	opts := render.Options{
		DisplayModeBar: cfg.Viewer.DisplayModeBar,
		Responsive:     cfg.Viewer.Responsive,
	}
	colorSpec := models.ColorSpec{
		Scheme: cfg.Viewer.ColorScheme,
		Custom: cfg.Viewer.CustomColors,
	}
	visibility := models.SliceVisibility{
		Inline: cfg.Viewer.ShowInline,
		Xline:  cfg.Viewer.ShowXline,
		Sample: cfg.Viewer.ShowSample,
	}

	program := tea.NewProgram(tui.New(fetcher, renderer, opts, colorSpec, visibility))
	if _, err := program.Run(); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}

// uploadFile posts one seismic file to the backend, making it the cube the
// viewer loads.
func uploadFile(c *client.HTTPClient, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := c.Upload(context.Background(), filepath.Base(path), f)
	if err != nil {
		return err
	}
	log.Printf("Uploaded %s (cube %s)", filepath.Base(path), result.CubeID)
	return nil
}
