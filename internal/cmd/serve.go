package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/hub"
	"github.com/luispauloloureiro/unfdashboard/internal/server"
	"github.com/luispauloloureiro/unfdashboard/internal/source"
	"github.com/luispauloloureiro/unfdashboard/internal/store"
	"github.com/spf13/cobra"
)

var (
	servePort     string
	serveInterval time.Duration
	servePageSize int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard web server",
	Long: `Serve the dashboard: load the activity log, re-load it on a fixed
interval, and expose the web UI, JSON API and WebSocket refresh channel.

Examples:
  unfdash serve
  unfdash serve --port 9000 --interval 10m
  unfdash serve --csv "exports/*.csv"`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "listen port")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", store.DefaultRefreshInterval, "auto-refresh interval")
	serveCmd.Flags().IntVar(&servePageSize, "page-size", 50, "detail table page size")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// --- Set up context with graceful shutdown ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "shutting down...")
		cancel()
	}()

	// --- Build the CSV source ---
	src, fileSrc, err := buildSource()
	if err != nil {
		return err
	}

	st := store.New(src)
	h := hub.New()
	defer h.Close()

	// --- Initial load ---
	if refresh := st.Load(ctx); refresh.Err != "" {
		log.Printf("initial load failed, serving sample data: %s", refresh.Err)
	} else {
		log.Printf("loaded %d records", refresh.Total)
	}

	// --- Auto-refresh schedule ---
	refresher := store.NewRefresher(st, serveInterval, h.Publish)
	refresher.Start(ctx)
	defer refresher.Stop()

	// --- Local file watching (reload on new/changed exports) ---
	if fileSrc != nil {
		go func() {
			if err := fileSrc.Watch(ctx, func() {
				h.Publish(st.Load(ctx))
			}); err != nil {
				log.Printf("file watch failed: %v", err)
			}
		}()
	}

	// --- Web server ---
	srv := server.New(st, h, servePort, servePageSize)
	log.Printf("dashboard listening on :%s", servePort)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// buildSource picks the CSV source: a local export glob when --csv is
// set, the published sheet URL otherwise. The second return value is
// non-nil only for the file source, which supports watching.
func buildSource() (store.Source, *source.FileSource, error) {
	if glob := configured(csvGlob, "csv", ""); glob != "" {
		fs, err := source.NewFileSource(glob)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs, nil
	}
	url := configured(sheetURL, "sheet_url", defaultSheetURL)
	return source.NewSheetFetcher(url), nil, nil
}
