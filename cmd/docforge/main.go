package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kwhitfield/docforge/internal/api"
	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/config"
	"github.com/kwhitfield/docforge/internal/content"
	"github.com/kwhitfield/docforge/internal/docx"
	"github.com/kwhitfield/docforge/internal/importer"
	"github.com/kwhitfield/docforge/internal/output"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "docforge",
		Short: "Structured business document generator",
		Long: `Docforge assembles structured business documents into paginated
DOCX files with live fields, styled headings, lists, tables, and
per-section headers and footers.

It ships two ready-made document types (client proposal, master
documentation), renders authored markdown/HTML/YAML sources, and can
serve the same documents over HTTP.`,
		Version: version,
	}

	rootCmd.AddCommand(proposalCmd())
	rootCmd.AddCommand(masterdocCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func proposalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proposal",
		Short: "Generate the client proposal document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPlan(content.Proposal(time.Now()), "")
		},
	}
}

func masterdocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "masterdoc",
		Short: "Generate the master documentation document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPlan(content.MasterDocumentation(time.Now()), "")
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in document types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range content.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render an authored source document to DOCX",
		Long: `Render an authored source document to DOCX.

Supported formats: MD, HTML (heading structure becomes sections) and
YAML content trees (declarative document plans).

Example:
  docforge render report.md
  docforge render plan.yaml --output out/plan.docx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")

			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			return renderPlan(plan, out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "output path (default: derived filename in the working directory)")
	return cmd
}

// loadPlan builds a content plan from an authored file, dispatching on
// extension: YAML trees decode directly, markdown/HTML go through the
// importers.
func loadPlan(path string) (compose.Plan, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return content.LoadFile(path, time.Now())
	}

	imp, err := importer.ForFile(path)
	if err != nil {
		return compose.Plan{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return compose.Plan{}, err
	}
	defer f.Close()

	plan, err := imp.Import(f, filepath.Base(path))
	if err != nil {
		return compose.Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	plan.Date = time.Now()
	return plan, nil
}

// renderPlan builds the document and writes it to the first usable
// output path. An empty primary means the plan's default location.
func renderPlan(plan compose.Plan, primary string) error {
	if primary == "" {
		primary = filepath.Join(content.PrimaryDir, plan.FileName)
	}
	doc := compose.Build(plan)

	res, err := output.Resolve(output.Candidates(primary), func(w io.Writer) error {
		return docx.Write(w, doc)
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved: %s\n", res.Path)
	if res.Fallback {
		fmt.Printf("Note: primary location was not writable, used fallback.\n")
	}
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve documents over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			cfg := config.Load()

			srv := api.NewServer(content.Catalog(), log, cfg)

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting docforge", "port", cfg.Port)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}
