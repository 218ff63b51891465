package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/agenthands/cinegraph/internal/catalog"
	"github.com/agenthands/cinegraph/internal/config"
	"github.com/agenthands/cinegraph/internal/core"
	"github.com/agenthands/cinegraph/internal/core/graph"
	"github.com/agenthands/cinegraph/internal/logging"
	"github.com/agenthands/cinegraph/internal/server"
	"github.com/agenthands/cinegraph/internal/shell"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	topLimit int

	normalizeCmd = &cobra.Command{
		Use:   "normalize",
		Short: "Clean the raw CSV catalogs and write canonical records to the record store",
		Args:  cobra.NoArgs,
		RunE:  runNormalize,
	}

	shellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve graph queries over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	pathCmd = &cobra.Command{
		Use:   "path [from] [to]",
		Short: `Print the shortest connection between two titles, e.g. "Drive (2011)"`,
		Args:  cobra.ExactArgs(2),
		RunE:  runPath,
	}

	neighborsCmd = &cobra.Command{
		Use:     "neighbors [title]",
		Short:   "List titles directly connected to a title",
		Aliases: []string{"similar"},
		Args:    cobra.ExactArgs(1),
		RunE:    runNeighbors,
	}

	overlapCmd = &cobra.Command{
		Use:   "overlap",
		Short: "List primary-catalog titles connected to a secondary-catalog title",
		Args:  cobra.NoArgs,
		RunE:  runOverlap,
	}

	topCmd = &cobra.Command{
		Use:   "top",
		Short: "List the most connected titles",
		Args:  cobra.NoArgs,
		RunE:  runTop,
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print graph size and component summary",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
)

func init() {
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "number of titles to list (default from config)")

	rootCmd.AddCommand(normalizeCmd, shellCmd, serveCmd, pathCmd, neighborsCmd, overlapCmd, topCmd, statsCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	stores, err := catalog.OpenStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close(ctx)

	targets := []struct {
		catalog config.CatalogConfig
		sink    catalog.Sink
	}{
		{cfg.Catalog.Primary, stores.Primary},
		{cfg.Catalog.Secondary, stores.Secondary},
	}
	for _, t := range targets {
		records, err := catalog.NewNormalizer(t.catalog.Columns).NormalizeFile(ctx, t.catalog.Raw)
		if err != nil {
			return err
		}
		if err := t.sink.Save(ctx, records); err != nil {
			return err
		}
		logging.Info().Str("catalog", t.catalog.Name).Int("records", len(records)).Msg("catalog cached")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records cached\n", t.catalog.Name, len(records))
	}
	return nil
}

func runShell(cmd *cobra.Command, args []string) error {
	ex, err := core.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	err = shell.New(ex, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ex, err := core.Open(ctx, cfg)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.NewServer(ex).SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runPath(cmd *cobra.Command, args []string) error {
	ex, err := core.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	path, err := graph.ShortestPath(ex.Graph, args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, key := range path {
		fmt.Fprintf(out, "%d. %s\n", i+1, key)
	}
	return nil
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	ex, err := core.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	neighbors, err := graph.Neighbors(ex.Graph, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(neighbors) == 0 {
		fmt.Fprintln(out, "No direct connections found.")
		return nil
	}
	for _, key := range neighbors {
		fmt.Fprintf(out, "- %s\n", key)
	}
	return nil
}

func runOverlap(cmd *cobra.Command, args []string) error {
	ex, err := core.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s titles connected to %s titles:\n", ex.PrimaryName, ex.SecondaryName)
	for _, key := range graph.CrossSourceOverlap(ex.Graph) {
		fmt.Fprintf(out, "- %s\n", key)
	}
	return nil
}

func runTop(cmd *cobra.Command, args []string) error {
	ex, err := core.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	limit := ex.TopLimit
	if cmd.Flags().Changed("limit") {
		limit = topLimit
	}
	out := cmd.OutOrStdout()
	for _, r := range graph.TopConnected(ex.Graph, limit) {
		fmt.Fprintf(out, "%s - %d connections\n", r.Key, r.Degree)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ex, err := core.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	s, r := ex.Summary, ex.Report
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "records:            %d\n", r.Records)
	fmt.Fprintf(out, "nodes:              %d\n", s.Nodes)
	fmt.Fprintf(out, "edges:              %d\n", s.Edges)
	fmt.Fprintf(out, "duplicate keys:     %d\n", len(r.Duplicates))
	fmt.Fprintf(out, "components:         %d\n", s.Components)
	fmt.Fprintf(out, "largest component:  %d\n", s.LargestComponent)
	fmt.Fprintf(out, "isolated titles:    %d\n", s.Isolated)
	fmt.Fprintf(out, "build strategy:     %s (%s)\n", r.Strategy, r.Duration.Round(time.Millisecond))
	if len(r.Duplicates) > 0 {
		keys := make([]string, 0, len(r.Duplicates))
		for _, d := range r.Duplicates {
			keys = append(keys, d.Key)
		}
		fmt.Fprintf(out, "overwritten keys:   %s\n", strings.Join(keys, "; "))
	}
	return nil
}
