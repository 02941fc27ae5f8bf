package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/dashlaunch/internal/app"
	"github.com/quantmind-br/dashlaunch/internal/catalog"
	"github.com/quantmind-br/dashlaunch/internal/config"
	"github.com/quantmind-br/dashlaunch/internal/history"
	"github.com/quantmind-br/dashlaunch/internal/tui"
	"github.com/quantmind-br/dashlaunch/internal/utils"
	"github.com/quantmind-br/dashlaunch/pkg/version"
)

var (
	cfgFile   string
	verbose   bool
	noHistory bool

	listJSON      bool
	listSorted    bool
	doctorCatalog bool
	historyClear  bool
	configInit    bool
)

func main() {
	// fang styles help and errors, and cancels the command context on
	// SIGINT/SIGTERM so a pending prompt or app unwinds cleanly
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Full()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dashlaunch",
	Short: "Pick and launch a terminal app from a manifest",
	Long: `dashlaunch reads a manifest of apps (apps.json), keeps the ones whose
module exposes a Run entry point, and lets you pick one to launch.

Entries whose module cannot be found, or has no entry point, are left out
of the list. Use "dashlaunch doctor" to see why.`,
	Version:       version.Short(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dashlaunch/config.yaml)")
	rootCmd.PersistentFlags().StringP("manifest", "m", config.DefaultManifestPath, "App manifest (.json, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Do not read or record launch history")

	// Interactive flags
	rootCmd.Flags().Bool("loop", false, "Show the selector again after an app finishes")
	rootCmd.Flags().Bool("accessible", false, "Plain prompts for screen readers")
	rootCmd.Flags().Bool("alt-screen", false, "Draw prompts on the alternate screen")
	rootCmd.Flags().String("theme", config.DefaultTheme, "Prompt theme (charm, dracula, catppuccin, base16, base)")

	// Bind flags to viper
	_ = viper.BindPFlag("manifest.path", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("ui.loop", rootCmd.Flags().Lookup("loop"))
	_ = viper.BindPFlag("ui.accessible", rootCmd.Flags().Lookup("accessible"))
	_ = viper.BindPFlag("ui.alt_screen", rootCmd.Flags().Lookup("alt-screen"))
	_ = viper.BindPFlag("ui.theme", rootCmd.Flags().Lookup("theme"))

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print apps as JSON")
	listCmd.Flags().BoolVar(&listSorted, "sort", false, "Sort apps by name")
	doctorCmd.Flags().BoolVar(&doctorCatalog, "catalog", false, "Also list every module in the built-in catalog")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Forget all launches")
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write a default config file instead of opening the editor")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func newOrchestrator(cmd *cobra.Command) (*app.Orchestrator, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:    cfg,
		Verbose:   verbose,
		NoHistory: noHistory,
		Out:       cmd.OutOrStdout(),
		LogOutput: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}
	return orch, cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	orch, cfg, err := newOrchestrator(cmd)
	if err != nil {
		return err
	}
	defer orch.Close()

	// Line-based prompts when stdin is piped
	accessible := cfg.UI.Accessible || !utils.IsTerminal(cmd.InOrStdin())

	host := tui.NewHost(tui.HostOptions{
		Theme:      cfg.UI.Theme,
		Accessible: accessible,
		AltScreen:  cfg.UI.AltScreen,
		Input:      cmd.InOrStdin(),
		Output:     cmd.OutOrStdout(),
	})
	return orch.Serve(cmd.Context(), host, cfg.UI.Loop)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List runnable apps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, cfg, err := newOrchestrator(cmd)
		if err != nil {
			return err
		}
		defer orch.Close()

		names := orch.Names()
		if listSorted {
			names = orch.Registry().SortedNames(cfg.LocaleTag())
		}

		out := cmd.OutOrStdout()
		if listJSON {
			type item struct {
				Name   string `json:"name"`
				Module string `json:"module"`
			}
			items := make([]item, 0, len(names))
			for _, n := range names {
				m, _ := orch.Registry().Lookup(n)
				items = append(items, item{Name: n, Module: m})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run NAME",
	Short: "Launch an app without prompting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, _, err := newOrchestrator(cmd)
		if err != nil {
			return err
		}
		defer orch.Close()

		return orch.RunApp(cmd.Context(), args[0], io.Discard)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Explain how each manifest entry resolves",
	Long:  "Resolves every manifest entry and reports whether it is offered, and why not.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		orch, cfg, err := newOrchestrator(cmd)
		if err != nil {
			return err
		}
		defer orch.Close()

		fmt.Fprintf(out, "Manifest: %s\n", utils.ExpandPath(cfg.Manifest.Path))
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "Config file: %s\n", used)
		} else {
			fmt.Fprintln(out, "Config file: none (using defaults)")
		}
		switch {
		case noHistory || !cfg.History.Enabled:
			fmt.Fprintln(out, "History: disabled")
		case orch.History() == nil:
			fmt.Fprintf(out, "History: UNAVAILABLE (%s)\n", cfg.History.Directory)
		default:
			fmt.Fprintf(out, "History: OK (%s)\n", cfg.History.Directory)
		}
		fmt.Fprintln(out)

		rows := make([][]string, 0, len(orch.Entries()))
		offered := 0
		for _, st := range orch.Inspect() {
			status := "OK"
			switch {
			case !st.Resolved():
				status = "UNRESOLVED: " + st.Err.Error()
			case !st.Runnable:
				status = "NO ENTRY POINT"
			default:
				offered++
			}
			rows = append(rows, []string{st.Entry.Name, st.Entry.Module, status})
		}
		fmt.Fprintln(out, renderTable([]string{"APP", "MODULE", "STATUS"}, rows))
		fmt.Fprintf(out, "\n%d of %d entries offered (%d unique runnable apps)\n",
			offered, len(orch.Entries()), orch.Registry().Len())

		if doctorCatalog {
			if c, ok := orch.Catalog(); ok {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTable([]string{"MODULE", "RUNNABLE"}, catalogRows(c)))
			}
		}
		return nil
	},
}

func catalogRows(c *catalog.Catalog) [][]string {
	paths := c.Paths()
	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		runnable := "no"
		if m, err := c.Resolve(p); err == nil && catalog.HasEntryPoint(m) {
			runnable = "yes"
		}
		rows = append(rows, []string{p, runnable})
	}
	return rows
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently launched apps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err := history.Open(history.Options{
			Directory: cfg.History.Directory,
			TTL:       cfg.History.TTL,
		})
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if historyClear {
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(out, "History cleared")
			return nil
		}

		records, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No launches recorded yet")
			return nil
		}

		rows := make([][]string, len(records))
		for i, r := range records {
			rows[i] = []string{r.Name, r.Module, fmt.Sprint(r.Runs), r.LastRun.Format(time.DateTime)}
		}
		fmt.Fprintln(out, renderTable([]string{"APP", "MODULE", "RUNS", "LAST RUN"}, rows))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit dashlaunch settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.ConfigFilePath()
		}

		if configInit {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return tui.Run(tui.Options{
			Config:     cfg,
			Accessible: cfg.UI.Accessible,
			SaveFunc: func(c *config.Config) error {
				return config.Save(c, path)
			},
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}
