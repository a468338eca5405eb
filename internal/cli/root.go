// Package cli holds the turntable command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/turntable/internal/config"
)

// flags shared by every command.
type flags struct {
	configFile string
	apiURL     string
	songsURL   string
	band       int
	today      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:          "turntable",
		Short:        "Browse bands and spin their hit songs on a terminal turntable.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			return runTUI(cfg, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "config file (overrides the default locations)")
	pf.StringVar(&f.apiURL, "api-url", "", "band API root URL")
	pf.StringVar(&f.songsURL, "songs-url", "", "songs base URL or directory")

	root.Flags().IntVar(&f.band, "band", 0, "open the band with this id")
	root.Flags().BoolVar(&f.today, "today", false, "open the band for today")
	root.MarkFlagsMutuallyExclusive("band", "today")

	root.AddCommand(newBandsCmd(f))
	return root
}

// loadConfig reads the config files and applies flag overrides.
func (f *flags) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configFile != "" {
		if _, statErr := os.Stat(f.configFile); statErr != nil {
			return nil, fmt.Errorf("config file: %w", statErr)
		}
		cfg, err = config.LoadFiles(f.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if f.apiURL != "" {
		cfg.APIURL = f.apiURL
	}
	if f.songsURL != "" {
		cfg.SongsURL = f.songsURL
	}
	cfg.Normalize()
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
