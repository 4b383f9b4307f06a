package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studyreel/internal/config"
	"studyreel/internal/deck"
)

// buildConfigCmd creates the "config" command group
func buildConfigCmd(flags *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(buildConfigInitCmd(flags), buildConfigShowCmd(flags))
	return cmd
}

func buildConfigInitCmd(flags *runFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(flags.configPath)
			path := svc.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func buildConfigShowCmd(flags *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(flags.configPath)
			cfg, err := svc.Load()
			if err != nil {
				return err
			}
			opts, err := cfg.CarouselOptions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:        %s\n", svc.Path())
			fmt.Fprintf(out, "deck:          %s (watch %t)\n", cfg.Deck.Path, cfg.Deck.Watch)
			fmt.Fprintf(out, "per view:      %s\n", opts.ItemsPerView)
			fmt.Fprintf(out, "gap:           %gpx\n", opts.Gap)
			fmt.Fprintf(out, "autoplay:      %t every %s (loop %t, pause on hover %t)\n",
				opts.AutoPlay, opts.AutoPlayInterval, opts.Loop, opts.PauseOnHover)
			fmt.Fprintf(out, "swipe:         %gpx (touch %t)\n", opts.SwipeThreshold, opts.EnableTouch)
			fmt.Fprintf(out, "log:           %s %s -> %s\n", cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
			return nil
		},
	}
}

// buildDeckCmd creates the "deck" command group
func buildDeckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Inspect and convert deck files",
	}
	cmd.AddCommand(buildDeckCheckCmd(), buildDeckConvertCmd())
	return cmd
}

func buildDeckCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a deck and list the items it would show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			title := d.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(out, "%s: %d items\n", title, d.Len())
			for i, item := range d.Items {
				line := fmt.Sprintf("%3d  %-16s %s", i+1, item.ID, item.Title)
				if item.Author != "" {
					line += " (" + item.Author + ")"
				}
				if len(item.Tags) > 0 {
					line += " [" + strings.Join(item.Tags, ", ") + "]"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func buildDeckConvertCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a deck between toml, json and cbor",
		Long: `Convert a deck file to the format given by the output extension.
Inactive items are dropped and ids are filled in, as when the deck is shown.`,
		Example: `  studyreel deck convert posts.toml posts.cbor`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			format, err := deck.FormatFor(out)
			if err != nil {
				return err
			}
			if _, err := os.Stat(out); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", out)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			d, err := deck.LoadFile(in)
			if err != nil {
				return err
			}
			data, err := deck.Encode(format, d)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write deck: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d items to %s\n", d.Len(), out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
