// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package replaydump defines the logic for the "replaydump" tool.
//
// replaydump decodes a dogstatsd replay capture and writes the metric lines it
// holds, one per line, to a text file next to it.
package replaydump

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scottopell/dogstatsd-msg-stats/dogstatsd"
	"github.com/scottopell/dogstatsd-msg-stats/replay"
	"github.com/scottopell/dogstatsd-msg-stats/support/logging"
	"github.com/scottopell/dogstatsd-msg-stats/support/stagingdir"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// stagedName is the name of the output file within the staging directory.
const stagedName = "dump.txt"

// Main is the main entry point.
func Main() {
	if err := NewCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCommand returns the replaydump root command.
//
// The completion message is written to stdout. Usage, errors and logs are
// written to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg := DefaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "replaydump <capture>",
		Short: "Decode a dogstatsd replay capture into newline-delimited metric lines",
		Long: "Decode a dogstatsd replay capture into newline-delimited metric lines.\n\n" +
			"The lines are written to <capture>" + OutputSuffix + " unless --output is given. " +
			"The output file is only replaced once the whole capture has been decoded.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are fine; failures past this point are not usage errors.
			cmd.SilenceUsage = true

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgPath != "" {
				fc, err := LoadFileConfig(cfgPath)
				if err != nil {
					return err
				}
				if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			cfg.Input = args[0]
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, sync, err := logging.NewZap(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer sync()

			return Run(&cfg, stdout, log)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVar(&cfgPath, "config", "", "path to a TOML config file")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output,
		"path of the decoded text file (default <capture>"+OutputSuffix+")")
	fs.Var(&cfg.Compression, "compression",
		"compression of the capture file. Options are: "+replay.CompressionFlagValues())
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile,
		"if set, write decode metrics to this file in the Prometheus text format")

	return cmd
}

// Run decodes the capture described by cfg and commits its lines to
// cfg.OutputPath.
//
// Nothing is written to the output path unless the whole capture decodes.
func Run(cfg *Config, stdout io.Writer, log logging.L) (err error) {
	log = logging.Must(log)

	if cfg.MetricsFile != "" {
		reg := prometheus.NewRegistry()
		replay.RegisterMonitoring(reg)
		dogstatsd.RegisterMonitoring(reg)
		defer func() {
			if mErr := prometheus.WriteToTextfile(cfg.MetricsFile, reg); mErr != nil {
				log.Warnf("Could not write metrics to %q: %s", cfg.MetricsFile, mErr)
			}
		}()
	}

	f, err := replay.OpenFile(cfg.Input, cfg.Compression.Value())
	if err != nil {
		return err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil {
			log.Warnf("Could not close capture %q: %s", cfg.Input, cErr)
		}
	}()
	log.Infof("Loaded capture %q (%s, %s).", cfg.Input, f.Compression, humanize.Bytes(uint64(len(f.Bytes()))))

	r, err := dogstatsd.NewReader(f.Bytes())
	if err != nil {
		return errors.Wrapf(err, "opening capture %q", cfg.Input)
	}
	r.Logger = log
	r.Frames().Logger = log
	hdr := r.Frames().Header()
	log.Debugf("Capture format version %d.", hdr.Version())

	outPath := cfg.OutputPath()
	sd, err := stagingdir.New(filepath.Dir(outPath), ".replaydump")
	if err != nil {
		return errors.Wrap(err, "creating staging directory")
	}
	defer func() {
		if dErr := sd.Destroy(); dErr != nil {
			log.Warnf("Could not remove staging directory: %s", dErr)
		}
	}()

	fd, err := sd.Create(stagedName)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	count, err := dogstatsd.Dump(r, fd)
	if closeErr := fd.Close(); err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "closing output file")
	}
	if err != nil {
		log.Errorf("Decoding stopped after %d line(s) at offset %d.", count, r.Frames().Offset())
		return errors.Wrapf(err, "decoding capture %q", cfg.Input)
	}

	st, err := os.Stat(sd.Path(stagedName))
	if err != nil {
		return errors.Wrap(err, "inspecting output file")
	}
	if err := sd.Commit(stagedName, outPath); err != nil {
		return err
	}
	log.Infof("Decoded %d frame(s).", r.Frames().FramesRead())
	if ts := r.Frames().TaggerState(); ts != nil {
		log.Infof("Capture carries tagger state: %d entities, %d pid(s).", ts.Entities, len(ts.PIDMap))
	}

	fmt.Fprintf(stdout, "Done! Result is in %s\n", outPath)
	fmt.Fprintf(stdout, "Wrote %s line(s), %s.\n", humanize.Comma(count), humanize.Bytes(uint64(st.Size())))
	return nil
}
