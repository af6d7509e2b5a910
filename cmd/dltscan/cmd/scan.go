/*
Copyright (c) the dlt authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dlt-go/dlt"
	"github.com/dlt-go/dlt/dltstats"
	"github.com/dlt-go/dlt/internal/config"
)

var (
	scanConfigPathFlag  string
	scanMetricsPortFlag int
	scanAppIDFlag       string
)

func init() {
	RootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanConfigPathFlag, "config", "c", "", "path to a dltscan.yaml config file")
	scanCmd.Flags().IntVarP(&scanMetricsPortFlag, "metrics-port", "m", 0, "serve Prometheus metrics on this port instead of exiting after the scan")
	scanCmd.Flags().StringVarP(&scanAppIDFlag, "app-id", "a", "", "only count messages from this application ID")
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "decode a DLT trace file and report summary counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if scanConfigPathFlag != "" {
			loaded, err := config.ReadConfig(scanConfigPathFlag)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded
		}

		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		metricsPort := scanMetricsPortFlag
		if metricsPort == 0 {
			metricsPort = cfg.MetricsPort
		}

		stats := dltstats.New()
		if metricsPort != 0 {
			exporter := dltstats.NewPrometheusExporter(stats, metricsPort, time.Duration(cfg.MetricsIntervalSeconds)*time.Second)
			go func() {
				if err := exporter.Start(); err != nil {
					log.Errorf("metrics exporter stopped: %v", err)
				}
			}()
		}

		var pred dlt.Predicate
		if scanAppIDFlag != "" {
			pred = dlt.PredicateFunc(func(m *dlt.Message) bool { return m.ApplicationID() == scanAppIDFlag })
		}

		if err := runScan(cmd.OutOrStdout(), buf, pred, stats, cfg.FollowResync, cfg.Format); err != nil {
			return err
		}

		if metricsPort != 0 {
			log.Infof("serving metrics on :%d, press ctrl-c to exit", metricsPort)
			select {}
		}
		return nil
	},
}

// runScan drives r to exhaustion, tallying stats and writing a one-line
// status per terminal condition. It is split out from RunE so it can be
// exercised without going through cobra. format selects the rendering
// (config.FormatText or config.FormatJSON); anything else falls back to
// text, since Validate already rejects it before runScan ever sees it.
func runScan(out io.Writer, buf []byte, pred dlt.Predicate, stats dltstats.Stats, followResync bool, format string) error {
	r := dlt.NewReader(buf)

	for {
		msg, err := r.Next()
		switch {
		case err == nil:
			if pred == nil || pred.Keep(msg) {
				stats.IncMessagesDecoded()
			}
		case errors.Is(err, io.EOF):
			printSummary(out, format, stats.Snapshot())
			return nil
		default:
			var recoverable *dlt.RecoverableError
			if errors.As(err, &recoverable) {
				stats.IncRecoverableError(causeOf(recoverable))
				stats.IncResync()
				if followResync {
					continue
				}
				printSummary(out, format, stats.Snapshot())
				return fmt.Errorf("stopped at first recoverable error: %w", err)
			}
			var fatal *dlt.FatalError
			if errors.As(err, &fatal) {
				stats.IncFatalError()
				printSummary(out, format, stats.Snapshot())
				return fmt.Errorf("fatal decode error: %w", err)
			}
			return err
		}
	}
}

func causeOf(err error) string {
	return errors.Unwrap(err).Error()
}

func printSummary(out io.Writer, format string, snap dltstats.Counters) {
	if format == config.FormatJSON {
		printSummaryJSON(out, snap)
		return
	}
	printSummaryText(out, snap)
}

// printSummaryJSON renders snap as a single JSON object, the same
// json.Marshal-a-snapshot approach ptp4u/stats uses for its own counters.
func printSummaryJSON(out io.Writer, snap dltstats.Counters) {
	js, err := json.Marshal(snap)
	if err != nil {
		fmt.Fprintf(out, `{"error":%q}`+"\n", err.Error())
		return
	}
	out.Write(js)
	fmt.Fprintln(out)
}

func printSummaryText(out io.Writer, snap dltstats.Counters) {
	colorEnabled := term.IsTerminal(int(os.Stdout.Fd()))
	status := okString(colorEnabled, "OK")
	if snap.FatalErrors > 0 {
		status = failString(colorEnabled, "FAIL")
	} else if len(snap.RecoverableErrors) > 0 {
		status = warnString(colorEnabled, "WARN")
	}

	fmt.Fprintf(out, "%s messages=%d resyncs=%d fatal=%d\n", status, snap.MessagesDecoded, snap.Resyncs, snap.FatalErrors)
	for cause, n := range snap.RecoverableErrors {
		fmt.Fprintf(out, "  recoverable: %s x%d\n", cause, n)
	}
}

func okString(enabled bool, s string) string {
	if !enabled {
		return s
	}
	return color.GreenString(s)
}

func warnString(enabled bool, s string) string {
	if !enabled {
		return s
	}
	return color.YellowString(s)
}

func failString(enabled bool, s string) string {
	if !enabled {
		return s
	}
	return color.RedString(s)
}
