package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"latencystats/stats"
)

const absent = "-"

// Write renders summary to w in the configured format.
func Write(w io.Writer, summary stats.LatencySummary, config *Config) error {
	switch config.Format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatTable, "":
		writeTable(w, summary, config)
		return nil
	default:
		return fmt.Errorf("unknown report format %q", config.Format)
	}
}

func writeJSON(w io.Writer, summary stats.LatencySummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func formatMs(value *float64, precision int) string {
	if value == nil {
		return absent
	}
	return strconv.FormatFloat(*value, 'f', precision, 64)
}

func writeTable(w io.Writer, summary stats.LatencySummary, config *Config) {
	warn := color.New(color.FgRed, color.Bold)
	if !config.Color {
		warn.DisableColor()
	}

	loss := strconv.FormatFloat(summary.Loss*100, 'f', config.Precision, 64) + "%"
	if summary.Loss > config.LossWarn {
		loss = warn.Sprint(loss)
	}

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Value"})
	tbl.SetBorder(true)
	tbl.SetAutoFormatHeaders(false)

	tbl.Append([]string{"sent", strconv.FormatUint(summary.Sent, 10)})
	tbl.Append([]string{"received", strconv.FormatUint(summary.Received, 10)})
	tbl.Append([]string{"loss", loss})
	tbl.Append([]string{"min (ms)", formatMs(summary.Min, config.Precision)})
	tbl.Append([]string{"p25 (ms)", formatMs(summary.P25, config.Precision)})
	tbl.Append([]string{"median (ms)", formatMs(summary.Median, config.Precision)})
	tbl.Append([]string{"mean (ms)", formatMs(summary.Mean, config.Precision)})
	tbl.Append([]string{"p75 (ms)", formatMs(summary.P75, config.Precision)})
	tbl.Append([]string{"max (ms)", formatMs(summary.Max, config.Precision)})
	tbl.Append([]string{"jitter (ms)", formatMs(summary.Jitter, config.Precision)})

	tbl.Render()
}
