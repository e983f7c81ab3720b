package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"latencystats/logger"
	"latencystats/report"
	"latencystats/samples"
	"latencystats/stats"
)

var (
	inputFlag = cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "file with one latency sample (ms) per line; \"-\" for stdin",
		Value:   "-",
	}
	sentFlag = cli.Uint64Flag{
		Name:  "sent",
		Usage: "number of probes sent (default: number of samples)",
	}
	receivedFlag = cli.Uint64Flag{
		Name:  "received",
		Usage: "number of replies received (default: number of samples)",
	}
	jitterFlag = cli.Float64Flag{
		Name:  "jitter",
		Usage: "precomputed jitter (ms) to report instead of computing it",
	}
	streamFlag = cli.BoolFlag{
		Name:  "stream",
		Usage: "compute jitter with the running accumulator",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "output format (\"table\" or \"json\")",
		Value: report.FormatTable,
	}
	precisionFlag = cli.IntFlag{
		Name:  "precision",
		Usage: "decimal places in table output",
		Value: report.DefaultConfig().Precision,
	}
	lossWarnFlag = cli.Float64Flag{
		Name:  "loss-warn",
		Usage: "highlight loss ratios above this threshold",
		Value: report.DefaultConfig().LossWarn,
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored output",
	}
)

var SummarizeCmd = cli.Command{
	Action: summarizeAction,
	Name:   "summarize",
	Usage:  "print a latency summary for a set of samples",
	Flags: []cli.Flag{
		&inputFlag,
		&sentFlag,
		&receivedFlag,
		&jitterFlag,
		&streamFlag,
		&formatFlag,
		&precisionFlag,
		&lossWarnFlag,
		&noColorFlag,
	},
}

func reportConfig(ctx *cli.Context) *report.Config {
	config := report.DefaultConfig()
	config.Format = ctx.String(formatFlag.Name)
	config.Precision = ctx.Int(precisionFlag.Name)
	config.LossWarn = ctx.Float64(lossWarnFlag.Name)
	config.Color = !ctx.Bool(noColorFlag.Name)
	return config
}

// buildSummary applies the command's count and jitter flags to values.
func buildSummary(ctx *cli.Context, values []float64) (stats.LatencySummary, error) {
	received := uint64(len(values))
	if ctx.IsSet(receivedFlag.Name) {
		received = ctx.Uint64(receivedFlag.Name)
	}
	sent := received
	if ctx.IsSet(sentFlag.Name) {
		sent = ctx.Uint64(sentFlag.Name)
	}

	var jitterHint *float64
	switch {
	case ctx.IsSet(jitterFlag.Name) && ctx.Bool(streamFlag.Name):
		return stats.LatencySummary{}, fmt.Errorf("--%s and --%s are mutually exclusive", jitterFlag.Name, streamFlag.Name)
	case ctx.IsSet(jitterFlag.Name):
		jitter := ctx.Float64(jitterFlag.Name)
		jitterHint = &jitter
	case ctx.Bool(streamFlag.Name):
		welford := stats.NewWelford()
		for _, value := range values {
			welford.Observe(value)
		}
		if sd, ok := welford.GetSD(); ok {
			jitterHint = &sd
		}
	}

	return stats.BuildSummary(sent, received, values, jitterHint), nil
}

func summarizeAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "latsum")

	values, err := samples.ReadFile(ctx.String(inputFlag.Name))
	if err != nil {
		return fmt.Errorf("cannot read samples: %w", err)
	}
	log.Debugf("read %d samples", len(values))

	summary, err := buildSummary(ctx, values)
	if err != nil {
		return err
	}
	if !summary.HasData() {
		log.Notice("not enough samples for latency distribution")
	}
	if summary.Received > summary.Sent {
		log.Warningf("received %d replies for %d probes", summary.Received, summary.Sent)
	}

	return report.Write(ctx.App.Writer, summary, reportConfig(ctx))
}
