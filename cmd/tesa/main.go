// Command tesa runs a height-inequality audit scenario end to end:
// load the scenario, compute every per-place constant, compose C_Global
// and print the certificate summary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tesalab/tesa/archimedean"
	"github.com/tesalab/tesa/config"
	"github.com/tesalab/tesa/core"
	"github.com/tesalab/tesa/local"
	"github.com/tesalab/tesa/orchestrator"
	"github.com/tesalab/tesa/report"
	"github.com/tesalab/tesa/spectral"
)

var (
	verbose      bool
	scenarioPath string
	workers      int
	csvPath      string
	reportPath   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tesa",
	Short:         "TESA height-inequality audit engine",
	Long:          "Computes the local constants C_Type,v, composes C_Global and evaluates\nh_L(P) <= (1-delta)*m_D(P) + C_Global for a scenario of places.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one audit scenario and print its certificate",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runScenario(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (.yaml/.yml/.toml)")
	runCmd.Flags().IntVarP(&workers, "workers", "w", 0, "override per-place worker count")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write per-place constants to this CSV file")
	runCmd.Flags().StringVar(&reportPath, "report", "", "write the text report to this file")
	_ = runCmd.MarkFlagRequired("scenario")
	rootCmd.AddCommand(runCmd)
}

func runScenario(ctx context.Context) error {
	scenario, err := config.Load(scenarioPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		scenario.Workers = workers
	}

	opts := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithCache(local.NewCache()),
	}
	if scenario.Workers > 0 {
		opts = append(opts, orchestrator.WithWorkers(scenario.Workers))
	}
	orch := orchestrator.New(spectral.Placeholder{}, archimedean.EpsilonControl{}, opts...)

	cert, err := orch.Run(ctx, orchestrator.Request{
		Scenario: scenario.Name,
		Places:   scenario.CorePlaces(),
		Genus:    scenario.Genus,
		Family:   spectral.FamilyData{DeltaLowerBound: scenario.DeltaLowerBound},
		Bundle:   archimedean.LData{Bundle: "Neron-Tate"},
		Metric:   archimedean.MetricData{MeanZero: true},
		Epsilon:  archimedean.EpsilonParams{CEpsilon: scenario.CEpsilon},
		HL:       scenario.HL,
		MD:       scenario.MD,
	})
	if err != nil {
		return err
	}

	summary := report.Summarize(cert)
	fmt.Print(summary)

	if csvPath != "" {
		if err = writeCSV(csvPath, cert); err != nil {
			return err
		}
	}
	if reportPath != "" {
		if err = os.WriteFile(reportPath, []byte(summary), 0o644); err != nil {
			return err
		}
	}

	switch {
	case cert.Holds == core.BoundFails:
		return fmt.Errorf("bound does not hold (h_L=%g > RHS=%g)", cert.HL, cert.RHS)
	case cert.Partial || !cert.Sanity.OK():
		return fmt.Errorf("certificate is partial or failed sanity checks")
	}
	return nil
}

func writeCSV(path string, cert *core.GlobalCertificate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteLocalCSV(f, cert.Locals)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tesa:", err)
		os.Exit(1)
	}
}
