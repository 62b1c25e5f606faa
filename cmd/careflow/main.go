package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pathware/careflow/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "careflow",
		Short: "Weekly patient-flow simulator for multi-tier health systems",
	}

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(costCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(diseasesCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func simulateCmd() *cobra.Command {
	var baselinePath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "simulate [scenario.yaml]",
		Short: "Run the full simulation and report outcomes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(args[0], baselinePath, asJSON)
		},
	}

	cmd.Flags().StringVarP(&baselinePath, "baseline", "b", "", "baseline scenario for ICER comparison")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the export record as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario.yaml]",
		Short: "Validate a scenario without running the simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func costCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost [scenario.yaml]",
		Short: "Run the simulation and print a per-level cost breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCost(args[0])
		},
	}
}

func sweepCmd() *cobra.Command {
	var field string
	var min, max float64
	var steps int

	cmd := &cobra.Command{
		Use:   "sweep [scenario.yaml]",
		Short: "Sweep one scenario field over a grid and tabulate outcomes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSweep(args[0], field, min, max, steps)
		},
	}

	cmd.Flags().StringVar(&field, "field", "congestion", "scenario field to sweep")
	cmd.Flags().Float64Var(&min, "min", 0, "lower bound")
	cmd.Flags().Float64Var(&max, "max", 1, "upper bound")
	cmd.Flags().IntVar(&steps, "steps", 5, "number of grid points")
	return cmd
}

func diseasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diseases",
		Short: "List the built-in disease library",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDiseases()
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := server.New(port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	return cmd
}
