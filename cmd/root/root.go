package root

import (
	"github.com/spf13/cobra"

	"github.com/operator-framework/nondet/cmd/buckets"
	"github.com/operator-framework/nondet/cmd/dimacs"
	"github.com/operator-framework/nondet/cmd/provision"
	"github.com/operator-framework/nondet/cmd/queens"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nondet",
		Short: "Nondet is an open-source framework for nondeterministic programming",
		Long: `An open-source framework for nondeterministic programming written in Go.
A computation choosing among alternatives is evaluated over every branch,
breadth first, pruning branches that fail to solve the problem.`,
	}

	// add sub-commands
	rootCmd.AddCommand(queens.NewQueensCommand())
	rootCmd.AddCommand(buckets.NewBucketsCommand())
	rootCmd.AddCommand(dimacs.NewDimacsCommand())
	rootCmd.AddCommand(provision.NewProvisionCommand())

	return rootCmd
}
