package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/operator-framework/nondet/pkg/solver"
)

func NewProvisionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "provision <cluster.yaml>",
		Short: "Places guests on cluster hosts without overcommitting capacity",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0])
		},
	}
}

func run(w io.Writer, path string) error {
	specFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening cluster spec (%s): %w", path, err)
	}
	defer specFile.Close()

	spec, err := LoadClusterSpec(specFile)
	if err != nil {
		return err
	}

	for placement, err := range solver.Solve(context.Background(), Place(spec)) {
		if err != nil {
			return err
		}
		guests := make([]string, 0, len(placement))
		for guest := range placement {
			guests = append(guests, guest)
		}
		sort.Strings(guests)
		for _, guest := range guests {
			fmt.Fprintf(w, "%s -> %s\n", guest, placement[guest])
		}
		return nil
	}
	fmt.Fprintln(w, "no placement found")
	return nil
}
