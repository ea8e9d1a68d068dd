package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hyperoxo/hyperoxo/internal/hypercube"
)

func newInspectCmd() *cobra.Command {
	var dimensions, size int
	var showLines bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the line structure of a board",
		Long: `Inspect the combinatorics of h(d, n): total cells and winning lines,
the number of lines per span (how many dimensions a line varies in) and
the distribution of scope sizes (how many lines pass through each cell).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, dimensions, size, showLines)
		},
	}

	cmd.Flags().IntVarP(&dimensions, "dimensions", "d", 3, "Number of board dimensions")
	cmd.Flags().IntVarP(&size, "size", "n", 4, "Cells along each axis")
	cmd.Flags().BoolVar(&showLines, "lines", false, "Also print every line's cells")

	return cmd
}

func runInspect(cmd *cobra.Command, d, n int, showLines bool) error {
	structure, err := hypercube.NewStructure(d, n)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "h(%d, %d): %d cells, %d lines\n",
		d, n, structure.Cells(), structure.NumLines())

	spans, _ := hypercube.SpanCounts(d, n)
	fmt.Fprintln(out, "\nLines by span:")
	for m, count := range spans {
		fmt.Fprintf(out, "  span %d: %d\n", m+1, count)
	}

	sizes := structure.ScopeSizes()
	keys := make([]int, 0, len(sizes))
	for k := range sizes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fmt.Fprintln(out, "\nCells by scope size:")
	for _, k := range keys {
		fmt.Fprintf(out, "  %d lines through cell: %d cells\n", k, sizes[k])
	}

	if showLines {
		fmt.Fprintln(out, "\nLines:")
		for id, line := range structure.Lines() {
			fmt.Fprintf(out, "  %4d: %v\n", id, line)
		}
	}
	return nil
}
