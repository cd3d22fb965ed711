// Command bw8trace runs a BW8 program for a fixed cycle budget and prints
// the retired-instruction histogram. Input is hex text via --hex or stdin,
// never a file path.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bw8/cpu"
	"bw8/memory"
)

func parseHex(s string) ([]byte, error) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex byte %q: %w", f, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func main() {
	var hex string
	var cycles int

	root := &cobra.Command{
		Use:   "bw8trace",
		Short: "run a BW8 program and print its retired-instruction histogram",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := hex
			if raw == "" {
				data, err := io.ReadAll(bufio.NewReader(os.Stdin))
				if err != nil {
					return err
				}
				raw = string(data)
			}
			image, err := parseHex(raw)
			if err != nil {
				return err
			}

			b := memory.NewFlatBus(image)
			c := cpu.New()
			tr, reachedBreakpoint := c.Run(b, cycles)

			type row struct {
				inst  string
				count int
			}
			rows := make([]row, 0)
			for inst, count := range tr {
				rows = append(rows, row{fmt.Sprintf("%+v", inst), count})
			}
			sort.Slice(rows, func(i, j int) bool { return rows[i].inst < rows[j].inst })

			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%6d  %s\n", r.count, r.inst)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "retired: %d  breakpoint: %t\n", tr.Len(), bool(reachedBreakpoint))
			return nil
		},
	}
	root.Flags().StringVar(&hex, "hex", "", "program bytes in hex, space separated (default: read from stdin)")
	root.Flags().IntVar(&cycles, "cycles", 1000, "cycle budget")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bw8trace:", err)
		os.Exit(1)
	}
}
