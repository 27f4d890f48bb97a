package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List registered routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp("")
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tPATH")
			for _, route := range a.Router().Routes() {
				fmt.Fprintf(tw, "%s\t%s\n", route.Method, route.Pattern)
			}
			return tw.Flush()
		},
	}
}
