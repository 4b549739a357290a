package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learner's name and completed tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, gw, err := openCLI(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer gw.Close()

		ctx := cmd.Context()
		name, ok := gw.Username(ctx)
		if !ok || name == "" {
			name = "(not set)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Username:        %s\n", name)
		fmt.Fprintf(out, "Tests completed: %d\n", gw.ReadCompletedCount(ctx))
		return nil
	},
}
