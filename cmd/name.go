package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name <username>",
	Short: "Set the learner's name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return errors.New("username must not be empty")
		}

		st, gw, err := openCLI(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer gw.Close()

		gw.SetUsername(cmd.Context(), name)
		fmt.Fprintf(cmd.OutOrStdout(), "Username set to %s.\n", name)
		return nil
	},
}
