package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/grammarjourney/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with course files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a course YAML file against the schema and word-position rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}

		questions := 0
		for _, lvl := range cat.Levels {
			questions += len(lvl.Questions)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, version %s, %d levels, %d questions)\n",
			args[0], cat.Title, cat.Version, cat.Len(), questions)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
