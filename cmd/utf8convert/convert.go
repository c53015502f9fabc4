package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nicholasgasior/utf8converter"
)

func newConvertCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <source.txt> <target.txt>",
		Short: "Convert a text file to UTF-8",
		Long: `Convert reads the source file, detects its encoding and writes the decoded
text to the target as UTF-8. An existing target is overwritten. Both paths
must end in .txt.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := utf8converter.New(args[0], args[1], utf8converter.WithLogger(app.log))
			if err != nil {
				return err
			}
			if err := c.Convert(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", color.GreenString("converted:"), c.Source(), c.Target())
			return nil
		},
	}
}
