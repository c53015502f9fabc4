package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nicholasgasior/utf8converter"
)

func newProbeCmd(app *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Report the detected encoding of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := utf8converter.Probe(args[0], utf8converter.WithLogger(app.log))
			if err != nil {
				return err
			}

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(result); err != nil {
					return err
				}
				return enc.Close()
			case "text":
				printProbe(cmd.OutOrStdout(), result)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}

func printProbe(w io.Writer, r *utf8converter.ProbeResult) {
	verdict := color.GreenString("usable")
	if !r.Usable() {
		verdict = color.YellowString("below threshold")
	}
	fmt.Fprintf(w, "path:       %s\n", r.Path)
	fmt.Fprintf(w, "mime type:  %s\n", r.MIMEType)
	fmt.Fprintf(w, "encoding:   %s\n", r.Guess.Encoding)
	fmt.Fprintf(w, "confidence: %.2f (%s)\n", r.Guess.Confidence, verdict)
	if r.Guess.Language != "" {
		fmt.Fprintf(w, "language:   %s\n", r.Guess.Language)
	}
}
