package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/rules"
)

func newEscapeCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text]",
		Short: "Escape text for HTML output",
		Long: `Escape & < > " ' in text and print the result.
Without an argument, text is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(b)
			}

			w := cmd.OutOrStdout()
			if _, err := rules.WriteHTML(w, text); err != nil {
				return err
			}
			if len(args) == 1 {
				_, err := fmt.Fprintln(w)
				return err
			}
			return nil
		},
	}
}
