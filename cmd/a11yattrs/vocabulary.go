package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riceharvest/a11yutils/pkg/aria"
)

func newVocabularyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "vocabulary",
		Aliases: []string{"vocab"},
		Short:   "List every attribute key the mappers can emit and its value domain",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "KEY\tDOMAIN")
			for _, key := range aria.Vocabulary() {
				domain, _ := key.Domain()
				fmt.Fprintf(writer, "%s\t%s\n", key, domain)
			}
			return writer.Flush()
		},
	}
}
