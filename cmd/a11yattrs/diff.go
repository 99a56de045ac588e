package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riceharvest/a11yutils/internal/scenario"
	"github.com/riceharvest/a11yutils/pkg/aria"
	"github.com/riceharvest/a11yutils/pkg/diff"
)

type diffOptions struct {
	unified bool
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <before.yaml> <after.yaml>",
		Short: "Compare the attributes two scenarios produce for the same elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, root, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.unified, "unified", "u", false, "Print a unified diff per element")

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, beforePath, afterPath string, opts *diffOptions) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	before, err := loadAndEvaluate(cmd, app, beforePath, false)
	if err != nil {
		return err
	}
	after, err := loadAndEvaluate(cmd, app, afterPath, false)
	if err != nil {
		return err
	}

	beforeSets, order := indexResults(before)
	afterSets, afterOrder := indexResults(after)
	for _, id := range afterOrder {
		if _, ok := beforeSets[id]; !ok {
			order = append(order, id)
		}
	}

	out := cmd.OutOrStdout()
	changed := 0
	for _, id := range order {
		b, a := beforeSets[id], afterSets[id]

		if opts.unified {
			if text := diff.Unified(b, a, beforePath+"#"+id, afterPath+"#"+id); text != "" {
				fmt.Fprint(out, text)
				changed++
			}
			continue
		}

		changes := diff.Attributes(b, a)
		if len(changes) == 0 {
			continue
		}
		changed++
		fmt.Fprintf(out, "%s\n", id)
		for _, c := range changes {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}

	if changed == 0 {
		fmt.Fprintln(out, "No attribute changes.")
	}
	app.Log.With("changed_elements", changed).Info("diff complete")
	return nil
}

func indexResults(results []scenario.Result) (map[string]aria.AttributeSet, []string) {
	sets := make(map[string]aria.AttributeSet, len(results))
	order := make([]string, 0, len(results))
	for _, res := range results {
		sets[res.Element.ID] = res.Attributes
		order = append(order, res.Element.ID)
	}
	return sets, order
}
