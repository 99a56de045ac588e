package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riceharvest/a11yutils/internal/markup"
	"github.com/riceharvest/a11yutils/internal/scenario"
	"github.com/riceharvest/a11yutils/pkg/aria"
)

const (
	formatHTML  = "html"
	formatTable = "table"
	formatJSON  = "json"
)

type renderOptions struct {
	format string
	strict bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <scenario.yaml>",
		Short: "Evaluate a scenario and print each element's attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "Output format: html, table or json")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Validate identifiers and attribute values even if the scenario does not ask for it")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, path string, opts *renderOptions) error {
	if !cmd.Flags().Changed("format") && root.config.Render.Format != "" {
		opts.format = root.config.Render.Format
	}
	if !cmd.Flags().Changed("strict") {
		opts.strict = opts.strict || root.config.Render.Strict
	}

	switch opts.format {
	case formatHTML, formatTable, formatJSON:
	default:
		return newCommandError("render", "choosing output format", fmt.Errorf("unknown format %q", opts.format), "Use --format html, table or json.")
	}

	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	results, err := loadAndEvaluate(cmd, app, path, opts.strict)
	if err != nil {
		return err
	}

	switch opts.format {
	case formatJSON:
		return renderJSON(cmd, results)
	case formatTable:
		return renderTable(cmd, results)
	default:
		return renderHTML(cmd, results)
	}
}

func loadAndEvaluate(cmd *cobra.Command, app *AppContext, path string, strict bool) ([]scenario.Result, error) {
	if err := validateScenarioPath(path); err != nil {
		return nil, newCommandError(cmd.Name(), "locating scenario", err, "Pass the path to an existing scenario YAML file.")
	}

	sc, err := scenario.ParseFile(path)
	if err != nil {
		return nil, newCommandError(cmd.Name(), fmt.Sprintf("loading scenario %s", path), err, "Fix the reported field and try again.")
	}
	if strict {
		sc.Settings.Strict = true
	}

	app.Log.WithFields(map[string]any{"path": path, "elements": len(sc.Elements)}).Info("scenario loaded")

	results, err := app.Evaluator.Evaluate(cmd.Context(), sc)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "evaluating scenario", err, "Check the element named in the error for out-of-domain values.")
	}
	return results, nil
}

func renderHTML(cmd *cobra.Command, results []scenario.Result) error {
	for _, res := range results {
		out, err := markup.Render(markupElement(res))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func markupElement(res scenario.Result) markup.Element {
	return markup.Element{
		Tag:        res.Element.TagName(),
		ID:         res.Element.ID,
		Text:       res.Element.Text,
		Attributes: res.Attributes,
		Style:      res.Style,
	}
}

func renderTable(cmd *cobra.Command, results []scenario.Result) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ELEMENT\tATTRIBUTE\tVALUE")

	for _, res := range results {
		attrs := res.Attributes.Attributes()
		if len(attrs) == 0 {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", res.Element.ID, "-", "-")
		}
		for _, attr := range attrs {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", res.Element.ID, attr.Key, attr.Value)
		}
		if !res.Style.IsZero() {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", res.Element.ID, "style", res.Style.Name())
		}
	}

	return writer.Flush()
}

type renderJSONElement struct {
	ID         string            `json:"id"`
	Tag        string            `json:"tag"`
	Attributes aria.AttributeSet `json:"attributes"`
	Style      map[string]string `json:"style,omitempty"`
}

type renderJSONPayload struct {
	Count    int                 `json:"count"`
	Elements []renderJSONElement `json:"elements"`
}

func renderJSON(cmd *cobra.Command, results []scenario.Result) error {
	payload := renderJSONPayload{
		Count:    len(results),
		Elements: make([]renderJSONElement, len(results)),
	}

	for i, res := range results {
		el := renderJSONElement{
			ID:         res.Element.ID,
			Tag:        res.Element.TagName(),
			Attributes: res.Attributes,
		}
		if !res.Style.IsZero() {
			el.Style = res.Style.Map()
		}
		payload.Elements[i] = el
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
