package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riceharvest/a11yutils/pkg/aria"
	"github.com/riceharvest/a11yutils/pkg/style"
)

type presetsOptions struct {
	json bool
}

func newPresetsCmd() *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the static attribute sets and style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.json {
				return renderPresetsJSON(cmd)
			}
			return renderPresetsTable(cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Output presets as JSON")

	return cmd
}

func renderPresetsTable(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KIND\tNAME\tCONTENT")

	sep := listSeparator(supportsUnicode(cmd.OutOrStdout()))

	for _, name := range aria.PresetNames() {
		set, _ := aria.Preset(name)
		pairs := make([]string, 0, len(set))
		for _, attr := range set.Attributes() {
			pairs = append(pairs, fmt.Sprintf("%s=%q", attr.Key, attr.Value.String()))
		}
		fmt.Fprintf(writer, "attributes\t%s\t%s\n", name, strings.Join(pairs, sep))
	}

	for _, name := range style.Names() {
		preset, _ := style.Lookup(name)
		fmt.Fprintf(writer, "style\t%s\t%s\n", name, preset.CSS())
	}

	return writer.Flush()
}

type presetsJSONPayload struct {
	Attributes map[string]aria.AttributeSet `json:"attributes"`
	Styles     map[string]map[string]string `json:"styles"`
}

func renderPresetsJSON(cmd *cobra.Command) error {
	payload := presetsJSONPayload{
		Attributes: make(map[string]aria.AttributeSet),
		Styles:     make(map[string]map[string]string),
	}

	for _, name := range aria.PresetNames() {
		set, _ := aria.Preset(name)
		payload.Attributes[name] = set
	}
	for _, name := range style.Names() {
		preset, _ := style.Lookup(name)
		payload.Styles[name] = preset.Map()
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func listSeparator(useUnicode bool) string {
	if useUnicode {
		return " · "
	}
	return ", "
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return isTerminal(int(file.Fd()))
	}
	return false
}

var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
