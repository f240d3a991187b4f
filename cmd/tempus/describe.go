package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tempus/format"
)

var describeCmd = &cobra.Command{
	Use:   "describe [flags] DESCRIPTION",
	Short: "Compile a format description and dump its items",
	Long:  `Describe compiles a format description and prints the resulting item tree, which is useful when debugging a description that does not parse the input you expect`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().Int("lang-version", 2, "format description language version (1|2)")
	describeCmd.Flags().Bool("strftime", false, "treat the description as a strftime specification")
	describeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	langVersion, _ := cmd.Flags().GetInt("lang-version")
	strftime, _ := cmd.Flags().GetBool("strftime")
	outputFormat, _ := cmd.Flags().GetString("format")

	items, err := compileDescription(args[0], langVersion, strftime)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "pretty":
		writeItemsPretty(os.Stdout, items, 0, useColor(cmd, os.Stdout))
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(itemsToJSON(items))
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}

func compileDescription(desc string, langVersion int, strftime bool) ([]format.Item, error) {
	if strftime {
		return format.ParseStrftime(desc)
	}
	return format.Parse(desc, langVersion)
}

var (
	describeKindColor    = color.New(color.FgCyan)
	describeLiteralColor = color.New(color.FgGreen)
)

func writeItemsPretty(out io.Writer, items []format.Item, depth int, colored bool) {
	indent := strings.Repeat("  ", depth)
	for _, it := range items {
		switch it.Kind {
		case format.ItemLiteral:
			label := "literal"
			text := fmt.Sprintf("%q", it.Literal)
			if colored {
				label = describeKindColor.Sprint(label)
				text = describeLiteralColor.Sprint(text)
			}
			fmt.Fprintf(out, "%s%s %s\n", indent, label, text)
		case format.ItemComponent:
			label := "component"
			if colored {
				label = describeKindColor.Sprint(label)
			}
			fmt.Fprintf(out, "%s%s %+v\n", indent, label, it.Component)
		case format.ItemCompound:
			fmt.Fprintf(out, "%scompound\n", indent)
			writeItemsPretty(out, it.Items, depth+1, colored)
		case format.ItemOptional:
			fmt.Fprintf(out, "%soptional\n", indent)
			writeItemsPretty(out, it.Items, depth+1, colored)
		case format.ItemFirst:
			fmt.Fprintf(out, "%sfirst\n", indent)
			writeItemsPretty(out, it.Items, depth+1, colored)
		}
	}
}

type itemJSON struct {
	Kind      string     `json:"kind"`
	Literal   string     `json:"literal,omitempty"`
	Component string     `json:"component,omitempty"`
	Items     []itemJSON `json:"items,omitempty"`
}

func itemsToJSON(items []format.Item) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, it := range items {
		j := itemJSON{}
		switch it.Kind {
		case format.ItemLiteral:
			j.Kind = "literal"
			j.Literal = string(it.Literal)
		case format.ItemComponent:
			j.Kind = "component"
			j.Component = fmt.Sprintf("%T%+v", it.Component, it.Component)
		case format.ItemCompound:
			j.Kind = "compound"
			j.Items = itemsToJSON(it.Items)
		case format.ItemOptional:
			j.Kind = "optional"
			j.Items = itemsToJSON(it.Items)
		case format.ItemFirst:
			j.Kind = "first"
			j.Items = itemsToJSON(it.Items)
		}
		out = append(out, j)
	}
	return out
}
