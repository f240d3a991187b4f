package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tempus"
	"tempus/format"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE...",
	Short: "Parse date-time text against a format description",
	Long: `Parse matches every line of the given files against a format description
and reports the parsed value or the parse failure for each line. Files are
processed concurrently`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("desc", "", "format description")
	parseCmd.Flags().Int("lang-version", 2, "format description language version (1|2)")
	parseCmd.Flags().Bool("strftime", false, "treat the description as a strftime specification")
	parseCmd.Flags().String("as", "date", "value to assemble (date|time|datetime|offsetdatetime)")
}

// lineResult is the outcome for a single input line.
type lineResult struct {
	line  int
	text  string
	value string
	err   error
}

// fileResult collects a file's outcomes in input order.
type fileResult struct {
	path    string
	results []lineResult
	failed  int
}

func runParse(cmd *cobra.Command, args []string) error {
	desc, _ := cmd.Flags().GetString("desc")
	langVersion, _ := cmd.Flags().GetInt("lang-version")
	strftime, _ := cmd.Flags().GetBool("strftime")
	target, _ := cmd.Flags().GetString("as")

	desc, langVersion, strftime, err := resolveDescription(desc, langVersion, strftime)
	if err != nil {
		return err
	}
	items, err := compileDescription(desc, langVersion, strftime)
	if err != nil {
		return err
	}
	assemble, err := assembler(target)
	if err != nil {
		return err
	}

	results := make([]fileResult, len(args))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		g.Go(func() error {
			res, err := parseFile(path, items, assemble)
			if err != nil {
				return err
			}
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	colored := useColor(cmd, os.Stdout)
	failed := 0
	for _, fr := range results {
		failed += fr.failed
		writeFileResult(fr, colored)
	}
	if failed > 0 {
		return fmt.Errorf("%d line(s) did not parse", failed)
	}
	return nil
}

// assembler maps the --as flag to a resolver over the parsed components.
func assembler(target string) (func(string, []format.Item) (string, error), error) {
	switch target {
	case "date":
		return func(in string, items []format.Item) (string, error) {
			d, err := tempus.ParseDate(in, items)
			if err != nil {
				return "", err
			}
			return d.String(), nil
		}, nil
	case "time":
		return func(in string, items []format.Item) (string, error) {
			t, err := tempus.ParseTime(in, items)
			if err != nil {
				return "", err
			}
			return t.String(), nil
		}, nil
	case "datetime":
		return func(in string, items []format.Item) (string, error) {
			dt, err := tempus.ParsePrimitiveDateTime(in, items)
			if err != nil {
				return "", err
			}
			return dt.String(), nil
		}, nil
	case "offsetdatetime":
		return func(in string, items []format.Item) (string, error) {
			odt, err := tempus.ParseOffsetDateTime(in, items)
			if err != nil {
				return "", err
			}
			return odt.String(), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown target %q (must be date, time, datetime or offsetdatetime)", target)
	}
}

func parseFile(path string, items []format.Item, assemble func(string, []format.Item) (string, error)) (fileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileResult{}, err
	}
	defer f.Close()

	res := fileResult{path: path}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		value, err := assemble(text, items)
		if err != nil {
			res.failed++
		}
		res.results = append(res.results, lineResult{line: lineNo, text: text, value: value, err: err})
	}
	if err := scanner.Err(); err != nil {
		return fileResult{}, err
	}
	return res, nil
}

var (
	parseOKColor   = color.New(color.FgGreen)
	parseFailColor = color.New(color.FgRed, color.Bold)
)

func writeFileResult(fr fileResult, colored bool) {
	fmt.Printf("%s:\n", fr.path)
	for _, lr := range fr.results {
		if lr.err != nil {
			mark := "FAIL"
			if colored {
				mark = parseFailColor.Sprint(mark)
			}
			fmt.Printf("  %4d %s %s: %v\n", lr.line, mark, lr.text, lr.err)
			continue
		}
		mark := "ok"
		if colored {
			mark = parseOKColor.Sprint(mark)
		}
		fmt.Printf("  %4d %s   %s -> %s\n", lr.line, mark, lr.text, lr.value)
	}
}
