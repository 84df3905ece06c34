package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dxcli/dx/pkg/format"
)

var (
	fmtCompact bool
	fmtPath    string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Pretty-print structured documents",
	Long: `Pretty-print JSON, YAML, or XML read from a file or stdin.

Examples:
  dx fmt json response.json
  cat data.yaml | dx fmt yaml
  dx fmt json --path '$.users[*].name' response.json`,
}

var fmtJSONCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Pretty-print a JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		var out string
		if fmtPath != "" {
			out, err = format.JSONPath(data, fmtPath)
		} else if fmtCompact {
			out, err = format.JSON(data, 0)
		} else {
			out, err = format.JSON(data, format.DefaultIndent)
		}
		if err != nil {
			return err
		}
		return writeDoc(cmd.OutOrStdout(), out)
	},
}

var fmtYAMLCmd = &cobra.Command{
	Use:   "yaml [file]",
	Short: "Pretty-print a YAML document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		out, err := format.YAML(data)
		if err != nil {
			return err
		}
		return writeDoc(cmd.OutOrStdout(), out)
	},
}

var fmtXMLCmd = &cobra.Command{
	Use:   "xml [file]",
	Short: "Pretty-print an XML document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		out, err := format.XML(data)
		if err != nil {
			return err
		}
		return writeDoc(cmd.OutOrStdout(), out)
	},
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(stdin)
}

func writeDoc(w io.Writer, doc string) error {
	if doc == "" || doc[len(doc)-1] == '\n' {
		_, err := fmt.Fprint(w, doc)
		return err
	}
	_, err := fmt.Fprintln(w, doc)
	return err
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.AddCommand(fmtJSONCmd)
	fmtCmd.AddCommand(fmtYAMLCmd)
	fmtCmd.AddCommand(fmtXMLCmd)

	fmtJSONCmd.Flags().BoolVar(&fmtCompact, "compact", false, "Emit single-line output")
	fmtJSONCmd.Flags().StringVar(&fmtPath, "path", "", "Extract values matching this JSONPath expression")
}
