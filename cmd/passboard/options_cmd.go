package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/yigit/passboard/internal/records"
)

var optionsFormat string

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the values each filter accepts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, _ := loadSnapshot(cmd.Context())
		return runOptions(cmd.OutOrStdout(), snapshot.Options(), optionsFormat)
	},
}

func init() {
	optionsCmd.Flags().StringVarP(&optionsFormat, "format", "o", "text", "output format: text or json")
}

func runOptions(out io.Writer, opts records.Options, format string) error {
	if strings.EqualFold(format, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	}

	lines := []struct {
		label  string
		values []string
	}{
		{"Academic years", opts.AcademicYears},
		{"Last N years", opts.RecentYears},
		{"Semesters", opts.Semesters},
		{"Departments", opts.Sections},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(out, "%-15s %s\n", l.label+":", strings.Join(l.values, ", ")); err != nil {
			return err
		}
	}
	return nil
}
