package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/yigit/passboard/internal/filter"
	"github.com/yigit/passboard/internal/records"
	"github.com/yigit/passboard/internal/render"
)

// filterFlags holds the six raw selections plus the output format
type filterFlags struct {
	academicYear   string
	btechYear      string
	semester       string
	department     string
	passComparison string
	passPercentage string
	format         string
}

var filterOpts filterFlags

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the records matching the given filters",
	Long: `Print the records matching every given filter. Omitted filters do not
constrain the result.

  --academic-year   an academic year such as 2023-2024, or 3 / 5 for the
                    last three / five years present in the data
  --department      a department or section; a department also matches its
                    numbered sections (ECE matches ECE-1, ECE-2)
  --pass-comparison equal (default), greater, greaterEqual, less, lessEqual`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, normalizer := loadSnapshot(cmd.Context())
		engine := filter.NewEngine(normalizer)
		return runFilter(cmd.OutOrStdout(), snapshot, engine, filterOpts)
	},
}

func init() {
	f := filterCmd.Flags()
	f.StringVar(&filterOpts.academicYear, "academic-year", "", "academic year, or 3 / 5 for the last N years")
	f.StringVar(&filterOpts.btechYear, "btech-year", "", "B. Tech. year")
	f.StringVar(&filterOpts.semester, "semester", "", "semester")
	f.StringVar(&filterOpts.department, "department", "", "department or section")
	f.StringVar(&filterOpts.passComparison, "pass-comparison", string(filter.Equal), "comparison applied to --pass-percentage")
	f.StringVar(&filterOpts.passPercentage, "pass-percentage", "", "pass percentage threshold")
	f.StringVarP(&filterOpts.format, "format", "o", "text", "output format: text or json")
}

// runFilter runs one filter-and-render cycle against the snapshot
func runFilter(out io.Writer, snapshot *records.Snapshot, engine *filter.Engine, opts filterFlags) error {
	criteria := filter.NewCriteria(
		opts.academicYear,
		opts.btechYear,
		opts.semester,
		opts.department,
		opts.passComparison,
		opts.passPercentage,
	)

	lgr.Debug().
		Str("academicYear", criteria.AcademicYear).
		Str("btechYear", criteria.BTechYear).
		Str("semester", criteria.Semester).
		Str("department", criteria.Department).
		Str("passComparison", string(criteria.PassComparison)).
		Str("passPercentage", criteria.PassPercentage).
		Msg("Applying filters")

	result := engine.Apply(snapshot.Records(), criteria)
	return render.New(opts.format).Render(out, result)
}
