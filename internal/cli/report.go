package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a report of the last assessment",
		Run:   runReport,
	}

	cmd.Flags().Bool("no-color", false, "Disable styling")

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	noColor, _ := cmd.Flags().GetBool("no-color")

	catalog, err := loadKB()
	if err != nil {
		exitErr("load knowledge base", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	a, err := s.LastAssessment(cmd.Context(), session())
	if err != nil {
		exitErr("load assessment", err)
	}
	top, ok := a.Top()
	if !ok {
		exitErr("report", report.ErrNoResults)
	}
	profile, err := s.GetCurrentProfile(cmd.Context(), session())
	if err != nil {
		exitErr("load profile", err)
	}

	d := report.Data{
		Profile:     profile,
		Assessment:  a,
		Specialists: catalog.SpecialistsFor(top.Name),
	}
	if !textOutput() {
		printJSON(d)
		return
	}
	if err := report.Render(os.Stdout, d, report.Options{Color: settings.Color && !noColor}); err != nil {
		exitErr("report", err)
	}
}
