package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), settings.DBPath)
	if err != nil {
		exitErr("stats", err)
	}

	if !textOutput() {
		printJSON(stats)
		return
	}
	fmt.Printf("db: %s (%d bytes)\nprofiles: %d\nassessments: %d\n", stats.DBPath, stats.DBSizeBytes, stats.Profiles, stats.Assessments)
	for _, ss := range stats.Sessions {
		user := ss.CurrentUser
		if user == "" {
			user = "-"
		}
		fmt.Printf("  %s\tuser=%s\tassessments=%d\n", ss.Session, user, ss.Assessments)
	}
}
