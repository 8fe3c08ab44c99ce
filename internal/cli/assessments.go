package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "assessments",
		Short: "List published assessments, newest first",
		Run:   runAssessments,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runAssessments(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	list, err := s.ListAssessments(cmd.Context(), session(), limit)
	if err != nil {
		exitErr("list assessments", err)
	}

	if !textOutput() {
		printJSON(list)
		return
	}
	for _, a := range list {
		top := "-"
		if r, ok := a.Top(); ok {
			top = fmt.Sprintf("%s (%.1f%%)", r.Name, r.Confidence)
		}
		fmt.Printf("%s  %s  %s  [%s]\n", a.ID, a.CreatedAt.Format("2006-01-02 15:04"), top, strings.Join(a.Symptoms, ", "))
	}
}
