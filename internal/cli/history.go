package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Record or show the session's medical history tags",
	}

	set := &cobra.Command{
		Use:   "set [tag...]",
		Short: "Replace the history tags",
		Long:  "Replace the history tags, e.g. \"Obesity\" or \"Current smoker\". No arguments clears them.",
		Run:   runHistorySet,
	}
	set.Flags().StringP("list", "l", "", "Comma-separated tags")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the history tags",
		Run:   runHistoryShow,
	}

	cmd.AddCommand(set, show)
	RootCmd.AddCommand(cmd)
}

func runHistorySet(cmd *cobra.Command, args []string) {
	listStr, _ := cmd.Flags().GetString("list")

	tags := append([]string{}, args...)
	if listStr != "" {
		tags = append(tags, strings.Split(listStr, ",")...)
	}
	tags = model.NormalizeLabels(tags)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.SetHistory(cmd.Context(), session(), tags); err != nil {
		exitErr("history set", err)
	}
	printHistory(tags)
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	tags, err := s.History(cmd.Context(), session())
	if err != nil {
		exitErr("history show", err)
	}
	printHistory(tags)
}

func printHistory(tags []string) {
	if !textOutput() {
		printJSON(tags)
		return
	}
	for _, t := range tags {
		fmt.Println(t)
	}
}
