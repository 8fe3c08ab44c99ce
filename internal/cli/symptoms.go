package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "Manage the session's accumulated symptoms",
	}

	add := &cobra.Command{
		Use:   "add [symptom...]",
		Short: "Add symptoms to the accumulated set",
		Long:  "Add symptoms to the accumulated set. Each argument is one symptom; --list takes a comma-separated list.",
		Run:   runSymptomsAdd,
	}
	add.Flags().StringP("list", "l", "", "Comma-separated symptoms")

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the accumulated symptoms",
		Run:   runSymptomsList,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the accumulated set",
		Run:   runSymptomsClear,
	}

	cmd.AddCommand(add, list, clearCmd)
	RootCmd.AddCommand(cmd)
}

func runSymptomsAdd(cmd *cobra.Command, args []string) {
	listStr, _ := cmd.Flags().GetString("list")

	labels := append([]string{}, args...)
	if listStr != "" {
		labels = append(labels, strings.Split(listStr, ",")...)
	}
	labels = model.NormalizeLabels(labels)
	if len(labels) == 0 {
		exitErr("symptoms add", fmt.Errorf("at least one symptom is required"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	merged, err := s.MergeSelectedSymptoms(cmd.Context(), session(), labels)
	if err != nil {
		exitErr("symptoms add", err)
	}
	logger.Debug("merged symptoms", "added", len(labels), "total", len(merged))
	printSymptoms(merged)
}

func runSymptomsList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	symptoms, err := s.SelectedSymptoms(cmd.Context(), session())
	if err != nil {
		exitErr("symptoms list", err)
	}
	printSymptoms(symptoms)
}

func runSymptomsClear(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.ClearSelectedSymptoms(cmd.Context(), session()); err != nil {
		exitErr("symptoms clear", err)
	}
	printSymptoms([]string{})
}

func printSymptoms(symptoms []string) {
	if !textOutput() {
		printJSON(symptoms)
		return
	}
	for _, sym := range symptoms {
		fmt.Println(sym)
	}
}
