package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "specialists [condition]",
		Short: "Show the specialists referred for a condition",
		Long:  "Show the specialists referred for a condition. Without an argument, uses the top result of the last assessment.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSpecialists,
	}

	RootCmd.AddCommand(cmd)
}

func runSpecialists(cmd *cobra.Command, args []string) {
	catalog, err := loadKB()
	if err != nil {
		exitErr("load knowledge base", err)
	}

	var condition string
	if len(args) > 0 {
		condition = model.NormalizeLabel(args[0])
	} else {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		a, err := s.LastAssessment(cmd.Context(), session())
		s.Close()
		if err != nil {
			exitErr("load assessment", err)
		}
		top, ok := a.Top()
		if !ok {
			exitErr("specialists", fmt.Errorf("no condition given and no assessment results found"))
		}
		condition = top.Name
	}

	list := catalog.SpecialistsFor(condition)
	if !textOutput() {
		printJSON(map[string]any{"condition": condition, "specialists": list})
		return
	}
	if len(list) == 0 {
		fmt.Printf("No specialists mapped for %s\n", condition)
		return
	}
	for _, sp := range list {
		fmt.Printf("%s, %s\n  %s  %s  rating %.1f\n", sp.Name, sp.Specialty, sp.Location, sp.Contact, sp.Rating)
	}
}
