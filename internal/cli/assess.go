package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/assess"
	"github.com/rcliao/healthpredict/internal/engine"
)

func init() {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score the accumulated symptoms and publish the results",
		Long:  "Score the accumulated symptoms against the knowledge base using the logged-in profile, vitals and history. Published results become the session's last assessment and the accumulated symptoms are cleared.",
		Run:   runAssess,
	}

	RootCmd.AddCommand(cmd)
}

func runAssess(cmd *cobra.Command, args []string) {
	catalog, err := loadKB()
	if err != nil {
		exitErr("load knowledge base", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	r := &assess.Runner{
		Store:      s,
		Engine:     engine.New(catalog),
		Normalizer: engine.NewNormalizer(),
		Publisher:  assess.NewPublisher(s),
		Referrals:  catalog,
		Logger:     logger,
	}
	out, err := r.Run(cmd.Context(), session())
	if err != nil {
		exitErr("assess", err)
	}

	if !textOutput() {
		printJSON(out)
		return
	}
	switch out.Status {
	case assess.StatusNoSymptoms:
		fmt.Println("No symptoms reported. Please try again.")
	case assess.StatusNoMatches:
		fmt.Println("No clear matches found. Consult a professional.")
	default:
		fmt.Printf("Assessment %s\n", out.Assessment.ID)
		for i, res := range out.Results {
			fmt.Printf("%d. %-28s %5.1f%%  %s\n", i+1, res.Name, res.Confidence, res.Urgency)
		}
		for _, sp := range out.Specialists {
			fmt.Printf("   see: %s, %s (%s)\n", sp.Name, sp.Specialty, sp.Contact)
		}
	}
}
