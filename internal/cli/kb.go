package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/kb"
)

func init() {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect and validate knowledge bases",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the condition rules in catalog order",
		Run:   runKBList,
	}

	validate := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a knowledge base TOML file",
		Long:  "Validate a knowledge base TOML file (default: --kb). With --watch, re-validate every time the file changes until interrupted.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runKBValidate,
	}
	validate.Flags().BoolP("watch", "w", false, "Re-validate on change")

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the active knowledge base as TOML to stdout",
		Run:   runKBExport,
	}

	cmd.AddCommand(list, validate, export)
	RootCmd.AddCommand(cmd)
}

func runKBList(cmd *cobra.Command, args []string) {
	catalog, err := loadKB()
	if err != nil {
		exitErr("load knowledge base", err)
	}

	rules := catalog.ListRules()
	if !textOutput() {
		printJSON(rules)
		return
	}
	for _, r := range rules {
		fmt.Printf("%-26s %-8s %.2f  %s\n", r.Name, r.Urgency, r.BaseWeight, strings.Join(r.Symptoms, ", "))
	}
}

func runKBValidate(cmd *cobra.Command, args []string) {
	watch, _ := cmd.Flags().GetBool("watch")

	path := settings.KBPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		exitErr("validate", fmt.Errorf("no file given and no knowledge base configured"))
	}

	if !watch {
		catalog, err := kb.Load(path)
		if err != nil {
			exitErr("validate", err)
		}
		reportValid(path, catalog)
		return
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("watching knowledge base", "path", path)
	err := kb.Watch(ctx, path, func(catalog *kb.KnowledgeBase, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
			return
		}
		reportValid(path, catalog)
	})
	if err != nil {
		exitErr("watch", err)
	}
}

func reportValid(path string, catalog *kb.KnowledgeBase) {
	if textOutput() {
		fmt.Printf("%s: ok, %d conditions\n", path, catalog.Len())
		return
	}
	printJSON(map[string]any{"path": path, "valid": true, "conditions": catalog.Len()})
}

func runKBExport(cmd *cobra.Command, args []string) {
	catalog, err := loadKB()
	if err != nil {
		exitErr("load knowledge base", err)
	}
	if err := catalog.Write(os.Stdout); err != nil {
		exitErr("export", err)
	}
}
