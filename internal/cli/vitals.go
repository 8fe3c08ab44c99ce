package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/model"
)

var vitalFlags = []struct {
	name  string
	usage string
	field func(*model.Vitals) **float64
}{
	{"temperature", "Body temperature in °C", func(v *model.Vitals) **float64 { return &v.Temperature }},
	{"systolic", "Systolic blood pressure (mmHg)", func(v *model.Vitals) **float64 { return &v.Systolic }},
	{"diastolic", "Diastolic blood pressure (mmHg)", func(v *model.Vitals) **float64 { return &v.Diastolic }},
	{"heart-rate", "Heart rate (bpm)", func(v *model.Vitals) **float64 { return &v.HeartRate }},
}

func init() {
	cmd := &cobra.Command{
		Use:   "vitals",
		Short: "Record or show the session's vital signs",
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Replace the recorded vitals",
		Long:  "Replace the recorded vitals. Readings not given, or not starting with a number, are recorded as absent.",
		Run:   runVitalsSet,
	}
	for _, f := range vitalFlags {
		set.Flags().String(f.name, "", f.usage)
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the recorded vitals",
		Run:   runVitalsShow,
	}

	cmd.AddCommand(set, show)
	RootCmd.AddCommand(cmd)
}

func runVitalsSet(cmd *cobra.Command, args []string) {
	var v model.Vitals
	for _, f := range vitalFlags {
		raw, _ := cmd.Flags().GetString(f.name)
		if n, ok := model.ParseFloat(raw); ok {
			*f.field(&v) = model.Float(n)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.SetVitals(cmd.Context(), session(), v); err != nil {
		exitErr("vitals set", err)
	}
	printVitals(v)
}

func runVitalsShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	v, err := s.Vitals(cmd.Context(), session())
	if err != nil {
		exitErr("vitals show", err)
	}
	printVitals(v)
}

func printVitals(v model.Vitals) {
	if !textOutput() {
		printJSON(v)
		return
	}
	for _, f := range vitalFlags {
		val := "-"
		if p := *f.field(&v); p != nil {
			val = fmt.Sprintf("%g", *p)
		}
		fmt.Printf("%-12s %s\n", f.name, val)
	}
}
