package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/auth"
	"github.com/rcliao/healthpredict/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the logged-in profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		Run:   runProfileShow,
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Edit the current profile",
		Long:  "Edit the current profile. Numbers are read leniently (\"42y\" is 42); an unreadable age is stored as 0.",
		Run:   runProfileSet,
	}
	set.Flags().String("name", "", "Full name")
	set.Flags().String("email", "", "Email (moves the profile to a new key)")
	set.Flags().String("age", "", "Age in years")
	set.Flags().String("gender", "", "Gender")
	set.Flags().String("height", "", "Height in cm")
	set.Flags().String("weight", "", "Weight in kg")

	cmd.AddCommand(show, set)
	RootCmd.AddCommand(cmd)
}

func runProfileShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	printProfile(requireProfile(cmd, s))
}

func runProfileSet(cmd *cobra.Command, args []string) {
	var e auth.Edit
	flags := cmd.Flags()
	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		e.Name = &v
	}
	if flags.Changed("email") {
		v, _ := flags.GetString("email")
		v = model.NormalizeLabel(v)
		e.Email = &v
	}
	if flags.Changed("gender") {
		v, _ := flags.GetString("gender")
		e.Gender = &v
	}
	if flags.Changed("age") {
		v, _ := flags.GetString("age")
		n, _ := model.ParseInt(v)
		e.Age = &n
	}
	if flags.Changed("height") {
		v, _ := flags.GetString("height")
		f, _ := model.ParseFloat(v)
		e.Height = &f
	}
	if flags.Changed("weight") {
		v, _ := flags.GetString("weight")
		f, _ := model.ParseFloat(v)
		e.Weight = &f
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := auth.New(s).UpdateProfile(cmd.Context(), session(), e)
	if err != nil {
		exitErr("update profile", err)
	}
	printProfile(p)
}
