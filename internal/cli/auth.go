package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/healthpredict/internal/auth"
	"github.com/rcliao/healthpredict/internal/model"
	"github.com/rcliao/healthpredict/internal/store"
)

func init() {
	register := &cobra.Command{
		Use:   "register",
		Short: "Create a profile and log in",
		Run:   runRegister,
	}
	register.Flags().String("name", "", "Full name")
	register.Flags().StringP("email", "e", "", "Email (required)")
	register.Flags().StringP("password", "p", "", "Password")
	register.Flags().String("confirm", "", "Password confirmation")
	register.MarkFlagRequired("email")

	login := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing profile",
		Run:   runLogin,
	}
	login.Flags().StringP("email", "e", "", "Email (required)")
	login.Flags().StringP("password", "p", "", "Password")
	login.MarkFlagRequired("email")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Log the session out",
		Run:   runLogout,
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in email",
		Run:   runWhoami,
	}

	RootCmd.AddCommand(register, login, logout, whoami)
}

func runRegister(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	confirm, _ := cmd.Flags().GetString("confirm")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := auth.New(s).Register(cmd.Context(), session(), auth.Registration{
		Name:            name,
		Email:           model.NormalizeLabel(email),
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		exitErr("register", err)
	}
	logger.Debug("registered", "email", p.Email, "session", session().Key())
	printProfile(p)
}

func runLogin(cmd *cobra.Command, args []string) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := auth.New(s).Login(cmd.Context(), session(), model.NormalizeLabel(email), password)
	if err != nil {
		exitErr("login", err)
	}
	if textOutput() {
		fmt.Printf("Welcome back, %s\n", p.Name)
		return
	}
	printProfile(p)
}

func runLogout(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := auth.New(s).Logout(cmd.Context(), session()); err != nil {
		exitErr("logout", err)
	}
	if textOutput() {
		fmt.Println("Logged out")
		return
	}
	printJSON(map[string]string{"status": "logged_out", "session": session().Key()})
}

func runWhoami(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	email, err := s.CurrentUser(cmd.Context(), session())
	if err != nil {
		exitErr("whoami", err)
	}
	if email == "" {
		exitErr("whoami", auth.ErrNotLoggedIn)
	}
	if textOutput() {
		fmt.Println(email)
		return
	}
	printJSON(map[string]string{"email": email, "session": session().Key()})
}

// requireProfile loads the session's profile or exits when logged out.
func requireProfile(cmd *cobra.Command, s store.Store) *model.UserProfile {
	p, err := s.GetCurrentProfile(cmd.Context(), session())
	if err != nil {
		exitErr("load profile", err)
	}
	if p == nil {
		exitErr("load profile", auth.ErrNotLoggedIn)
	}
	return p
}

func printProfile(p *model.UserProfile) {
	if !textOutput() {
		printJSON(p)
		return
	}
	bmi := model.BMI(p.Height, p.Weight)
	fmt.Printf("%s <%s>\nage: %d  gender: %s\nheight: %.0f cm  weight: %.0f kg  bmi: %.1f (%s)\n",
		p.Name, p.Email, p.Age, p.Gender, p.Height, p.Weight, bmi, model.BMICategory(bmi))
}
