package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/usecase"
)

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Email    string
		Password string
	}

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Log in and store the session token",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Password == "" {
				// Read the password from stdin so it stays out of shell
				// history.
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				opts.Password = strings.TrimSpace(line)
			}

			out, err := c.LoginUseCase().Execute(cmd.Context(), usecase.LoginInput{
				Email:    opts.Email,
				Password: opts.Password,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s!\n", out.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// newSignupCommand creates the signup command.
func newSignupCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Email    string
		Password string
	}

	cmd := &cobra.Command{
		Use:     "signup",
		Short:   "Register a new account and log in",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SignupUseCase().Execute(cmd.Context(), usecase.SignupInput{
				Name:     opts.Name,
				Email:    opts.Email,
				Password: opts.Password,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome to Workasana, %s!\n", out.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// newLogoutCommand creates the logout command.
func newLogoutCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Clear the stored session token",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.LogoutUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			c.CurrentUser = nil
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "You have been logged out successfully")
			return nil
		},
	}
}

// newWhoamiCommand creates the whoami command.
func newWhoamiCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the logged-in user",
		GroupID: groupAuth,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireSession(cmd, c)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s <%s>\n", user.Name, user.Email)

			token, err := c.Tokens.Load()
			if err != nil || token == "" {
				return nil
			}
			if expiry, err := usecase.TokenExpiry(token); err == nil && !expiry.IsZero() {
				_, _ = fmt.Fprintf(w, "Session expires %s\n", humanize.Time(expiry))
			}
			return nil
		},
	}
}
