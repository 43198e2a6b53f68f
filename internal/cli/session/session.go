package session

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/auth"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
	"github.com/thenoetrevino/applyboard/internal/config"
	"github.com/thenoetrevino/applyboard/internal/user"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in on this machine",
		Long: `Create a session token for a user and save it to ~/.applyboard/session.
Tokens are signed with auth.secret from the config file or APPLYBOARD_SECRET.

Examples:
  applyboard login --user alice

  # Print the token for use as APPLYBOARD_TOKEN elsewhere
  applyboard login --user alice --print-token
`,
		RunE: runLogin,
	}

	cmd.Flags().String("user", "", "User ID to sign in as (defaults to the OS account name)")
	cmd.Flags().Bool("print-token", false, "Print the token instead of only saving it")
	cli.AddOutputFlags(cmd)

	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved session",
		RunE:  runLogout,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE:  runWhoami,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	out := cli.FormatterFromFlags(cmd)

	userID, _ := cmd.Flags().GetString("user")
	printToken, _ := cmd.Flags().GetBool("print-token")
	if userID == "" {
		userID = user.DefaultID()
	}
	if userID == "" {
		return out.FailWithSuggestion(cli.ExitUsage, "MISSING_USER",
			errors.New("--user is required"), "applyboard login --user <id>")
	}

	cfg, err := config.Load()
	if err != nil {
		return out.Fail(cli.ExitError, "CONFIG_ERROR", err)
	}

	token, err := auth.GenerateToken(userID, []byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	if err != nil {
		if errors.Is(err, auth.ErrEmptySecret) {
			return out.FailWithSuggestion(cli.ExitUsage, "NO_SECRET", err,
				"Set auth.secret in the config file or export APPLYBOARD_SECRET")
		}
		return out.Fail(cli.ExitError, "TOKEN_ERROR", err)
	}

	path, err := auth.DefaultTokenPath()
	if err == nil {
		err = auth.SaveToken(path, token)
	}
	if err != nil {
		return out.Fail(cli.ExitError, "SESSION_ERROR", err)
	}

	switch {
	case out.JSON:
		data := map[string]interface{}{"userId": userID}
		if printToken {
			data["token"] = token
		}
		return out.JSONResult("session", data)
	case out.Quiet || printToken:
		if printToken {
			fmt.Println(token)
		} else {
			fmt.Println(userID)
		}
	default:
		fmt.Printf("%s Signed in as %s\n", styles.SuccessStyle.Render("✓"), userID)
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	out := cli.FormatterFromFlags(cmd)

	path, err := auth.DefaultTokenPath()
	if err == nil {
		err = auth.ClearToken(path)
	}
	if err != nil {
		return out.Fail(cli.ExitError, "SESSION_ERROR", err)
	}

	if out.JSON {
		return out.JSONResult("session", nil)
	}
	if !out.Quiet {
		fmt.Println("Signed out")
	}
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	out := cli.FormatterFromFlags(cmd)

	cfg, err := config.Load()
	if err != nil {
		return out.Fail(cli.ExitError, "CONFIG_ERROR", err)
	}
	token, err := cli.SessionToken()
	if err != nil {
		return out.Fail(cli.ExitError, "SESSION_ERROR", err)
	}
	if token == "" {
		return out.FailWithSuggestion(cli.ExitNotFound, "NOT_SIGNED_IN",
			errors.New("not signed in"), "applyboard login --user <id>")
	}

	userID, err := auth.UserIDFromToken(token, []byte(cfg.Auth.Secret))
	if err != nil {
		return out.FailWithSuggestion(cli.ExitNotFound, "INVALID_SESSION", err,
			"Your session expired or the secret changed. Sign in again.")
	}

	if out.JSON {
		return out.JSONResult("session", map[string]interface{}{"userId": userID})
	}
	fmt.Println(userID)
	return nil
}
