package settings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// keys maps a settings key to how it is read and written
var keys = map[string]struct {
	get func(*models.UserSettings) bool
	set func(*models.UserSettings, bool)
}{
	"email_notifications": {
		get: func(s *models.UserSettings) bool { return s.Notifications.EmailNotifications },
		set: func(s *models.UserSettings, v bool) { s.Notifications.EmailNotifications = v },
	},
	"interview_reminders": {
		get: func(s *models.UserSettings) bool { return s.Notifications.InterviewReminders },
		set: func(s *models.UserSettings, v bool) { s.Notifications.InterviewReminders = v },
	},
	"application_deadlines": {
		get: func(s *models.UserSettings) bool { return s.Notifications.ApplicationDeadlines },
		set: func(s *models.UserSettings, v bool) { s.Notifications.ApplicationDeadlines = v },
	},
	"compact_view": {
		get: func(s *models.UserSettings) bool { return s.Preferences.CompactView },
		set: func(s *models.UserSettings, v bool) { s.Preferences.CompactView = v },
	},
}

func keyNames() []string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SettingsCmd returns the settings parent command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change your settings",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())

	return cmd
}

// ShowCmd returns the settings show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your settings",
		RunE:  handler.Command(runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// SetCmd returns the settings set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long: fmt.Sprintf(`Change one setting. Keys: %s.

Examples:
  applyboard settings set compact_view true
  applyboard settings set email_notifications off
`, strings.Join(keyNames(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(runSet),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	st, err := c.App.SettingsService.GetSettings(ctx)
	if err != nil {
		return out.FailService("SETTINGS_ERROR", err)
	}

	if out.JSON {
		return out.JSONResult("settings", st)
	}

	for _, name := range keyNames() {
		if out.Quiet {
			fmt.Printf("%s=%t\n", name, keys[name].get(st))
			continue
		}
		fmt.Printf("%s %t\n", styles.LabelStyle.Render(fmt.Sprintf("%-22s", name)), keys[name].get(st))
	}
	if !out.Quiet && len(st.ColumnTitles) > 0 {
		fmt.Println(styles.SectionStyle.Render("Column titles"))
		for _, status := range models.Statuses() {
			if title, ok := st.ColumnTitles[status]; ok {
				fmt.Printf("  %-10s %s\n", status, title)
			}
		}
	}
	return nil
}

func runSet(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	name := strings.ToLower(args.Arg(0))
	key, ok := keys[name]
	if !ok {
		return out.FailWithSuggestion(cli.ExitUsage, "UNKNOWN_SETTING",
			fmt.Errorf("unknown setting '%s'", args.Arg(0)),
			"Use one of: "+strings.Join(keyNames(), ", "))
	}
	value, err := cli.ParseBool(args.Arg(1))
	if err != nil {
		return out.Fail(cli.ExitDataErr, "INVALID_VALUE", err)
	}

	svc := c.App.SettingsService
	st, err := svc.GetSettings(ctx)
	if err != nil {
		return out.FailService("SETTINGS_ERROR", err)
	}
	key.set(st, value)

	if strings.HasSuffix(name, "_view") {
		err = svc.UpdatePreferences(ctx, st.Preferences)
	} else {
		err = svc.UpdateNotifications(ctx, st.Notifications)
	}
	if err != nil {
		return out.FailService("SETTINGS_ERROR", err)
	}

	if out.JSON {
		return out.JSONResult("setting", map[string]interface{}{name: value})
	}
	if !out.Quiet {
		fmt.Printf("%s %s = %t\n", styles.SuccessStyle.Render("✓"), name, value)
	}
	return nil
}
