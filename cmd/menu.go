package cmd

import (
	"fmt"
	"io"
	"strings"

	"redelex-panel/core/access"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var menuRole string

// menuCmd prints the composed menu without starting the server.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the composed navigation menu",
	Long: `Registers every feature exactly as the server does and prints the
resulting menu tree. With --role the tree is filtered for that role.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		comp := compose(components{logger: zap.NewNop()})

		var user *session.User
		if menuRole != "" {
			user = &session.User{Role: menuRole, Permissions: access.DefaultPermissions(menuRole)}
		}
		return printMenu(cmd.OutOrStdout(), comp.registry, user)
	},
}

// printMenu writes the section tree. A nil user prints everything.
func printMenu(w io.Writer, registry *navigation.Registry, user *session.User) error {
	sections := registry.MenuSections()
	if user != nil {
		sections = access.VisibleSections(sections, user)
	}

	for _, p := range registry.EnabledPlugins() {
		if _, err := fmt.Fprintf(w, "# %s %s (%s)\n", p.ID, p.Version, p.Name); err != nil {
			return err
		}
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s\n", s.Title); err != nil {
			return err
		}
		for _, it := range s.Items {
			roles := "*"
			if len(it.Roles) > 0 {
				roles = strings.Join(it.Roles, ",")
			}
			if _, err := fmt.Fprintf(w, "  - %-28s %-40s [%s]\n", it.Label, it.Route, roles); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	menuCmd.Flags().StringVar(&menuRole, "role", "", "filter the menu for a role (admin, inmobiliaria)")
	RootCmd.AddCommand(menuCmd)
}
