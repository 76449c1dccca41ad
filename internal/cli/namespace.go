package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var nsCmd = &cobra.Command{
	Use:     "ns",
	Aliases: []string{"namespace"},
	Short:   "Manage namespaces and their members",
	Long: `Manage workspaces (namespaces) and their membership.

A namespace scopes tasks and carries role-based membership. Creating one
makes you its owner. The 'default' namespace can never be deleted, and a
namespace always keeps at least one owner.

Examples:
  taskhub ns create work --description "Work tasks"
  taskhub ns add-user work alice admin
  taskhub ns members work
  taskhub ns remove-user work alice
  taskhub ns delete work`,
	RunE: requireSubcommand,
}

var nsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a namespace",
	Long: `Create a namespace. You become its owner.

The namespace and the owner membership are written atomically: if either
fails, neither persists.`,
	Args: cobra.ExactArgs(1),
	RunE: runNsCreate,
}

var nsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all namespaces",
	RunE:  runNsList,
}

var nsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a namespace",
	Long: `Delete a namespace by name.

The 'default' namespace is protected. A namespace still referenced by
tasks cannot be deleted; its memberships are removed with it.`,
	Args: cobra.ExactArgs(1),
	RunE: runNsDelete,
}

var nsSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Switch the current namespace",
	Args:  cobra.ExactArgs(1),
	RunE:  runNsSwitch,
}

var nsAddUserCmd = &cobra.Command{
	Use:   "add-user <namespace> <user> <role>",
	Short: "Add a user to a namespace with a role",
	Long: `Give a user a role (owner, admin, member or viewer) in a namespace.

Adding an existing member updates their role.`,
	Args: cobra.ExactArgs(3),
	RunE: runNsAddUser,
}

var nsRemoveUserCmd = &cobra.Command{
	Use:   "remove-user <namespace> <user>",
	Short: "Remove a user from a namespace",
	Long: `Remove a user's membership from a namespace.

The only owner of a namespace cannot be removed; assign another owner
first.`,
	Args: cobra.ExactArgs(2),
	RunE: runNsRemoveUser,
}

var nsMembersCmd = &cobra.Command{
	Use:   "members [namespace]",
	Short: "List the members of a namespace",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNsMembers,
}

var nsCreateDescription string

func init() {
	rootCmd.AddCommand(nsCmd)
	nsCmd.AddCommand(nsCreateCmd)
	nsCmd.AddCommand(nsListCmd)
	nsCmd.AddCommand(nsDeleteCmd)
	nsCmd.AddCommand(nsSwitchCmd)
	nsCmd.AddCommand(nsAddUserCmd)
	nsCmd.AddCommand(nsRemoveUserCmd)
	nsCmd.AddCommand(nsMembersCmd)

	nsCreateCmd.Flags().StringVar(&nsCreateDescription, "description", "", "Description of the namespace")
}

func dashes(n int) string {
	return strings.Repeat("-", n)
}

func runNsCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	creator, err := a.currentUser()
	if err != nil {
		return err
	}

	var description *string
	if nsCreateDescription != "" {
		description = &nsCreateDescription
	}

	ns, err := a.namespaces.Create(args[0], description, creator.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Created namespace '%s' (id: %d)\n", ns.Name, ns.ID)
	return nil
}

func runNsList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	namespaces, err := a.namespaces.List()
	if err != nil {
		return err
	}

	if len(namespaces) == 0 {
		fmt.Println("No namespaces found.")
		return nil
	}

	fmt.Printf("%-4s %-20s %-40s\n", "ID", "Name", "Description")
	fmt.Println(dashes(64))

	for _, ns := range namespaces {
		description := "-"
		if ns.Description != nil {
			description = *ns.Description
		}
		fmt.Printf("%-4d %-20s %-40s\n", ns.ID, ns.Name, description)
	}

	return nil
}

func runNsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.namespaces.Delete(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted namespace '%s'\n", args[0])
	return nil
}

func runNsSwitch(cmd *cobra.Command, args []string) error {
	fmt.Printf("To switch to namespace '%s', either:\n", args[0])
	fmt.Printf("  - Set: export TASKHUB_NAMESPACE=%s\n", args[0])
	fmt.Printf("  - Set namespace = %q in ~/.taskhub.toml\n", args[0])
	return nil
}

func runNsAddUser(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	namespace, user, role := args[0], args[1], args[2]

	if err := a.namespaces.AddUser(namespace, user, role); err != nil {
		return err
	}

	fmt.Printf("Added user '%s' to namespace '%s' with role '%s'\n", user, namespace, role)
	return nil
}

func runNsRemoveUser(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	namespace, user := args[0], args[1]

	if err := a.namespaces.RemoveUser(namespace, user); err != nil {
		return err
	}

	fmt.Printf("Removed user '%s' from namespace '%s'\n", user, namespace)
	return nil
}

func runNsMembers(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	namespaceName := a.cfg.Namespace
	if len(args) > 0 {
		namespaceName = args[0]
	}

	members, err := a.namespaces.Members(namespaceName)
	if err != nil {
		return err
	}

	if len(members) == 0 {
		fmt.Printf("No members in namespace '%s'.\n", namespaceName)
		return nil
	}

	fmt.Printf("Members of namespace '%s':\n", namespaceName)
	fmt.Printf("%-20s %-10s\n", "User", "Role")
	fmt.Println(dashes(30))

	for _, member := range members {
		fmt.Printf("%-20s %-10s\n", member.UserName(), member.Role)
	}

	return nil
}
