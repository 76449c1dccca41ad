package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long: `Manage the user directory.

Users are looked up by name everywhere; the name must be unique.

Examples:
  taskhub user create alice --display-name "Alice P."
  taskhub user list
  taskhub user delete alice`,
	RunE: requireSubcommand,
}

var userCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserCreate,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE:  runUserList,
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a user",
	Long: `Delete a user by name.

A user who still owns or is assigned any task cannot be deleted; their
namespace memberships are removed along with the user.`,
	Args: cobra.ExactArgs(1),
	RunE: runUserDelete,
}

var userCreateDisplayName string

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userDeleteCmd)

	userCreateCmd.Flags().StringVar(&userCreateDisplayName, "display-name", "", "Display name for the user")
}

func requireSubcommand(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	creator, err := a.currentUser()
	if err != nil {
		return err
	}

	var displayName *string
	if userCreateDisplayName != "" {
		displayName = &userCreateDisplayName
	}

	user, err := a.users.Create(args[0], displayName, &creator.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Created user '%s' (id: %d)\n", user.Display(), user.ID)
	return nil
}

func runUserList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	users, err := a.users.List()
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	fmt.Printf("%-4s %-20s %-30s\n", "ID", "Name", "Display Name")
	fmt.Println(dashes(54))

	for _, user := range users {
		displayName := "-"
		if user.DisplayName != nil {
			displayName = *user.DisplayName
		}
		fmt.Printf("%-4d %-20s %-30s\n", user.ID, user.Name, displayName)
	}

	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.users.Delete(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted user '%s'\n", args[0])
	return nil
}
