package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/game"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Manage saved characters",
}

var listCharactersCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.game.ListCharacters(cmd.Context(), &game.ListCharactersInput{})
		if err != nil {
			return err
		}
		if len(out.Names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved characters.")
			return nil
		}
		for _, name := range out.Names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var showCharacterCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a saved character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.game.LoadCharacter(cmd.Context(), &game.LoadCharacterInput{Name: args[0]})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Character.Describe())
		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", out.SavedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.game.DeleteCharacter(cmd.Context(), &game.DeleteCharacterInput{Name: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
		return nil
	},
}

func init() {
	charactersCmd.AddCommand(listCharactersCmd)
	charactersCmd.AddCommand(showCharacterCmd)
	charactersCmd.AddCommand(deleteCharacterCmd)
}
