package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/game"
)

var flagPrune bool

var checkCharactersCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan saved characters for corrupted records",
	Long: `Load every saved character and report records that no longer parse.
With --prune the corrupted records are deleted after confirmation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		corrupted, err := scanCharacters(cmd.Context(), a.game, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if len(corrupted) == 0 || !flagPrune {
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), "\nDelete these corrupted saves? (yes/no): ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted - no changes made")
			return nil
		}
		return pruneCharacters(cmd.Context(), a.game, corrupted, cmd.OutOrStdout())
	},
}

// scanCharacters returns the names whose saves fail with a data format error
func scanCharacters(ctx context.Context, svc game.Service, out io.Writer) ([]string, error) {
	list, err := svc.ListCharacters(ctx, &game.ListCharactersInput{})
	if err != nil {
		return nil, err
	}

	var corrupted []string
	for _, name := range list.Names {
		_, err := svc.LoadCharacter(ctx, &game.LoadCharacterInput{Name: name})
		switch {
		case err == nil:
		case errors.IsDataFormat(err):
			fmt.Fprintf(out, "x %s: %v\n", name, err)
			corrupted = append(corrupted, name)
		default:
			return nil, err
		}
	}

	fmt.Fprintf(out, "Checked %d characters, found %d corrupted\n", len(list.Names), len(corrupted))
	return corrupted, nil
}

func pruneCharacters(ctx context.Context, svc game.Service, names []string, out io.Writer) error {
	for _, name := range names {
		if _, err := svc.DeleteCharacter(ctx, &game.DeleteCharacterInput{Name: name}); err != nil {
			fmt.Fprintf(out, "Failed to delete %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", name)
	}
	return nil
}

func init() {
	checkCharactersCmd.Flags().BoolVar(&flagPrune, "prune", false, "offer to delete corrupted saves")
	charactersCmd.AddCommand(checkCharactersCmd)
}
