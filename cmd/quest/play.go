package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return newSession(a.game, a.engine, cmd.InOrStdin(), cmd.OutOrStdout()).run(cmd.Context())
	},
}

// session drives one player's menu loop over a single character
type session struct {
	game      game.Service
	enemies   []string
	in        *bufio.Scanner
	out       io.Writer
	character *entities.Character
}

func newSession(svc game.Service, eng engine.Engine, in io.Reader, out io.Writer) *session {
	return &session{
		game:    svc,
		enemies: eng.Enemies(),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// prompt returns the next trimmed line; ok is false once input is exhausted
func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// report prints a recoverable game error; anything else is returned
func (s *session) report(err error) error {
	if errors.GetReason(err) == "" && !errors.IsNotFound(err) && !errors.IsInvalidArgument(err) {
		return err
	}
	s.printf("! %v\n", err)
	return nil
}

func (s *session) run(ctx context.Context) error {
	s.printf("Welcome to Quest Chronicles!\n")
	if err := s.start(ctx); err != nil || s.character == nil {
		return err
	}

	for {
		s.printf("\n1) Character  2) Inventory  3) Shop  4) Quests  5) Fight  6) Save  7) Load  0) Quit\n")
		choice, ok := s.prompt("> ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			s.printf("%s\n", s.character.Describe())
		case "2":
			err = s.inventoryMenu(ctx)
		case "3":
			err = s.shopMenu(ctx)
		case "4":
			err = s.questMenu(ctx)
		case "5":
			err = s.fight(ctx)
		case "6":
			err = s.save(ctx)
		case "7":
			err = s.load(ctx)
		case "0", "q", "quit":
			s.printf("Farewell, %s.\n", s.character.Name)
			return nil
		default:
			s.printf("Unknown choice: %s\n", choice)
		}
		if err != nil {
			if rerr := s.report(err); rerr != nil {
				return rerr
			}
		}
	}
}

// start creates or loads the character for the session
func (s *session) start(ctx context.Context) error {
	for s.character == nil {
		choice, ok := s.prompt("(n)ew character or (l)oad? ")
		if !ok {
			return nil
		}

		var err error
		switch strings.ToLower(choice) {
		case "n", "new":
			err = s.create(ctx)
		case "l", "load":
			err = s.load(ctx)
		default:
			continue
		}
		if err != nil {
			if rerr := s.report(err); rerr != nil {
				return rerr
			}
		}
	}
	return nil
}

func (s *session) create(ctx context.Context) error {
	name, ok := s.prompt("Name: ")
	if !ok {
		return nil
	}
	names := make([]string, len(entities.Classes))
	for i, class := range entities.Classes {
		names[i] = string(class)
	}
	class, ok := s.prompt(fmt.Sprintf("Class (%s): ", strings.Join(names, ", ")))
	if !ok {
		return nil
	}

	out, err := s.game.CreateCharacter(ctx, &game.CreateCharacterInput{Name: name, Class: class})
	if err != nil {
		return err
	}
	s.character = out.Character
	s.printf("%s the %s begins their journey.\n", s.character.Name, s.character.Class)
	return nil
}

func (s *session) load(ctx context.Context) error {
	name, ok := s.prompt("Character name: ")
	if !ok {
		return nil
	}

	out, err := s.game.LoadCharacter(ctx, &game.LoadCharacterInput{Name: name})
	if err != nil {
		return err
	}
	s.character = out.Character
	s.printf("Loaded %s (level %d).\n", s.character.Name, s.character.Level)
	return nil
}

func (s *session) save(ctx context.Context) error {
	if _, err := s.game.SaveCharacter(ctx, &game.SaveCharacterInput{Character: s.character}); err != nil {
		return err
	}
	s.printf("Saved %s.\n", s.character.Name)
	return nil
}

func (s *session) inventoryMenu(ctx context.Context) error {
	if len(s.character.Inventory) == 0 {
		s.printf("Your pack is empty.\n")
		return nil
	}
	for i, id := range s.character.Inventory {
		marker := ""
		if id == s.character.EquippedWeapon || id == s.character.EquippedArmor {
			marker = " (equipped)"
		}
		s.printf("%d. %s%s\n", i+1, id, marker)
	}

	action, ok := s.prompt("(u)se, (e)quip or (b)ack? ")
	if !ok {
		return nil
	}
	switch strings.ToLower(action) {
	case "u", "use":
		itemID, ok := s.pickItem(s.character.Inventory)
		if !ok {
			return nil
		}
		out, err := s.game.UseItem(ctx, &game.UseItemInput{Character: s.character, ItemID: itemID})
		if err != nil {
			return err
		}
		s.printf("Used %s, restored %d health.\n", out.Item.Name, out.HealthRestored)
	case "e", "equip":
		itemID, ok := s.pickItem(s.character.Inventory)
		if !ok {
			return nil
		}
		out, err := s.game.EquipItem(ctx, &game.EquipItemInput{Character: s.character, ItemID: itemID})
		if err != nil {
			return err
		}
		s.printf("Equipped %s as %s.\n", out.Item.Name, out.Slot)
	}
	return nil
}

// pickItem reads a 1-based index into ids
func (s *session) pickItem(ids []string) (string, bool) {
	raw, ok := s.prompt("Item number: ")
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > len(ids) {
		s.printf("No item %s.\n", raw)
		return "", false
	}
	return ids[n-1], true
}

func (s *session) shopMenu(ctx context.Context) error {
	catalog, err := s.game.ListItems(ctx, &game.ListItemsInput{})
	if err != nil {
		return err
	}

	s.printf("Gold: %d\n", s.character.Gold)
	ids := make([]string, len(catalog.Items))
	for i, item := range catalog.Items {
		ids[i] = item.ID
		s.printf("%d. %s (%s, %s) %d gold\n", i+1, item.Name, item.Type, item.Effect, item.Cost)
	}

	action, ok := s.prompt("(b)uy, (s)ell or (l)eave? ")
	if !ok {
		return nil
	}
	switch strings.ToLower(action) {
	case "b", "buy":
		itemID, ok := s.pickItem(ids)
		if !ok {
			return nil
		}
		out, err := s.game.BuyItem(ctx, &game.BuyItemInput{Character: s.character, ItemID: itemID})
		if err != nil {
			return err
		}
		s.printf("Bought %s. Gold left: %d\n", out.Item.Name, s.character.Gold)
	case "s", "sell":
		itemID, ok := s.pickItem(s.character.Inventory)
		if !ok {
			return nil
		}
		out, err := s.game.SellItem(ctx, &game.SellItemInput{Character: s.character, ItemID: itemID})
		if err != nil {
			return err
		}
		s.printf("Sold %s for %d gold.\n", out.Item.Name, out.Price)
	}
	return nil
}

func (s *session) questMenu(ctx context.Context) error {
	log, err := s.game.ListQuests(ctx, &game.ListQuestsInput{Character: s.character})
	if err != nil {
		return err
	}

	for _, group := range []struct {
		title  string
		quests []*entities.QuestDefinition
	}{
		{"Available", log.Available},
		{"Active", log.Active},
		{"Completed", log.Completed},
	} {
		s.printf("%s:\n", group.title)
		if len(group.quests) == 0 {
			s.printf("  (none)\n")
		}
		for _, q := range group.quests {
			s.printf("  [%s] %s: %d xp, %d gold, level %d\n", q.ID, q.Title, q.RewardXP, q.RewardGold, q.RequiredLevel)
		}
	}

	action, ok := s.prompt("(s)tart, (c)omplete, (a)bandon or (b)ack? ")
	if !ok {
		return nil
	}
	action = strings.ToLower(action)
	if action != "s" && action != "c" && action != "a" {
		return nil
	}
	questID, ok := s.prompt("Quest id: ")
	if !ok {
		return nil
	}

	switch action {
	case "s":
		out, err := s.game.AcceptQuest(ctx, &game.AcceptQuestInput{Character: s.character, QuestID: questID})
		if err != nil {
			return err
		}
		s.printf("Accepted %s.\n", out.Quest.Title)
	case "c":
		out, err := s.game.CompleteQuest(ctx, &game.CompleteQuestInput{Character: s.character, QuestID: questID})
		if err != nil {
			return err
		}
		s.printf("Completed %s: +%d xp, +%d gold.\n", out.Quest.Title, out.Quest.RewardXP, out.Quest.RewardGold)
		s.announceLevels(out.LevelsGained)
	case "a":
		if _, err := s.game.AbandonQuest(ctx, &game.AbandonQuestInput{Character: s.character, QuestID: questID}); err != nil {
			return err
		}
		s.printf("Abandoned %s.\n", questID)
	}
	return nil
}

func (s *session) fight(ctx context.Context) error {
	enemy, ok := s.prompt(fmt.Sprintf("Enemy (%s): ", strings.Join(s.enemies, ", ")))
	if !ok {
		return nil
	}

	out, err := s.game.Fight(ctx, &game.FightInput{Character: s.character, Enemy: enemy})
	if err != nil {
		return err
	}

	for _, turn := range out.Turns {
		crit := ""
		if turn.Critical {
			crit = " Critical hit!"
		}
		s.printf("Round %d: %s hits %s for %d.%s (%s has %d left)\n",
			turn.Round, turn.Attacker, turn.Defender, turn.Damage, crit, turn.Defender, turn.DefenderHealth)
	}

	switch out.State {
	case engine.PlayerVictory:
		s.printf("You defeated the %s! +%d xp, +%d gold.\n", out.Enemy, out.RewardXP, out.RewardGold)
		s.announceLevels(out.LevelsGained)
	case engine.PlayerDefeated:
		s.printf("You were defeated by the %s.\n", out.Enemy)
	}
	return nil
}

func (s *session) announceLevels(levels int) {
	if levels > 0 {
		s.printf("Level up! %s is now level %d.\n", s.character.Name, s.character.Level)
	}
}
