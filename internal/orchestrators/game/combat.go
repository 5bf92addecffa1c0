package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

func (o *orchestrator) Fight(ctx context.Context, input *FightInput) (*FightOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character

	encounterID := o.idGen.Generate()
	slog.DebugContext(ctx, "encounter starting",
		"encounter_id", encounterID,
		"character", c.Name,
		"enemy", input.Enemy)

	enc, err := o.engine.ResolveEncounter(c, input.Enemy)
	if err != nil {
		return nil, err
	}

	out := &FightOutput{
		EncounterID: encounterID,
		Enemy:       enc.Enemy().Name,
		State:       enc.State(),
		Rounds:      enc.Rounds(),
		Turns:       enc.Turns(),
	}

	if enc.State() == engine.PlayerVictory {
		reward := enc.Reward()

		levels, err := o.engine.GainExperience(c, reward.RewardXP)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to grant reward for encounter %s", encounterID)
		}
		if err := o.engine.AdjustGold(c, reward.RewardGold); err != nil {
			return nil, errors.Wrapf(err, "failed to grant reward for encounter %s", encounterID)
		}

		out.RewardXP = reward.RewardXP
		out.RewardGold = reward.RewardGold
		out.LevelsGained = levels
	}

	slog.InfoContext(ctx, "encounter resolved",
		"encounter_id", encounterID,
		"character", c.Name,
		"enemy", out.Enemy,
		"state", out.State.String(),
		"rounds", out.Rounds,
		"levels_gained", out.LevelsGained)

	return out, nil
}
