package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

func (o *orchestrator) AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	if err := o.engine.AcceptQuest(input.Character, input.QuestID, o.quests); err != nil {
		return nil, err
	}
	quest, _ := o.quests.Get(input.QuestID)

	slog.DebugContext(ctx, "quest accepted",
		"character", input.Character.Name,
		"quest_id", input.QuestID)

	return &AcceptQuestOutput{Quest: quest}, nil
}

func (o *orchestrator) CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	result, err := o.engine.CompleteQuest(input.Character, input.QuestID, o.quests)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "quest completed",
		"character", input.Character.Name,
		"quest_id", input.QuestID,
		"levels_gained", result.LevelsGained)

	return &CompleteQuestOutput{Quest: result.Quest, LevelsGained: result.LevelsGained}, nil
}

func (o *orchestrator) AbandonQuest(ctx context.Context, input *AbandonQuestInput) (*AbandonQuestOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	if err := o.engine.AbandonQuest(input.Character, input.QuestID); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "quest abandoned",
		"character", input.Character.Name,
		"quest_id", input.QuestID)

	return &AbandonQuestOutput{}, nil
}

func (o *orchestrator) ListQuests(_ context.Context, input *ListQuestsInput) (*ListQuestsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	c := input.Character

	return &ListQuestsOutput{
		Available: o.definitions(o.engine.ListAvailableQuests(c, o.quests)),
		Active:    o.definitions(o.engine.ListActiveQuests(c)),
		Completed: o.definitions(o.engine.ListCompletedQuests(c)),
	}, nil
}

// definitions resolves quest ids, dropping any the book no longer has
func (o *orchestrator) definitions(ids []string) []*entities.QuestDefinition {
	out := make([]*entities.QuestDefinition, 0, len(ids))
	for _, id := range ids {
		if def, ok := o.quests.Get(id); ok {
			out = append(out, def)
		}
	}
	return out
}
