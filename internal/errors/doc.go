// Package errors provides the structured error type used across quest-chronicles.
//
// Every error carries a Code (the broad category) and, for game rule
// violations, a Reason naming the exact rule:
//
//	err := errors.InventoryFullf("inventory holds %d items", capacity)
//	errors.GetCode(err)   // RESOURCE_EXHAUSTED
//	errors.GetReason(err) // INVENTORY_FULL
//
// Adding metadata:
//
//	err := errors.ItemNotFoundf("item %s not in inventory", id).
//	    WithMeta("item_id", id)
//
// Wrapping keeps the code and reason of the original error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// # Error Checking
//
//	if errors.IsCharacterNotFound(err) {
//	    // offer to create a new character
//	}
//
//	if errors.HasReason(err, errors.ReasonQuestNotActive) {
//	    // ...
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("save_dir", cfg.SaveDir, vb)
//	errors.ValidateMin("capacity", cfg.Capacity, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Engine layer:
//   - Validate fully before mutating; return a Reason error on rule violations
//
// Repository layer:
//   - Return CharacterNotFound for missing records, DataFormat for corrupt ones
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Wrap engine and repository errors with business context
//   - Log internal errors for debugging
package errors
