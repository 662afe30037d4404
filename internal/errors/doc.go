// Package errors provides structured error handling for the game core.
//
// Errors carry a code, a user-facing message, and optional metadata:
//
//	err := errors.NotFound("mission not found")
//	err := errors.InvalidArgumentf("invalid level: %d", level)
//
// Wrapping preserves the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record match")
//	}
//
// Type checks and extraction:
//
//	if errors.IsNotFound(err) { ... }
//	status := errors.HTTPStatus(err)
//
// Multi-field input validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("user_id", input.PlayerID, vb)
//	errors.ValidateMin("level", input.Level, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The handler layer converts errors to HTTP responses via HTTPStatus and
// HTTPBody; the core never maps transport concerns itself.
package errors
