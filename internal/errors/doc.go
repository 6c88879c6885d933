// Package errors provides coded errors for the loot sheet service.
//
// Every error carries a Code that decides how it surfaces at the public
// boundary: the lootsheet facade turns codes into envelope status codes,
// the gRPC handlers turn them into status errors.
//
//	err := errors.NotFound("No token selected or supplied")
//	err := errors.InvalidArgumentf("unknown sheet kind: %s", kind)
//
// Metadata travels with the error:
//
//	err := errors.Internal("failed to delete items").
//	    WithMeta("actor_id", actor.ID)
//
// Wrapping keeps the original code unless WrapWithCode is used:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to update actor")
//	}
//
// Dependency configs are validated with the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.ActorRepo == nil {
//	    vb.RequiredField("ActorRepo")
//	}
//	return vb.Build()
package errors
