// Package errors provides structured errors for the combat simulator.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto gRPC status codes at the transport edge
// with ToGRPCError.
//
// Simulation runs fail in exactly two user-visible ways:
//
//	errors.UnknownID("character", "kafka")  // bad configuration
//	errors.NothingToSimulate()              // empty party
//
// Callers tell them apart with IsConfiguration and IsNothingToSimulate.
// Missing numeric data is never an error; it contributes zero.
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load run")
//	}
//
// Config structs validate with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
package errors
