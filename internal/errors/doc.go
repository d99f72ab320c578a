// Package errors provides structured errors for card-forge.
//
// Errors carry a Code, a user-facing message, an optional cause and
// free-form metadata. Wrapping keeps the code of the wrapped error so
// a NotFound raised by the resource provider still reaches the gRPC
// boundary as codes.NotFound.
//
//	tmpl, err := provider.Template(ctx, cards.ElementFire)
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load template")
//	}
//
// Configuration validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Pool == nil {
//	    vb.RequiredField("Pool")
//	}
//	return vb.Build()
package errors
