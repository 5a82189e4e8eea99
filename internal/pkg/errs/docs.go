// Package errs defines the standardized error types shared across the
// ordering service.
//
// Every type follows the same shape: a sentinel for classification with
// errors.Is (e.g. ErrObjectNotFound), a struct carrying the parameter name
// and optional cause, paired constructors with and without a cause, and an
// Unwrap method returning the sentinel.
//
// Typical usage at a repository boundary:
//
//	order, err := repo.Get(ctx, orderID)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404 territory
//	}
//
// Domain packages define their own error types (order.ValidationError,
// ports.ClientNotFoundError) in the same sentinel-plus-struct pattern so the
// HTTP layer can classify everything uniformly.
package errs
