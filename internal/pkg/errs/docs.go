// Package errs provides the typed errors shared by the domain, application and
// adapter layers of the order operations service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying details, so
// callers can classify with errors.Is and report with the struct fields:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
package errs
