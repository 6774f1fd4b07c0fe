/*
Package errors implements custom error interfaces for chill.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when absolutely necessary. All root errors are
registered with a unique code so that a command line client can map any
failure to a stable numeric value.

Create errors at the point of failure by wrapping one of the root errors:

	return errors.Wrapf(errors.ErrInsufficientBalance, "has %d, want %d", have, want)

Test the kind of an error with the Is method of the root error:

	if errors.ErrNotFound.Is(err) {
		...
	}

The innermost Wrap call attaches a stacktrace, which is displayed when the
error is formatted with %+v.
*/
package errors
