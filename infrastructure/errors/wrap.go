package errors

import "fmt"

// WrapWithContext prefixes err with the operation that failed. Nil stays nil.
func WrapWithContext(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// WrapWithContextf is WrapWithContext with a formatted operation.
func WrapWithContextf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
