package errors

import "fmt"

// Wrap annotates err with a message while keeping the sentinel chain
// intact for errors.Is. A nil err passes through as nil, so call sites
// can wrap unconditionally:
//
//	if err := store.SaveProjects(ctx, docs); err != nil {
//	    return errors.Wrap(err, "persist projects")
//	}
//
// Callers further up the stack still match the sentinels:
//
//	if errors.Is(err, errors.ErrProjectNotFound) {
//	    // surface a not-found to the user
//	}
//
// Wrap at package boundaries only; re-wrapping every hop buries the
// message under repeated prefixes.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a format string, for messages that carry an id:
//
//	return errors.Wrapf(errors.ErrTaskNotFound, "move task %s", taskID)
//
// Like Wrap, a nil err passes through as nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
