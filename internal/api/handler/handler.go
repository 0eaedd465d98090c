package handler

import "fmt"

// notFoundCause builds the detail message attached to NOT_FOUND errors.
func notFoundCause(id string) error {
	return fmt.Errorf("cryptocurrency %q not found", id)
}
