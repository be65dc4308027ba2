package delivery

import (
	"fmt"

	"cloudmart_service/internal/domain"

	"github.com/google/uuid"
)

// EnsureDocumentID gives a document without an id a fresh UUID, since remote collections key on it.
// An id that is present but not a string is rejected rather than replaced.
func EnsureDocumentID(doc map[string]any) error {
	raw, present := doc["id"]
	if !present || raw == nil {
		doc["id"] = uuid.NewString()
		return nil
	}
	id, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: id must be a string, got %T", domain.ErrInvalidDocument, raw)
	}
	if id == "" {
		doc["id"] = uuid.NewString()
	}
	return nil
}
