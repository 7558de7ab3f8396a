// Package ctxutil carries import-scoped values through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const importIDKey ctxKey = "import_id"

// WithImportID stores the id of the running import in the context.
func WithImportID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, importIDKey, id)
}

// ImportIDFromCtx extracts the import id from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func ImportIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(importIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
