package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// Repos fall back to their own *gorm.DB when Tx is nil; services that need
// atomicity open the transaction and thread it through every repo call.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
