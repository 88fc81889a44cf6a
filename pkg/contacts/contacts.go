// Package contacts is the public API of the mobile contacts registry. Open
// picks a Store backend from a Config and wires a Registry over it, keeping
// both implementations internal.
package contacts

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/memory"
	"github.com/mesh-intelligence/contacts/internal/registry"
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Version is the release of the contacts module.
const Version = "0.1.0"

// Book is a Registry that owns its Store. Close releases the Store.
type Book struct {
	types.Registry
	store types.Store
}

// Open validates cfg, opens the selected Store and returns a Book over it.
//
// Example:
//
//	book, err := contacts.Open(types.Config{Backend: types.BackendMemory}, log)
//	if err != nil {
//	    return err
//	}
//	defer book.Close()
func Open(cfg types.Config, log *zap.Logger) (*Book, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	store, err := openStore(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	log = log.With(zap.String("backend", cfg.Backend))
	return &Book{Registry: registry.New(store, log), store: store}, nil
}

func openStore(backend string) (types.Store, error) {
	switch backend {
	case types.BackendSQLite:
		return sqlite.Open()
	default:
		return memory.NewStore(), nil
	}
}

// Close releases the Store. The Book must not be used afterwards.
func (b *Book) Close() error {
	return b.store.Close()
}
