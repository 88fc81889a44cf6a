// Package registry implements the validated entry point of the contacts
// registry. It checks the uniqueness rules, maps transfer shapes into
// records and reports rule violations as typed errors before any Store
// mutation happens.
package registry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Registry implements types.Registry over an injected Store.
type Registry struct {
	// mu covers each operation from its existence checks to the Store
	// mutation, so concurrent callers cannot both pass a uniqueness check.
	mu    sync.Mutex
	store types.Store
	log   *zap.Logger
}

var _ types.Registry = (*Registry)(nil)

// New returns a Registry over store. A nil log discards log output.
func New(store types.Store, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{store: store, log: log}
}

func (r *Registry) Create(dto types.MobileContactDTO) (*types.MobileContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	taken, err := r.store.PhoneNumberExists(dto.PhoneNumber)
	if err != nil {
		return nil, r.storeFailure("create", err)
	}
	if taken {
		return nil, r.phoneNumberConflict("create", dto.PhoneNumber)
	}

	taken, err = r.store.IDExists(dto.ID)
	if err != nil {
		return nil, r.storeFailure("create", err)
	}
	if taken {
		err := &types.IDConflictError{ID: dto.ID}
		r.log.Warn(err.Error(),
			zap.String("event", logger.EventIDConflict),
			zap.String("op", "create"),
			zap.Int64("id", dto.ID))
		return nil, err
	}

	contact, err := r.store.Insert(mapMobileContact(dto))
	if err != nil {
		return nil, r.storeFailure("create", err)
	}

	r.log.Info("mobile contact created",
		zap.String("event", logger.EventContactCreated),
		zap.Int64("id", contact.ID),
		zap.String("phone_number", contact.PhoneNumber))
	return contact, nil
}

func (r *Registry) Update(id int64, dto types.MobileContactDTO) (*types.MobileContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A path id that disagrees with the body id is reported the same way
	// as a missing id.
	if id != dto.ID {
		return nil, r.notFound("update", types.NotFoundByID(id))
	}
	exists, err := r.store.IDExists(id)
	if err != nil {
		return nil, r.storeFailure("update", err)
	}
	if !exists {
		return nil, r.notFound("update", types.NotFoundByID(id))
	}

	owner, err := r.store.GetByPhoneNumber(dto.PhoneNumber)
	if err != nil {
		return nil, r.storeFailure("update", err)
	}
	if owner != nil && owner.ID != dto.ID {
		return nil, r.phoneNumberConflict("update", dto.PhoneNumber)
	}

	contact, err := r.store.Update(id, mapMobileContact(dto))
	if err != nil {
		return nil, r.storeFailure("update", err)
	}
	if contact == nil {
		return nil, r.notFound("update", types.NotFoundByID(id))
	}

	r.log.Info("mobile contact updated",
		zap.String("event", logger.EventContactUpdated),
		zap.Int64("id", contact.ID),
		zap.String("phone_number", contact.PhoneNumber))
	return contact, nil
}

func (r *Registry) DeleteByPhoneNumber(phoneNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := r.store.PhoneNumberExists(phoneNumber)
	if err != nil {
		return r.storeFailure("delete", err)
	}
	if !exists {
		return r.notFound("delete", types.NotFoundByPhoneNumber(phoneNumber))
	}
	if err := r.store.DeleteByPhoneNumber(phoneNumber); err != nil {
		return r.storeFailure("delete", err)
	}

	r.log.Info("mobile contact deleted",
		zap.String("event", logger.EventContactDeleted),
		zap.String("phone_number", phoneNumber))
	return nil
}

func (r *Registry) DeleteByID(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := r.store.IDExists(id)
	if err != nil {
		return r.storeFailure("delete", err)
	}
	if !exists {
		return r.notFound("delete", types.NotFoundByID(id))
	}
	if err := r.store.DeleteByID(id); err != nil {
		return r.storeFailure("delete", err)
	}

	r.log.Info("mobile contact deleted",
		zap.String("event", logger.EventContactDeleted),
		zap.Int64("id", id))
	return nil
}

func (r *Registry) GetByPhoneNumber(phoneNumber string) (*types.MobileContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, err := r.store.GetByPhoneNumber(phoneNumber)
	if err != nil {
		return nil, r.storeFailure("get", err)
	}
	if contact == nil {
		return nil, r.notFound("get", types.NotFoundByPhoneNumber(phoneNumber))
	}

	r.log.Debug("mobile contact found",
		zap.String("event", logger.EventContactLookup),
		zap.String("phone_number", phoneNumber))
	return contact, nil
}

func (r *Registry) GetByID(id int64) (*types.MobileContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, err := r.store.GetByID(id)
	if err != nil {
		return nil, r.storeFailure("get", err)
	}
	if contact == nil {
		return nil, r.notFound("get", types.NotFoundByID(id))
	}

	r.log.Debug("mobile contact found",
		zap.String("event", logger.EventContactLookup),
		zap.Int64("id", id))
	return contact, nil
}

func (r *Registry) GetAll() ([]types.MobileContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts, err := r.store.GetAll()
	if err != nil {
		return nil, r.storeFailure("list", err)
	}
	return contacts, nil
}

func (r *Registry) phoneNumberConflict(op, phoneNumber string) error {
	err := &types.PhoneNumberConflictError{PhoneNumber: phoneNumber}
	r.log.Warn(err.Error(),
		zap.String("event", logger.EventPhoneNumberConflict),
		zap.String("op", op),
		zap.String("phone_number", phoneNumber))
	return err
}

func (r *Registry) notFound(op string, err *types.NotFoundError) error {
	r.log.Warn(err.Error(),
		zap.String("event", logger.EventContactNotFound),
		zap.String("op", op),
		zap.String("key", err.Key),
		zap.String("value", err.Value))
	return err
}

func (r *Registry) storeFailure(op string, err error) error {
	r.log.Error("store failure",
		zap.String("event", logger.EventStoreFailure),
		zap.String("op", op),
		zap.Error(err))
	return fmt.Errorf("%s mobile contact: %w", op, err)
}
