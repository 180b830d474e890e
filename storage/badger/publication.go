package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/laureate/core"
	"github.com/poiesic/laureate/storage"
)

// PublicationRepository implements storage.PublicationRepository for BadgerDB.
type PublicationRepository struct {
	backend *Backend
}

var _ storage.PublicationRepository = (*PublicationRepository)(nil)

// NewPublicationRepository creates a new PublicationRepository.
// The repository takes ownership of the backend; Close closes it.
func NewPublicationRepository(backend *Backend) storage.PublicationRepository {
	return &PublicationRepository{backend: backend}
}

// Close closes the underlying backend.
func (r *PublicationRepository) Close() error {
	return r.backend.Close()
}

// AddPublications adds one or more publications to storage.
// Publications with an existing ID are overwritten.
func (r *PublicationRepository) AddPublications(ctx context.Context, publications ...*core.Publication) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, publication := range publications {
			if err := core.ValidatePublication(publication); err != nil {
				return err
			}

			value := storage.MarshalPublication(publication)
			if err := tx.Set(makePublicationKey(publication.ID), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetPublication retrieves a single publication by ID.
func (r *PublicationRepository) GetPublication(ctx context.Context, id core.ID) (*core.Publication, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var publication *core.Publication
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePublicationKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			publication, err = storage.UnmarshalPublication(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return publication, nil
}

// ListPublications retrieves all stored publications, ordered by ID.
func (r *PublicationRepository) ListPublications(ctx context.Context) ([]*core.Publication, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var publications []*core.Publication
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(publicationPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				publication, err := storage.UnmarshalPublication(val)
				if err != nil {
					return err
				}
				publications = append(publications, publication)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return publications, nil
}

// CountPublications returns the number of stored publications.
func (r *PublicationRepository) CountPublications(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(publicationPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteAllPublications removes every stored publication.
func (r *PublicationRepository) DeleteAllPublications(ctx context.Context) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	// Collect keys first; deleting while iterating invalidates the iterator.
	var keys [][]byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(publicationPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		return nil
	}, false)
	if err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
