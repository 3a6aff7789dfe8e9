package repositories

import (
	"fmt"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerTagRepository implements TagRepository using BadgerDB
type BadgerTagRepository struct {
	db *badger.DB
}

// NewBadgerTagRepository creates a new BadgerTagRepository
func NewBadgerTagRepository(db *badger.DB) *BadgerTagRepository {
	return &BadgerTagRepository{db: db}
}

// Create creates a new tag
func (r *BadgerTagRepository) Create(tag *models.Tag) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, TagSeqKey)
		if err != nil {
			return err
		}
		tag.ID = id

		data, err := marshalEntity(tag)
		if err != nil {
			return err
		}

		// Save tag with post ID in key for efficient listing
		key := []byte(fmt.Sprintf("%s%d:%d", TagKeyPrefix, tag.PostID, tag.ID))
		return txn.Set(key, data)
	})
}

// ListByPost retrieves all tags for a post
func (r *BadgerTagRepository) ListByPost(postID int) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%d:", TagKeyPrefix, postID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var tag models.Tag
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &tag)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal tag: %v", err)
			}
			tags = append(tags, &tag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Delete deletes a tag by ID
func (r *BadgerTagRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKeyByID(txn, TagKeyPrefix, func(val []byte) (int, error) {
			var tag models.Tag
			if err := unmarshalEntity(val, &tag); err != nil {
				return 0, err
			}
			return tag.ID, nil
		}, id)
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// DeleteByPost deletes all tags belonging to a post
func (r *BadgerTagRepository) DeleteByPost(postID int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return deleteByPrefix(txn, []byte(fmt.Sprintf("%s%d:", TagKeyPrefix, postID)))
	})
}
