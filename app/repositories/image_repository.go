package repositories

import (
	"fmt"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerImageRepository implements ImageRepository using BadgerDB
type BadgerImageRepository struct {
	db *badger.DB
}

// NewBadgerImageRepository creates a new BadgerImageRepository
func NewBadgerImageRepository(db *badger.DB) *BadgerImageRepository {
	return &BadgerImageRepository{db: db}
}

// Create creates a new image record
func (r *BadgerImageRepository) Create(image *models.Image) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, ImageSeqKey)
		if err != nil {
			return err
		}
		image.ID = id

		data, err := marshalEntity(image)
		if err != nil {
			return err
		}

		// Save image with post ID in key for efficient listing
		key := []byte(fmt.Sprintf("%s%d:%d", ImageKeyPrefix, image.PostID, image.ID))
		return txn.Set(key, data)
	})
}

// ListByPost retrieves all images for a post
func (r *BadgerImageRepository) ListByPost(postID int) ([]*models.Image, error) {
	var images []*models.Image
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%d:", ImageKeyPrefix, postID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var image models.Image
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &image)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal image: %v", err)
			}
			images = append(images, &image)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Delete deletes an image by ID
func (r *BadgerImageRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKeyByID(txn, ImageKeyPrefix, func(val []byte) (int, error) {
			var image models.Image
			if err := unmarshalEntity(val, &image); err != nil {
				return 0, err
			}
			return image.ID, nil
		}, id)
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// DeleteByPost deletes all images belonging to a post
func (r *BadgerImageRepository) DeleteByPost(postID int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return deleteByPrefix(txn, []byte(fmt.Sprintf("%s%d:", ImageKeyPrefix, postID)))
	})
}
