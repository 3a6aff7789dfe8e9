package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound = errors.New("record not found")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix     = "post:"
	CategoryKeyPrefix = "category:"
	TagKeyPrefix      = "tag:"
	ImageKeyPrefix    = "image:"
	CommentKeyPrefix  = "comment:"
	UserKeyPrefix     = "user:"

	// Sequence keys for auto-incrementing IDs
	PostSeqKey     = "seq:post"
	CategorySeqKey = "seq:category"
	TagSeqKey      = "seq:tag"
	ImageSeqKey    = "seq:image"
	CommentSeqKey  = "seq:comment"
	UserSeqKey     = "seq:user"
)

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	// Store new ID
	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// findKeyByID scans entries under a prefix and returns the key of the
// entity whose decoded ID matches. Needed for entities stored under
// post-scoped keys, where the ID alone does not determine the key.
func findKeyByID(txn *badger.Txn, prefix string, idOf func([]byte) (int, error), id int) ([]byte, error) {
	var key []byte
	opts := badger.DefaultIteratorOptions
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		item := it.Item()
		var entityID int
		err := item.Value(func(val []byte) error {
			var err error
			entityID, err = idOf(val)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal entity: %v", err)
		}
		if entityID == id {
			key = item.KeyCopy(nil)
			break
		}
	}

	if key == nil {
		return nil, ErrNotFound
	}
	return key, nil
}

// deleteByPrefix deletes every entry under the given prefix.
func deleteByPrefix(txn *badger.Txn, prefix []byte) error {
	var keys [][]byte
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
