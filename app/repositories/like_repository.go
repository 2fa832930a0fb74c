package repositories

import (
	"fmt"

	"multiblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerLikeRepository implements LikeRepository using BadgerDB
type BadgerLikeRepository struct {
	db *badger.DB
}

// NewBadgerLikeRepository creates a new BadgerLikeRepository
func NewBadgerLikeRepository(db *badger.DB) *BadgerLikeRepository {
	return &BadgerLikeRepository{db: db}
}

// Add records a like for (post, user) and increments the post's like
// counter. Both writes happen in one transaction keyed on the pair, so
// concurrent requests cannot produce duplicate likes or lose counter
// updates.
func (r *BadgerLikeRepository) Add(postID, userID int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		lkey := likeKey(postID, userID)
		_, err := txn.Get(lkey)
		if err == nil {
			return ErrExists
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		pkey := postKey(postID)
		item, err := txn.Get(pkey)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}
		post.Likes++

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		if err := txn.Set(pkey, data); err != nil {
			return err
		}

		like := models.Like{PostID: postID, UserID: userID}
		ldata, err := marshalEntity(&like)
		if err != nil {
			return err
		}
		return txn.Set(lkey, ldata)
	})
}

// Exists reports whether (post, user) has already liked
func (r *BadgerLikeRepository) Exists(postID, userID int) (bool, error) {
	var exists bool
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(likeKey(postID, userID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

// DeleteByPost removes all likes under a post
func (r *BadgerLikeRepository) DeleteByPost(postID int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%d:", LikeKeyPrefix, postID))
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
