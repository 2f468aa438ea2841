package storage

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/buntdb"
)

// Storable items must provide a function to retrieve the database key
type Storable interface {
	Key() string
}

type DB struct {
	*buntdb.DB
}

// NewBunt opens the buntdb file at filePath (":memory:" for tests).
func NewBunt(filePath string) *DB {
	db, err := buntdb.Open(filePath)
	if err != nil {
		log.Fatal(err)
	}
	return &DB{db}
}

// Exists checks if a storable item exists
func (db *DB) Exists(object Storable) (bool, error) {
	err := db.View(func(tx *buntdb.Tx) error {
		_, err := tx.Get(object.Key())
		return err
	})
	if err == buntdb.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get a storable item
func (db *DB) Get(object Storable) error {
	return db.View(func(tx *buntdb.Tx) error {
		val, err := tx.Get(object.Key())
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(val), object)
	})
}

// Set a storable item.
func (db *DB) Set(object Storable) error {
	return db.Update(func(tx *buntdb.Tx) error {
		b, err := json.Marshal(object)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(object.Key(), string(b), nil)
		return err
	})
}

// SetWithTTL stores an item that expires after ttl.
func (db *DB) SetWithTTL(object Storable, ttl time.Duration) error {
	return db.Update(func(tx *buntdb.Tx) error {
		b, err := json.Marshal(object)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(object.Key(), string(b), &buntdb.SetOptions{Expires: true, TTL: ttl})
		return err
	})
}

// Delete a storable item.
func (db *DB) Delete(object Storable) error {
	return db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(object.Key())
		return err
	})
}
