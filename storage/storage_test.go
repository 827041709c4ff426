package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Nikita-Dem/StreetCoffeeSait/storage"
)

// Every Store implementation must behave identically from the stores'
// point of view.
func TestStoreImplementations(t *testing.T) {
	impls := map[string]func(t *testing.T) storage.Store{
		"memory": func(t *testing.T) storage.Store {
			return storage.NewMemoryStore()
		},
		"file": func(t *testing.T) storage.Store {
			s, err := storage.NewFileStore(t.TempDir())
			assert.NoError(t, err)
			return s
		},
		"db": func(t *testing.T) storage.Store {
			db, err := gorm.Open(sqlite.Open("file:storagetest?mode=memory&cache=shared"), &gorm.Config{})
			if err != nil {
				t.Fatalf("failed to open test database: %v", err)
			}
			assert.NoError(t, db.AutoMigrate(&storage.Record{}))
			return storage.NewDBStore(db)
		},
	}

	for name, open := range impls {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			t.Run("missing key reads as ErrNotFound", func(t *testing.T) {
				_, err := s.Get(storage.CartKey)
				assert.ErrorIs(t, err, storage.ErrNotFound)
			})

			t.Run("put then get round-trips", func(t *testing.T) {
				assert.NoError(t, s.Put(storage.CartKey, []byte(`[{"id":1}]`)))
				data, err := s.Get(storage.CartKey)
				assert.NoError(t, err)
				assert.Equal(t, []byte(`[{"id":1}]`), data)
			})

			t.Run("put overwrites the previous record", func(t *testing.T) {
				assert.NoError(t, s.Put(storage.CartKey, []byte(`[]`)))
				data, err := s.Get(storage.CartKey)
				assert.NoError(t, err)
				assert.Equal(t, []byte(`[]`), data)
			})

			t.Run("keys are independent", func(t *testing.T) {
				assert.NoError(t, s.Put(storage.ReviewsKey, []byte(`[{"rating":5}]`)))
				data, err := s.Get(storage.CartKey)
				assert.NoError(t, err)
				assert.Equal(t, []byte(`[]`), data)
			})

			t.Run("delete removes the record", func(t *testing.T) {
				assert.NoError(t, s.Delete(storage.CartKey))
				_, err := s.Get(storage.CartKey)
				assert.ErrorIs(t, err, storage.ErrNotFound)
			})

			t.Run("deleting a missing key is not an error", func(t *testing.T) {
				assert.NoError(t, s.Delete(storage.CartKey))
			})
		})
	}
}
