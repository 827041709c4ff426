// Package storage is the durable key-value layer behind the storefront's
// cart and review lists. Records are JSON blobs addressed by a fixed
// namespace key, which keeps the medium (files, embedded DB, server DB)
// swappable without touching the stores built on top.
package storage

import "errors"

// Namespace keys used by the storefront stores.
const (
	CartKey    = "streetcoffee_cart"
	ReviewsKey = "streetCoffeeReviews"
)

var ErrNotFound = errors.New("storage: record not found")

type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
