// Package reviews implements the review board: validated submission,
// rating filters and fixed-size pages over a durable JSON record.
package reviews

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Nikita-Dem/StreetCoffeeSait/models"
	"github.com/Nikita-Dem/StreetCoffeeSait/storage"
)

// Validation errors carry the exact messages the storefront shows inline.
var (
	ErrMissingFields = errors.New("Пожалуйста, заполните все обязательные поля!")
	ErrTextTooShort  = errors.New("Отзыв должен содержать минимум 10 символов!")
)

const (
	// PageSize is the fixed number of reviews per board page.
	PageSize = 6

	minTextLen = 10
)

type Filter string

const (
	FilterAll        Filter = "all"
	FilterRating5    Filter = "5"
	FilterRating4    Filter = "4"
	FilterRating3    Filter = "3"
	FilterLatest     Filter = "latest"
	FilterWithPhotos Filter = "with-photos"
)

type Store struct {
	store storage.Store
}

func New(store storage.Store) *Store {
	return &Store{store: store}
}

// load reads the stored list. A missing or corrupt record reads as "no
// reviews yet", never a crash.
func (s *Store) load() []models.Review {
	data, err := s.store.Get(storage.ReviewsKey)
	if err != nil {
		return nil
	}
	var reviews []models.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil
	}
	return reviews
}

func (s *Store) save(reviews []models.Review) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		return err
	}
	return s.store.Put(storage.ReviewsKey, data)
}

// Submit validates the form fields and, on success, prepends a fresh
// review to the stored list. A validation failure leaves the list
// untouched. Images are expected as ready data URLs (see EncodeImages);
// anything past the first three is dropped.
func (s *Store) Submit(name string, rating int, text string, images []string) (models.Review, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)

	if name == "" || text == "" || rating < 1 || rating > 5 {
		return models.Review{}, ErrMissingFields
	}
	if utf8.RuneCountInString(text) < minTextLen {
		return models.Review{}, ErrTextTooShort
	}
	if len(images) > maxImages {
		images = images[:maxImages]
	}

	now := time.Now()
	review := models.Review{
		ID:       now.UnixMilli(),
		Name:     name,
		Rating:   rating,
		Text:     text,
		Date:     formatDate(now),
		Time:     now.Format("15:04"),
		Images:   images,
		Verified: false,
	}

	reviews := s.load()
	// IDs are time-derived but must stay strictly increasing, so two
	// submissions inside one millisecond still get distinct identities.
	if len(reviews) > 0 && reviews[0].ID >= review.ID {
		review.ID = reviews[0].ID + 1
	}
	reviews = append([]models.Review{review}, reviews...)
	if err := s.save(reviews); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// Page is one rendered page of the review board.
type Page struct {
	Reviews    []models.Review
	Total      int // reviews matching the filter
	TotalPages int
	Page       int
}

// List applies the filter and slices out the requested 1-indexed page.
// An out-of-range page — below 1 or past the last page — comes back empty
// so the board can render its "no reviews" state rather than erroring.
func (s *Store) List(filter Filter, page int) Page {
	filtered := applyFilter(s.load(), filter)
	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if page < 1 {
		return Page{Total: total, TotalPages: totalPages, Page: page}
	}

	start := (page - 1) * PageSize
	if start >= total {
		return Page{Total: total, TotalPages: totalPages, Page: page}
	}
	end := start + PageSize
	if end > total {
		end = total
	}
	return Page{Reviews: filtered[start:end], Total: total, TotalPages: totalPages, Page: page}
}

// Find returns the stored review with the given ID. The image modal joins
// on review ID plus image index.
func (s *Store) Find(id int64) (models.Review, bool) {
	for _, r := range s.load() {
		if r.ID == id {
			return r, true
		}
	}
	return models.Review{}, false
}

// TotalPages reports the page count for the pager controls.
func (s *Store) TotalPages(filter Filter) int {
	return (len(applyFilter(s.load(), filter)) + PageSize - 1) / PageSize
}

func applyFilter(reviews []models.Review, filter Filter) []models.Review {
	switch filter {
	case FilterRating5, FilterRating4, FilterRating3:
		want := int(filter[0] - '0')
		out := make([]models.Review, 0, len(reviews))
		for _, r := range reviews {
			if r.Rating == want {
				out = append(out, r)
			}
		}
		return out
	case FilterLatest:
		// Insertion order is already newest-first; the explicit re-sort by
		// ID is kept for compatibility with older stored data.
		out := append([]models.Review(nil), reviews...)
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
		return out
	case FilterWithPhotos:
		out := make([]models.Review, 0, len(reviews))
		for _, r := range reviews {
			if len(r.Images) > 0 {
				out = append(out, r)
			}
		}
		return out
	default:
		return reviews
	}
}

var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// formatDate renders the ru-RU long date the storefront always used,
// e.g. "30 августа 2026 г.".
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d г.", t.Day(), ruMonths[t.Month()-1], t.Year())
}
