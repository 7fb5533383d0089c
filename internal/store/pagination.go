package store

import "gorm.io/gorm"

// Page defaults applied by NormalizePage.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePage clamps page and limit to the values paginated queries use.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// paginate executes a paginated query and returns the page and total count.
func paginate[T any](db *gorm.DB, page, limit int, order string) ([]T, int64, error) {
	page, limit = NormalizePage(page, limit)

	var totalItems int64
	if err := db.Model(new(T)).Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var results []T
	offset := (page - 1) * limit
	if err := db.Order(order).Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, totalItems, nil
}
