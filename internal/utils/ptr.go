package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func Ptr[T any](v T) *T {
	return &v
}

// OrZero dereferences v, giving the zero value for nil.
func OrZero[T comparable](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// StringOrNil trims s and returns nil when nothing is left.
func StringOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseID reads a positive row ID such as a URL path segment.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}
