package service

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidDateRange  = errors.New("tournament end date must not be before start date")
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrWinnerNotInMatch  = errors.New("winner is not part of this match")
	ErrMatchNotInEvent   = errors.New("match does not belong to this tournament")
	ErrPaymentsDisabled  = errors.New("payments are not configured")
	ErrUploadsDisabled   = errors.New("image uploads are not configured")
	ErrUnsupportedUpload = errors.New("only image uploads are accepted")
)

// ValidationError is a client-side failure: the request was rejected and nothing was kept.
type ValidationError struct {
	Message string
	Fields  map[string]string
	Err     error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalidField(field string, err error) *ValidationError {
	return &ValidationError{
		Message: "validation failed",
		Fields:  map[string]string{field: err.Error()},
		Err:     err,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
