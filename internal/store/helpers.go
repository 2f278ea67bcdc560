package store

import (
	"database/sql"
	"fmt"
)

func affected(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rows > 0, nil
}
