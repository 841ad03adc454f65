package utils

import (
	"database/sql"
	"errors"
)

// IsSQLNoRowsError reports whether err is a no-rows lookup result.
func IsSQLNoRowsError(err error) bool {
	return err != nil && errors.Is(err, sql.ErrNoRows)
}
