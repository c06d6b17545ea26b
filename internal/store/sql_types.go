package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// sqlTime scans timestamps from either engine. SQLite only converts to
// time.Time when the result column carries a declared DATETIME type, which
// RETURNING clauses do not always report, so text values are parsed here.
type sqlTime struct {
	t *time.Time
}

// Scan implements [database/sql.Scanner].
func (s sqlTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s sqlTime) parse(value string) error {
	value = strings.TrimSuffix(value, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", value)
}
