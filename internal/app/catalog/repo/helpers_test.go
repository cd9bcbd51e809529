package repo

import (
	"time"

	"cloud.google.com/go/spanner"
)

func nullInt64(v int64, valid bool) spanner.NullInt64 {
	return spanner.NullInt64{Int64: v, Valid: valid}
}

func spannerNullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: true}
}

func spannerNullTime(t time.Time) spanner.NullTime {
	return spanner.NullTime{Time: t, Valid: true}
}
