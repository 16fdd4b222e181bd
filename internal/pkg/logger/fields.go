package logger

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field is an alias so callers build fields without importing zap
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

func Uint64(key string, val uint64) Field {
	return zap.Uint64(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// UUID renders an identifier in its canonical string form
func UUID(key string, id uuid.UUID) Field {
	return zap.String(key, id.String())
}

// RouteID is the field attached to every log line about a route
func RouteID(id uuid.UUID) Field {
	return UUID("route_id", id)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}
