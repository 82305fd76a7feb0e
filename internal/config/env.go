package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// env reads typed settings from the process environment. Unset keys fall
// back to their default; a value that does not parse is collected as an error.
type env struct {
	errs []error
}

func (e *env) fail(key, value, kind string, err error) {
	e.errs = append(e.errs, fmt.Errorf("%s=%q is not a valid %s: %w", key, value, kind, err))
}

func (e *env) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *env) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		e.fail(key, v, "integer", err)
		return def
	}
	return n
}

func (e *env) bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		e.fail(key, v, "boolean", err)
		return def
	}
	return b
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		e.fail(key, v, "duration", err)
		return def
	}
	return d
}

func (e *env) decimal(key string, def decimal.Decimal) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		e.fail(key, v, "decimal", err)
		return def
	}
	return d
}

// list splits a comma separated value, dropping empty items
func (e *env) list(key string, def []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// pairs reads "Groceries=#10B981,Dining=#F59E0B". Pairs without a name or a
// value are skipped.
func (e *env) pairs(key string) map[string]string {
	out := make(map[string]string)
	for _, item := range e.list(key, nil) {
		name, value, ok := strings.Cut(item, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if ok && name != "" && value != "" {
			out[name] = value
		}
	}
	return out
}
