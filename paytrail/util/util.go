package util

import (
	"os"
	"strconv"
)

func DebugEnabled() bool {
	return etb("PAYTRAIL_DEBUG")
}

func HttpTraceEnabled() bool {
	return etb("PAYTRAIL_HTTP_TRACE")
}

func etb(envName string) bool {
	v, ok := os.LookupEnv(envName)
	if !ok {
		return false
	}

	bv, err := strconv.ParseBool(v)

	return err == nil && bv
}

// GetEnvOrDefault returns the variable, or def when it is unset or empty.
func GetEnvOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
