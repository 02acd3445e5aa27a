package utils

import (
	"strconv"
)

// StringToInt converts string to int, returns 0 on error.
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// PageParam parses a 1-based page query parameter, defaulting to 1.
func PageParam(s string) int {
	if n := StringToInt(s); n > 0 {
		return n
	}
	return 1
}
