package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// argID parses args[i] as a positive id.
func argID(args []string, i int) (int64, error) {
	if i >= len(args) {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errUsage, args[i])
	}
	return id, nil
}

// argInt parses args[i] as an int, returning def when absent.
func argInt(args []string, i int, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", errUsage, args[i])
	}
	return n, nil
}

// argRest joins args[i:] with spaces.
func argRest(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return strings.Join(args[i:], " ")
}

// statusAndPage reads the optional "[status] [page]" pair in either order.
func statusAndPage(args []string) (string, int, error) {
	var status string
	page := 1
	for _, a := range args {
		if n, err := strconv.Atoi(a); err == nil {
			page = n
			continue
		}
		if status != "" {
			return "", 0, errUsage
		}
		status = a
	}
	return status, page, nil
}
