package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
)

var units = []struct {
	suffix string
	unit   time.Duration
}{
	{"s", time.Second},
	{"m", time.Minute},
	{"h", time.Hour},
	{"d", 24 * time.Hour},
}

// ParseStringTime converts duration strings from the config file, e.g. "10s",
// "5m", "2d". Invalid input logs an error and yields 0.
func ParseStringTime(timeString string) time.Duration {
	timeString = strings.ToLower(timeString)
	for _, u := range units {
		cutString, _, found := strings.Cut(timeString, u.suffix)
		if !found {
			continue
		}
		number, err := strconv.Atoi(cutString)
		if err != nil {
			logger.ErrorF("Error parsing time string: %s", err.Error())
			return 0
		}
		return time.Duration(number) * u.unit
	}
	logger.ErrorF("invalid time format: %s", timeString)
	return 0
}
