//go:build !linux && !darwin

package metadata

import (
	"errors"
	"time"
)

func birthTime(path string) (time.Time, error) {
	return time.Time{}, errors.New("birth time not available on this platform")
}
