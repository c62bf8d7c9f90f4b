package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// parseResolution reads a "<width>x<height>" token into pixel dimensions.
func parseResolution(s string) (int, int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, errors.New("expected <width>x<height>")
	}

	width, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}

	height, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}

	return int(width), int(height), nil
}
