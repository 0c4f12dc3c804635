package evaluation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// storyTokenLen is how many trailing characters of the story token carry the
// numeric score, e.g. "a81f…0.92" -> "0.92".
const storyTokenLen = 4

var ErrEmptyStory = errors.New("empty story token")

// ScorePercentage reduces an opaque story token to a percentage in [0,100].
// The recommender encodes the score in the trailing characters of the token,
// either as a fraction ("0.92" -> 92) or as a bare percentage ("92" -> 92).
func ScorePercentage(story string) (float64, error) {
	token := strings.TrimSpace(story)
	if token == "" {
		return 0, ErrEmptyStory
	}

	if len(token) > storyTokenLen {
		token = token[len(token)-storyTokenLen:]
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse story token %q: %w", token, err)
	}

	if value <= 1 {
		value *= 100
	}

	return value, nil
}

// ClampPercentage forces a parsed score into [0,100]. Applied at the storage
// boundary so the predictor can assume valid input.
func ClampPercentage(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}

	return value
}
