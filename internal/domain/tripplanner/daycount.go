package tripplanner

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

const daysMarker = "days"

// ParseDayCount reads the number written right before the first "days" in the
// trip description, e.g. "Paris for 5 days" yields 5.
func ParseDayCount(input string) (int, error) {
	before, _, found := strings.Cut(input, daysMarker)
	if !found {
		return 0, apperrors.Wrap(apperrors.CodeParse, `trip description must state the length as "<number> days"`, nil)
	}
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return 0, apperrors.Wrap(apperrors.CodeParse, `no day count found before "days"`, nil)
	}
	token := fields[len(fields)-1]
	days, err := strconv.Atoi(token)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeParse, fmt.Sprintf("day count %q is not a number", token), nil)
	}
	if days <= 0 {
		return 0, apperrors.Wrap(apperrors.CodeParse, fmt.Sprintf("day count must be positive, got %d", days), nil)
	}
	return days, nil
}
