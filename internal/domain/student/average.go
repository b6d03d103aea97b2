package student

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidGrade signals a grade that is not a base-10 integer.
var ErrInvalidGrade = errors.New("invalid grade")

// NoGrades is the average reported for a record without grades.
const NoGrades = -1

const averageDecimals = 3

// Average returns the mean grade rounded half-up to three decimal places.
// The mean is salted by one machine epsilon before rounding so that values such
// as 1.0005 (stored as 1.000499...) round up.
func Average(grades []string) (float64, error) {
	if len(grades) == 0 {
		return NoGrades, nil
	}

	sum := 0
	for _, g := range grades {
		v, err := strconv.Atoi(g)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, g)
		}
		sum += v
	}

	avg := float64(sum) / float64(len(grades))
	pow10 := math.Pow10(averageDecimals)
	salted := avg * pow10 * (1 + epsilon)
	return math.Floor(salted+0.5) / pow10, nil
}

// epsilon is the difference between 1 and the next representable float64.
var epsilon = math.Nextafter(1, 2) - 1
