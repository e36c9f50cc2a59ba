package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const threshold = 75

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0), "no held classes is 0% by definition")
	assert.Equal(t, 100.0, Percentage(10, 10))
	assert.Equal(t, 75.0, Percentage(30, 40))
	assert.Equal(t, 50.0, Percentage(20, 40))

	// One decimal place.
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
}

func TestIsSafe(t *testing.T) {
	assert.False(t, IsSafe(0, 0, threshold), "no held classes is never safe")
	assert.False(t, IsSafe(0, 0, 0), "not even at threshold 0")

	// Exactly at the threshold counts as safe.
	assert.True(t, IsSafe(30, 40, threshold))
	assert.True(t, IsSafe(3, 4, threshold))

	assert.False(t, IsSafe(20, 40, threshold))
	assert.False(t, IsSafe(29, 40, threshold))
	assert.True(t, IsSafe(31, 40, threshold))

	// Threshold 0 is met by any subject with held classes.
	assert.True(t, IsSafe(0, 10, 0))
}

func TestClassesToAttend(t *testing.T) {
	// 20/40 at 75%: (20+n)/(40+n) >= 0.75 first holds at n = 40.
	assert.Equal(t, 40, ClassesToAttend(20, 40, threshold))
	// Sanity check either side of that minimum.
	assert.False(t, IsSafe(20+39, 40+39, threshold))
	assert.True(t, IsSafe(20+40, 40+40, threshold))

	assert.Equal(t, 2, ClassesToAttend(1, 2, threshold))

	// Already safe, or nothing held yet: nothing to report.
	assert.Equal(t, 0, ClassesToAttend(30, 40, threshold))
	assert.Equal(t, 0, ClassesToAttend(0, 0, threshold))

	// A 100% threshold can never be regained once a class is missed.
	assert.Equal(t, 0, ClassesToAttend(5, 6, 100))
}

func TestClassesBunkable(t *testing.T) {
	// 30/40 sits exactly at 75%: one missed class drops below, so zero slack.
	assert.Equal(t, 0, ClassesBunkable(30, 40, threshold))

	// 9/10: 9/12 = 75% still safe, 9/13 is not.
	assert.Equal(t, 2, ClassesBunkable(9, 10, threshold))
	assert.True(t, IsSafe(9, 10+2, threshold))
	assert.False(t, IsSafe(9, 10+3, threshold))

	// Unsafe subjects have nothing to bunk.
	assert.Equal(t, 0, ClassesBunkable(20, 40, threshold))
	assert.Equal(t, 0, ClassesBunkable(0, 0, threshold))

	// Threshold 0 would be unbounded; reported as 0.
	assert.Equal(t, 0, ClassesBunkable(5, 10, 0))
}
