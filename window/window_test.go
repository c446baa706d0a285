package window_test

import (
	"testing"

	"github.com/katalvlaran/algoprep/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaxProfit_Classic covers the original profitable and hopeless series.
func TestMaxProfit_Classic(t *testing.T) {
	p, err := window.MaxProfit([]int{10, 1, 5, 6, 7, 1})
	require.NoError(t, err)
	assert.Equal(t, 6, p, "buy at 1, sell at 7")

	p, err = window.MaxProfit([]int{10, 8, 7, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, p, "strictly falling prices allow no profit")
}

// TestMaxProfit_Degenerate covers single-day and empty series.
func TestMaxProfit_Degenerate(t *testing.T) {
	p, err := window.MaxProfit([]int{5})
	require.NoError(t, err)
	assert.Equal(t, 0, p, "one day allows no transaction")

	_, err = window.MaxProfit(nil)
	assert.ErrorIs(t, err, window.ErrEmptyInput, "empty series must error")
}

// TestMaxSumFixed verifies the rolling sum and its window bounds.
func TestMaxSumFixed(t *testing.T) {
	sum, err := window.MaxSumFixed([]int{2, 1, 5, 1, 3, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, sum, "window [5,1,3]")

	sum, err = window.MaxSumFixed([]int{-2, -1, -3}, 2)
	require.NoError(t, err)
	assert.Equal(t, -3, sum, "all-negative input still has a best window")

	sum, err = window.MaxSumFixed([]int{4}, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, sum, "k equal to length sums the whole slice")
}

// TestMaxSumFixed_BadWindow covers both out-of-range directions.
func TestMaxSumFixed_BadWindow(t *testing.T) {
	_, err := window.MaxSumFixed([]int{1, 2}, 0)
	assert.ErrorIs(t, err, window.ErrBadWindow, "k below 1")

	_, err = window.MaxSumFixed([]int{1, 2}, 3)
	assert.ErrorIs(t, err, window.ErrBadWindow, "k above length")

	_, err = window.MaxSumFixed(nil, 1)
	assert.ErrorIs(t, err, window.ErrBadWindow, "any k exceeds an empty slice")
}

// TestMaxAverageFixed verifies the derived average.
func TestMaxAverageFixed(t *testing.T) {
	avg, err := window.MaxAverageFixed([]int{1, 12, -5, -6, 50, 3}, 4)
	require.NoError(t, err)
	assert.InDelta(t, 12.75, avg, 1e-9, "window [12,-5,-6,50]")
}

// TestLongestUnique covers the canonical strings and unicode input.
func TestLongestUnique(t *testing.T) {
	assert.Equal(t, 3, window.LongestUnique("abcabcbb"), "abc")
	assert.Equal(t, 1, window.LongestUnique("bbbbb"), "single repeated rune")
	assert.Equal(t, 3, window.LongestUnique("pwwkew"), "wke")
	assert.Equal(t, 0, window.LongestUnique(""), "empty string")
	assert.Equal(t, 2, window.LongestUnique("日本日"), "rune-level, not byte-level")
}

// TestMinWindow_Classic checks the canonical covering window.
func TestMinWindow_Classic(t *testing.T) {
	assert.Equal(t, "BANC", window.MinWindow("ADOBECODEBANC", "ABC"))
	assert.Equal(t, "a", window.MinWindow("a", "a"), "window may be the whole string")
}

// TestMinWindow_NoWindow covers impossible and empty requirements.
func TestMinWindow_NoWindow(t *testing.T) {
	assert.Equal(t, "", window.MinWindow("a", "aa"), "multiplicity requirement unmet")
	assert.Equal(t, "", window.MinWindow("xyz", "q"), "required rune absent")
	assert.Equal(t, "", window.MinWindow("abc", ""), "empty requirement yields empty window")
}

// TestMinWindow_Multiplicity ensures repeated required runes are honored.
func TestMinWindow_Multiplicity(t *testing.T) {
	assert.Equal(t, "baca", window.MinWindow("acbbaca", "aba"), "two a's and one b required")
}

// TestContainsPermutation covers hits, misses and degenerate patterns.
func TestContainsPermutation(t *testing.T) {
	assert.True(t, window.ContainsPermutation("eidbaooo", "ab"), "ba occurs")
	assert.False(t, window.ContainsPermutation("eidboaoo", "ab"), "a and b never adjacent")
	assert.True(t, window.ContainsPermutation("anything", ""), "empty pattern always contained")
	assert.False(t, window.ContainsPermutation("ab", "abc"), "pattern longer than s")
	assert.True(t, window.ContainsPermutation("ab", "ab"), "exact-length permutation")
}

// TestMaxSliding_Classic checks the canonical window maxima.
func TestMaxSliding_Classic(t *testing.T) {
	got, err := window.MaxSliding([]int{1, 3, -1, -3, 5, 3, 6, 7}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 5, 5, 6, 7}, got)
}

// TestMaxSliding_Bounds covers k == 1, k == len, and bad windows.
func TestMaxSliding_Bounds(t *testing.T) {
	got, err := window.MaxSliding([]int{4, 2, 9}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 9}, got, "k=1 echoes the input")

	got, err = window.MaxSliding([]int{4, 2, 9}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, got, "k=len yields the global maximum")

	_, err = window.MaxSliding([]int{1}, 2)
	assert.ErrorIs(t, err, window.ErrBadWindow)

	_, err = window.MaxSliding(nil, 1)
	assert.ErrorIs(t, err, window.ErrBadWindow)
}

// TestMaxSliding_Duplicates ensures equal values are handled stably.
func TestMaxSliding_Duplicates(t *testing.T) {
	got, err := window.MaxSliding([]int{2, 2, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, got)
}
