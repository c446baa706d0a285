package hashing_test

import (
	"testing"

	"github.com/katalvlaran/algoprep/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHasDuplicate covers the original examples plus other element types.
func TestHasDuplicate(t *testing.T) {
	assert.True(t, hashing.HasDuplicate([]int{1, 2, 3, 3}), "3 repeats")
	assert.False(t, hashing.HasDuplicate([]int{1, 2, 3, 4}), "all distinct")
	assert.False(t, hashing.HasDuplicate[int](nil), "empty input has no duplicate")
	assert.True(t, hashing.HasDuplicate([]string{"a", "b", "a"}), "works for strings")
}

// TestTwoSum_Found verifies indices and the earliest-pair guarantee.
func TestTwoSum_Found(t *testing.T) {
	i, j, err := hashing.TwoSum([]int{3, 4, 5, 6}, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, i, "first element of the pair")
	assert.Equal(t, 1, j, "second element of the pair")
}

// TestTwoSum_EqualValues ensures equal values at distinct indices pair,
// but an element never pairs with itself.
func TestTwoSum_EqualValues(t *testing.T) {
	i, j, err := hashing.TwoSum([]int{5, 5}, 10)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j}, "two fives make ten")

	_, _, err = hashing.TwoSum([]int{5, 1}, 10)
	assert.ErrorIs(t, err, hashing.ErrNoPair, "a single five must not pair with itself")
}

// TestTwoSum_NotFound verifies the ErrNoPair sentinel.
func TestTwoSum_NotFound(t *testing.T) {
	_, _, err := hashing.TwoSum([]int{1, 2, 3}, 100)
	assert.ErrorIs(t, err, hashing.ErrNoPair)

	_, _, err = hashing.TwoSum(nil, 0)
	assert.ErrorIs(t, err, hashing.ErrNoPair, "empty input has no pair")
}

// TestIsAnagram covers multiplicity, unicode, and the empty string.
func TestIsAnagram(t *testing.T) {
	assert.True(t, hashing.IsAnagram("listen", "silent"))
	assert.False(t, hashing.IsAnagram("aab", "abb"), "multiplicities differ")
	assert.False(t, hashing.IsAnagram("ab", "abc"), "lengths differ")
	assert.True(t, hashing.IsAnagram("", ""), "two empty strings")
	assert.True(t, hashing.IsAnagram("héllo", "olléh"), "non-ASCII runes count as units")
}

// TestGroupAnagrams_Classic checks grouping and first-seen ordering.
func TestGroupAnagrams_Classic(t *testing.T) {
	got := hashing.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
	assert.Equal(t, [][]string{
		{"eat", "tea", "ate"},
		{"tan", "nat"},
		{"bat"},
	}, got, "groups in first-member order, members in input order")
}

// TestGroupAnagrams_Degenerate covers empty input and duplicate words.
func TestGroupAnagrams_Degenerate(t *testing.T) {
	assert.Empty(t, hashing.GroupAnagrams(nil), "no words, no groups")
	assert.Equal(t, [][]string{{""}}, hashing.GroupAnagrams([]string{""}), "empty word forms its own group")
	assert.Equal(t, [][]string{{"go", "go"}}, hashing.GroupAnagrams([]string{"go", "go"}),
		"duplicates stay duplicated")
}

// TestTopKFrequent_Basic checks ordering by frequency then value.
func TestTopKFrequent_Basic(t *testing.T) {
	got, err := hashing.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got, "most frequent first")

	got, err = hashing.TopKFrequent([]int{4, 4, 7, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 7}, got, "equal counts break toward the smaller value")
}

// TestTopKFrequent_WholeSpectrum asks for every distinct value.
func TestTopKFrequent_WholeSpectrum(t *testing.T) {
	got, err := hashing.TopKFrequent([]int{5, 5, 5, 9, 9, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 9, 2}, got, "full ranking by frequency")
}

// TestTopKFrequent_BadK covers both out-of-range directions.
func TestTopKFrequent_BadK(t *testing.T) {
	_, err := hashing.TopKFrequent([]int{1, 2}, 0)
	assert.ErrorIs(t, err, hashing.ErrBadK, "k below 1")

	_, err = hashing.TopKFrequent([]int{1, 1}, 2)
	assert.ErrorIs(t, err, hashing.ErrBadK, "k above distinct-value count")

	_, err = hashing.TopKFrequent(nil, 1)
	assert.ErrorIs(t, err, hashing.ErrBadK, "empty input has no values to rank")
}

// TestFrequencies verifies the generic counter.
func TestFrequencies(t *testing.T) {
	got := hashing.Frequencies([]string{"a", "b", "a"})
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, got)
	assert.Empty(t, hashing.Frequencies[int](nil), "empty input counts nothing")
}

// TestLongestConsecutive covers the classic case, duplicates, and gaps.
func TestLongestConsecutive(t *testing.T) {
	assert.Equal(t, 4, hashing.LongestConsecutive([]int{100, 4, 200, 1, 3, 2}), "run 1..4")
	assert.Equal(t, 9, hashing.LongestConsecutive([]int{0, 3, 7, 2, 5, 8, 4, 6, 0, 1}), "run 0..8 with a duplicate")
	assert.Equal(t, 0, hashing.LongestConsecutive(nil), "empty input")
	assert.Equal(t, 1, hashing.LongestConsecutive([]int{42}), "lone value is a run of one")
}

// TestCountSubarraysWithSum covers positives, negatives and zero targets.
func TestCountSubarraysWithSum(t *testing.T) {
	assert.Equal(t, 2, hashing.CountSubarraysWithSum([]int{1, 1, 1}, 2), "two windows of two ones")
	assert.Equal(t, 2, hashing.CountSubarraysWithSum([]int{1, 2, 3}, 3), "[1,2] and [3]")
	assert.Equal(t, 4, hashing.CountSubarraysWithSum([]int{1, -1, 1, -1}, 0),
		"negative values make non-window subarrays")
	assert.Equal(t, 0, hashing.CountSubarraysWithSum(nil, 5), "empty input has no subarrays")
	assert.Equal(t, 1, hashing.CountSubarraysWithSum([]int{5}, 5), "whole slice is the only hit")
}
