package twopointers

import "unicode"

// IsPalindrome reports whether s reads the same forward and backward,
// ignoring case and every non-alphanumeric rune. The empty string (and
// any string with no alphanumerics) is a palindrome.
//
// Algorithm Outline:
//  1. Place one pointer at each end of the string.
//  2. Advance past non-alphanumeric runes on either side.
//  3. Compare the folded runes; mismatch means not a palindrome.
//  4. Move both pointers inward until they cross.
//
// Time Complexity: O(n), Memory: O(1).
func IsPalindrome(s string) bool {
	runes := []rune(s)
	front, back := 0, len(runes)-1
	for front < back {
		if !isAlphanumeric(runes[front]) {
			front++

			continue
		}
		if !isAlphanumeric(runes[back]) {
			back--

			continue
		}
		if unicode.ToLower(runes[front]) != unicode.ToLower(runes[back]) {
			return false
		}
		front++
		back--
	}

	return true
}

// isAlphanumeric reports whether r is a letter or a digit.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
