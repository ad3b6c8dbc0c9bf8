// Package lcsre finds the longest repeated non-overlapping substring of
// a string (Longest Common Substring with Repetition Exclusion).
//
// Its intended input is a CSD digit string: a repeated digit pattern
// marks a partial product that two parts of a multiplier can share, so
// the finder is the first step of common-subexpression extraction over
// encoder output. It works on arbitrary strings all the same.
//
// The algorithm is the classic suffix-pair dynamic program: for every
// index pair (i, j), i < j, table[i][j] holds the length of the common
// suffix ending at i-1 and j-1, admitted only while that length stays
// below j-i so the two occurrences cannot overlap. Time and space are
// O(n²), which is fine at CSD-string lengths (tens of digits).
package lcsre

// LongestRepeatedSubstring returns the longest substring of s that
// occurs at least twice without the occurrences overlapping, or "" when
// there is none. When several substrings share the maximal length the
// one whose first occurrence ends rightmost wins; this tie-break is part
// of the contract.
//
//	LongestRepeatedSubstring("+-00+-00+-00+-0") = "+-00+-0"
//	LongestRepeatedSubstring("aaaa")            = "aa"
func LongestRepeatedSubstring(s string) string {
	n := len(s)
	if n < 2 {
		return ""
	}

	// Flat (n+1)×(n+1) suffix-length table; row i is table[i*(n+1):].
	table := make([]int, (n+1)*(n+1))
	row := n + 1

	length := 0
	index := 0
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			// j-i > table[i-1][j-1] keeps the occurrences disjoint.
			if s[i-1] == s[j-1] && table[(i-1)*row+j-1] < j-i {
				v := table[(i-1)*row+j-1] + 1
				table[i*row+j] = v
				if v > length {
					length = v
					if i > index {
						index = i
					}
				}
			}
		}
	}

	if length == 0 {
		return ""
	}
	return s[index-length : index]
}
