// Package id formats verification and posting-row identifiers.
//
// A verification is numbered per month ("2025-01-001"); its rows carry a
// letter suffix: a..z, then aa, ab, ... for verifications with more than
// 26 rows, as SIE imports of payroll runs often have.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Verification returns an ID like "2025-01-001".
func Verification(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// Row returns the ID of row n (0-based) of a verification.
func Row(verificationID string, n int) string {
	return verificationID + suffix(n)
}

// suffix is bijective base-26: 0=a, 25=z, 26=aa, 27=ab, 701=zz, 702=aaa.
func suffix(n int) string {
	var b []byte
	for n++; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('a' + (n-1)%26)}, b...)
	}
	return string(b)
}

// Parse splits "2025-01-001" (with or without row suffix) into its parts.
func Parse(s string) (year, month, seq int, err error) {
	parts := strings.SplitN(Of(s), "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid verification ID format: %q", s)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in verification ID %q: %w", s, err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("invalid month in verification ID %q", s)
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in verification ID %q: %w", s, err)
	}
	return year, month, seq, nil
}

// Of strips the row suffix: "2025-01-001ab" -> "2025-01-001".
func Of(rowID string) string {
	i := len(rowID)
	for i > 0 && rowID[i-1] >= 'a' && rowID[i-1] <= 'z' {
		i--
	}
	return rowID[:i]
}
