// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import "strings"

// unknownAuthor is the placeholder every style uses for empty author lists.
const unknownAuthor = "Unknown Author"

// splitName breaks a full name into given-name parts and a family name.
// The last token is the family name; single-token names return nil parts
// and pass through unchanged downstream.
func splitName(name string) (given []string, family string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) <= 1 {
		if len(parts) == 1 {
			return nil, parts[0]
		}
		return nil, ""
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// initials renders given-name parts as spaced initials ("Ashish" → "A.").
func initials(given []string) string {
	out := make([]string, len(given))
	for i, g := range given {
		out[i] = string([]rune(g)[0]) + "."
	}
	return strings.Join(out, " ")
}

// invertName renders "First Middle Last" as "Last, First Middle".
// Single-token names pass through unchanged.
func invertName(name string) string {
	given, family := splitName(name)
	if len(given) == 0 {
		return family
	}
	return family + ", " + strings.Join(given, " ")
}

// lastFirstInitials renders a name as "Last, F. M." (APA).
func lastFirstInitials(name string) string {
	given, family := splitName(name)
	if len(given) == 0 {
		return family
	}
	return family + ", " + initials(given)
}

// initialsLast renders a name as "F. M. Last" (IEEE).
func initialsLast(name string) string {
	given, family := splitName(name)
	if len(given) == 0 {
		return family
	}
	return initials(given) + " " + family
}

// authorsBibTeX joins authors with the literal " and " BibTeX expects.
func authorsBibTeX(authors []string) string {
	if len(authors) == 0 {
		return unknownAuthor
	}
	return strings.Join(authors, " and ")
}

// authorsAPA renders the APA 7th edition author list: up to 20 authors
// in full, beyond that the first 19, an ellipsis, and the last.
func authorsAPA(authors []string) string {
	switch n := len(authors); {
	case n == 0:
		return unknownAuthor
	case n == 1:
		return lastFirstInitials(authors[0])
	case n == 2:
		return lastFirstInitials(authors[0]) + ", & " + lastFirstInitials(authors[1])
	case n <= 20:
		formatted := make([]string, n-1)
		for i, a := range authors[:n-1] {
			formatted[i] = lastFirstInitials(a)
		}
		return strings.Join(formatted, ", ") + ", & " + lastFirstInitials(authors[n-1])
	default:
		first19 := make([]string, 19)
		for i, a := range authors[:19] {
			first19[i] = lastFirstInitials(a)
		}
		return strings.Join(first19, ", ") + ", ... " + lastFirstInitials(authors[n-1])
	}
}

// authorsMLA renders the MLA 9th edition author list: only the first
// author is inverted, and four or more collapse to "et al.".
func authorsMLA(authors []string) string {
	switch len(authors) {
	case 0:
		return unknownAuthor
	case 1:
		return invertName(authors[0])
	case 2:
		return invertName(authors[0]) + ", and " + authors[1]
	case 3:
		return invertName(authors[0]) + ", " + authors[1] + ", and " + authors[2]
	default:
		return invertName(authors[0]) + ", et al."
	}
}

// authorsIEEE renders the IEEE author list with initials-first names
// and an Oxford comma before the final author.
func authorsIEEE(authors []string) string {
	switch n := len(authors); {
	case n == 0:
		return unknownAuthor
	case n == 1:
		return initialsLast(authors[0])
	case n == 2:
		return initialsLast(authors[0]) + " and " + initialsLast(authors[1])
	default:
		formatted := make([]string, n-1)
		for i, a := range authors[:n-1] {
			formatted[i] = initialsLast(a)
		}
		return strings.Join(formatted, ", ") + ", and " + initialsLast(authors[n-1])
	}
}

// authorsChicago renders the Chicago 17th edition author list: first
// author inverted, up to ten listed, beyond that "et al.".
func authorsChicago(authors []string) string {
	switch n := len(authors); {
	case n == 0:
		return unknownAuthor
	case n == 1:
		return invertName(authors[0])
	case n == 2:
		return invertName(authors[0]) + ", and " + authors[1]
	case n == 3:
		return invertName(authors[0]) + ", " + authors[1] + ", and " + authors[2]
	case n <= 10:
		listed := append([]string{invertName(authors[0])}, authors[1:n-1]...)
		return strings.Join(listed, ", ") + ", and " + authors[n-1]
	default:
		return invertName(authors[0]) + ", et al."
	}
}
