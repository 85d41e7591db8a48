package citation

import (
	"fmt"
	"strings"
	"testing"
)

// manyAuthors builds n synthetic names "Given1 Family1", "Given2 Family2", ...
func manyAuthors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Given%d Family%d", i+1, i+1)
	}
	return out
}

func TestAuthorsBibTeX(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"empty", nil, "Unknown Author"},
		{"one", []string{"Ashish Vaswani"}, "Ashish Vaswani"},
		{"two", []string{"Ashish Vaswani", "Noam Shazeer"}, "Ashish Vaswani and Noam Shazeer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorsBibTeX(tt.authors); got != tt.want {
				t.Errorf("authorsBibTeX = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorsAPA(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"empty", nil, "Unknown Author"},
		{"one", []string{"Ashish Vaswani"}, "Vaswani, A."},
		{"two", []string{"Ashish Vaswani", "Noam Shazeer"}, "Vaswani, A., & Shazeer, N."},
		{"three", []string{"A B", "C D", "E F"}, "B, A., D, C., & F, E."},
		{"middle name", []string{"John Ronald Tolkien"}, "Tolkien, J. R."},
		{"mononym", []string{"Aristotle"}, "Aristotle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorsAPA(tt.authors); got != tt.want {
				t.Errorf("authorsAPA = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorsAPAOverTwenty(t *testing.T) {
	got := authorsAPA(manyAuthors(25))
	if !strings.Contains(got, ", ... Family25, G.") {
		t.Errorf("25-author APA should elide to first 19 plus last, got %q", got)
	}
	if strings.Contains(got, "Family20") {
		t.Errorf("author 20 should be elided, got %q", got)
	}
	if !strings.HasPrefix(got, "Family1, G., Family2, G.") {
		t.Errorf("25-author APA prefix = %q", got)
	}
}

func TestAuthorsMLA(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"empty", nil, "Unknown Author"},
		{"one", []string{"Ashish Vaswani"}, "Vaswani, Ashish"},
		{"two", []string{"Ashish Vaswani", "Noam Shazeer"}, "Vaswani, Ashish, and Noam Shazeer"},
		{"three", []string{"A B", "C D", "E F"}, "B, A, C D, and E F"},
		{"four", manyAuthors(4), "Family1, Given1, et al."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorsMLA(tt.authors); got != tt.want {
				t.Errorf("authorsMLA = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorsIEEE(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"empty", nil, "Unknown Author"},
		{"one", []string{"Ashish Vaswani"}, "A. Vaswani"},
		{"two", []string{"Ashish Vaswani", "Noam Shazeer"}, "A. Vaswani and N. Shazeer"},
		{"three", []string{"A B", "C D", "E F"}, "A. B, C. D, and E. F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorsIEEE(tt.authors); got != tt.want {
				t.Errorf("authorsIEEE = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorsChicago(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"empty", nil, "Unknown Author"},
		{"one", []string{"Ashish Vaswani"}, "Vaswani, Ashish"},
		{"two", []string{"Ashish Vaswani", "Noam Shazeer"}, "Vaswani, Ashish, and Noam Shazeer"},
		{"three", []string{"A B", "C D", "E F"}, "B, A, C D, and E F"},
		{"ten", manyAuthors(10), "Family1, Given1, Given2 Family2, Given3 Family3, Given4 Family4, Given5 Family5, Given6 Family6, Given7 Family7, Given8 Family8, Given9 Family9, and Given10 Family10"},
		{"eleven", manyAuthors(11), "Family1, Given1, et al."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorsChicago(tt.authors); got != tt.want {
				t.Errorf("authorsChicago = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in     string
		given  []string
		family string
	}{
		{"Ashish Vaswani", []string{"Ashish"}, "Vaswani"},
		{"John Ronald Tolkien", []string{"John", "Ronald"}, "Tolkien"},
		{"Aristotle", nil, "Aristotle"},
		{"  padded name  ", []string{"padded"}, "name"},
		{"", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			given, family := splitName(tt.in)
			if family != tt.family {
				t.Errorf("splitName(%q) family = %q, want %q", tt.in, family, tt.family)
			}
			if len(given) != len(tt.given) {
				t.Fatalf("splitName(%q) given = %v, want %v", tt.in, given, tt.given)
			}
			for i := range given {
				if given[i] != tt.given[i] {
					t.Errorf("splitName(%q) given[%d] = %q, want %q", tt.in, i, given[i], tt.given[i])
				}
			}
		})
	}
}
