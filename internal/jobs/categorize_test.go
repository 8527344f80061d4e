package jobs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategorize_MatchesKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Senior Backend Engineer", "Engineering/Software"},
		{"Full Stack Developer (m/f/d)", "Engineering/Software"},
		{"Data Scientist - ML Platform", "Data/Analytics"},
		{"Product Manager", "Product/Design"},
		{"Site Reliability Engineer", "Engineering/Software"},
		{"DevOps Specialist", "DevOps/Infrastructure"},
		{"Recepcionista de hotel", "Hospitality/Tourism"},
		{"Volontario per la community", "Social/NGO"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Categorize(tc.title), "title %q", tc.title)
	}
}

func TestCategorize_PriorityOrder(t *testing.T) {
	t.Parallel()

	// "vp" is checked under Management/Leadership before Marketing/Sales
	// ever sees "sales"; the declared order is the tie-break.
	require.Equal(t, "Management/Leadership", Categorize("VP of Sales"))
	require.Equal(t, "Management/Leadership", Categorize("Team Lead, Logistics"))
	// "engineer" beats the Management keywords because Engineering/Software
	// is declared first.
	require.Equal(t, "Engineering/Software", Categorize("Lead Software Engineer"))
}

func TestCategorize_NoMatch(t *testing.T) {
	t.Parallel()

	require.Equal(t, CategoryOther, Categorize("Random Job Title Xyz"))
	require.Equal(t, CategoryOther, Categorize(""))
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	t.Parallel()

	require.Equal(t, Categorize("BACKEND ENGINEER"), Categorize("backend engineer"))
}

func TestCategorize_Deterministic(t *testing.T) {
	t.Parallel()

	first := Categorize("Frontend Developer at Globex")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Categorize("Frontend Developer at Globex"))
	}
}
