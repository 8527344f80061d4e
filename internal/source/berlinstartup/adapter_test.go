package berlinstartup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/recruitscout/recruitscout/internal/jobs"
)

type fakeRenderer struct {
	html string
	err  error
}

func (f *fakeRenderer) Render(context.Context, string) (string, error) {
	return f.html, f.err
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestAdapter_Fetch_ExtractsCards(t *testing.T) {
	t.Parallel()

	html := `
		<div class="bjs-jlist">
			<div class="bjs-jlid__meta">
				<h4>Senior Backend Engineer</h4>
				<span>Full-time</span>
				<a>Acme GmbH</a>
			</div>
			<div class="bjs-jlid__meta">
				<h4>Frontend Developer at Globex Inc.</h4>
			</div>
			<div class="bjs-jlid__meta"><span>no heading here</span></div>
		</div>`
	clock := fixedClock{now: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}
	a := New(Config{}, &fakeRenderer{html: html}, clock, nil)

	got := a.Fetch(context.Background())
	require.Len(t, got, 2)

	require.Equal(t, jobs.Record{
		Title:      "Senior Backend Engineer",
		Company:    "Acme GmbH",
		Category:   "Engineering/Software",
		DatePosted: "2026-08-30",
		Status:     jobs.StatusActive,
		Website:    Website,
	}, got[0])

	// No pipe candidate survives, so the "at <Company>" tier applies.
	require.Equal(t, "Globex Inc", got[1].Company)
}

func TestAdapter_Fetch_StopsAtCap(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&b, `<div class="bjs-jlid__meta"><h4>Engineer %d</h4><span>Acme</span></div>`, i)
	}
	a := New(Config{}, &fakeRenderer{html: b.String()}, fixedClock{now: time.Now()}, nil)
	require.Len(t, a.Fetch(context.Background()), DefaultCap)
}

func TestAdapter_Fetch_RenderFailure(t *testing.T) {
	t.Parallel()

	a := New(Config{}, &fakeRenderer{err: errors.New("navigation timeout")}, fixedClock{now: time.Now()}, nil)
	require.Empty(t, a.Fetch(context.Background()))
}

func TestAdapter_ID(t *testing.T) {
	t.Parallel()

	a := New(Config{}, &fakeRenderer{}, fixedClock{now: time.Now()}, nil)
	require.Equal(t, jobs.SourceBerlinStartupJobs, a.ID())
}
