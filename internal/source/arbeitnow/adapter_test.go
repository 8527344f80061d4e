package arbeitnow

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	collyfetcher "github.com/recruitscout/recruitscout/internal/fetcher/colly"
	"github.com/recruitscout/recruitscout/internal/jobs"
)

type fakeClient struct {
	resp collyfetcher.Response
	err  error
	url  string
}

func (f *fakeClient) Fetch(_ context.Context, url string) (collyfetcher.Response, error) {
	f.url = url
	return f.resp, f.err
}

func TestAdapter_Fetch_NormalizesRecords(t *testing.T) {
	t.Parallel()

	body := `{"data":[
		{"title":"Senior Backend Engineer","company_name":"Acme GmbH","created_at":"2026-08-12T09:30:00"},
		{"title":"Office Dog","company":"Globex","created_at":""},
		{"company_name":"Hooli"}
	]}`
	client := &fakeClient{resp: collyfetcher.Response{StatusCode: http.StatusOK, Body: []byte(body)}}
	a := New(Config{URL: "https://example.test/api"}, client, nil)

	got := a.Fetch(context.Background())
	require.Equal(t, "https://example.test/api", client.url)
	require.Len(t, got, 3)

	require.Equal(t, jobs.Record{
		Title:      "Senior Backend Engineer",
		Company:    "Acme GmbH",
		Category:   "Engineering/Software",
		DatePosted: "2026-08-12",
		Status:     jobs.StatusActive,
		Website:    Website,
	}, got[0])

	// Fallback company field and missing timestamp.
	require.Equal(t, "Globex", got[1].Company)
	require.Equal(t, "N/A", got[1].DatePosted)

	// Missing title and company name fallback chain.
	require.Equal(t, "N/A", got[2].Title)
	require.Equal(t, "Hooli", got[2].Company)
}

func TestAdapter_Fetch_NonOKStatus(t *testing.T) {
	t.Parallel()

	client := &fakeClient{resp: collyfetcher.Response{StatusCode: http.StatusBadGateway}}
	a := New(Config{}, client, nil)
	require.Empty(t, a.Fetch(context.Background()))
}

func TestAdapter_Fetch_NetworkError(t *testing.T) {
	t.Parallel()

	client := &fakeClient{err: errors.New("connection refused")}
	a := New(Config{}, client, nil)
	require.Empty(t, a.Fetch(context.Background()))
}

func TestAdapter_Fetch_MalformedJSON(t *testing.T) {
	t.Parallel()

	client := &fakeClient{resp: collyfetcher.Response{StatusCode: http.StatusOK, Body: []byte("{nope")}}
	a := New(Config{}, client, nil)
	require.Empty(t, a.Fetch(context.Background()))
}

func TestAdapter_DefaultURL(t *testing.T) {
	t.Parallel()

	client := &fakeClient{resp: collyfetcher.Response{StatusCode: http.StatusOK, Body: []byte(`{"data":[]}`)}}
	a := New(Config{}, client, nil)
	a.Fetch(context.Background())
	require.Equal(t, DefaultURL, client.url)
	require.Equal(t, jobs.SourceArbeitnow, a.ID())
}
