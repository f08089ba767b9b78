package timesheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const entriesPayload = `[
  {
    "EmployeeName": "Alice",
    "StartTimeUtc": "2024-03-11T09:00:00Z",
    "EndTimeUtc": "2024-03-11T17:00:00Z",
    "EntryNotes": "release prep",
    "DeletedOn": null
  },
  {
    "EmployeeName": "Bob",
    "StartTimeUtc": "2024-03-11T09:00:00Z",
    "EndTimeUtc": "2024-03-11T13:00:00Z",
    "EntryNotes": "",
    "DeletedOn": "2024-03-12T08:00:00Z"
  }
]`

func TestFetchEntries(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("code")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(entriesPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")
	entries, err := client.FetchEntries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "secret-token", gotToken)
	require.Len(t, entries, 2)

	assert.Equal(t, "Alice", entries[0].EmployeeName)
	assert.Equal(t, 8.0, entries[0].Hours())
	assert.False(t, entries[0].Deleted())

	assert.Equal(t, "Bob", entries[1].EmployeeName)
	assert.True(t, entries[1].Deleted())
}

func TestFetchEntriesOmitsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("code"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	entries, err := client.FetchEntries(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchEntriesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token")
	_, err := client.FetchEntries(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchEntriesMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token")
	_, err := client.FetchEntries(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchEntriesContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(srv.URL, "token")
	_, err := client.FetchEntries(ctx)

	require.Error(t, err)
}
