package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"mutual-availability/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gcalendar.Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		ts.Close()
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts.Close
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("List Busy E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/freeBusy" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"calendars": {
						"primary": {
							"busy": [
								{"start": "2024-05-06T09:00:00Z", "end": "2024-05-06T10:30:00Z"},
								{"start": "2024-05-06T13:00:00Z", "end": "2024-05-06T14:00:00Z"}
							]
						}
					}
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		periods, err := client.ListBusy(context.Background(), gcalendar.ListBusyRequest{
			TimeMin: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
			TimeMax: time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to list busy periods: %v", err)
		}
		if len(periods) != 2 {
			t.Fatalf("expected 2 busy periods, got %d", len(periods))
		}
		if periods[0].CalendarID != "primary" {
			t.Errorf("unexpected calendar id: %s", periods[0].CalendarID)
		}
	})

	t.Run("List Busy Calendar Error", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"calendars": {
					"primary": {
						"errors": [{"domain": "global", "reason": "notFound"}]
					}
				}
			}`))
		})
		defer closeFn()

		_, err := client.ListBusy(context.Background(), gcalendar.ListBusyRequest{
			TimeMin: time.Now(),
			TimeMax: time.Now().Add(24 * time.Hour),
		})
		if err == nil {
			t.Fatalf("expected per-calendar error to surface")
		}
	})

	t.Run("Insert Event E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})
		defer closeFn()

		event, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{
			CalendarID:  "primary",
			Summary:     "Title",
			Description: "Desc",
			StartTime:   time.Now(),
			EndTime:     time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to insert event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
	})

	t.Run("Insert Event Error E2E", func(t *testing.T) {
		client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer closeFn()

		_, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{
			CalendarID: "primary",
		})
		if err == nil {
			t.Fatalf("expected insert event error")
		}
	})
}
