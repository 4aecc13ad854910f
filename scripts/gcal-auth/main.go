// One-time OAuth bootstrap for the Google Calendar gateway.
//
// The availability service authenticates with a stored OAuth token; this tool
// runs the interactive consent flow once and writes that token file. Point
// google_calendar.credentials_path and google_calendar.token_path in
// config.yaml at the same files.
//
//	go run scripts/gcal-auth/main.go -credentials google-credentials.json -token token.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	tokenPath := flag.String("token", "token.json", "where to write the granted token")
	flag.Parse()

	if err := run(*credsPath, *tokenPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(credsPath, tokenPath string) error {
	creds, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}

	// CalendarScope, not readonly: the service both reads FreeBusy and
	// creates events.
	cfg, err := google.ConfigFromJSON(creds, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parse credentials %q (expected an OAuth desktop-app file): %w", credsPath, err)
	}

	tok, err := consent(cfg)
	if err != nil {
		return err
	}

	if err := writeToken(tokenPath, tok); err != nil {
		return err
	}
	fmt.Printf("\nToken written to %s. Restart the API server to pick it up.\n", tokenPath)
	return nil
}

func consent(cfg *oauth2.Config) (*oauth2.Token, error) {
	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Visit this URL, grant access, then paste the code below:\n\n%s\n\ncode: ", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

func writeToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create token file %q: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write token file %q: %w", path, err)
	}
	return nil
}
