package gcal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/runoshun/gantt/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// authTimeout bounds how long the browser consent flow may take.
const authTimeout = 5 * time.Minute

// oauthConfig reads the OAuth client secrets from credentialsFile.
func oauthConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read client secret file %s: %w", credentialsFile, err)
	}
	config, err := google.ConfigFromJSON(b, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secret file: %w", err)
	}
	return config, nil
}

// tokenPath returns the configured token file, defaulting to token.json next
// to the credentials file.
func tokenPath(cfg domain.CalendarConfig) string {
	if cfg.TokenFile != "" {
		return cfg.TokenFile
	}
	return filepath.Join(filepath.Dir(cfg.CredentialsFile), "token.json")
}

// HTTPClient returns an authorized client for the Calendar API.
// A cached token is used when present; otherwise the consent URL is written
// to out and a loopback listener waits for the redirect.
func HTTPClient(ctx context.Context, cfg domain.CalendarConfig, out io.Writer) (*http.Client, error) {
	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("%w: credentials_file is empty", domain.ErrCalendarNotConfigured)
	}
	config, err := oauthConfig(cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	path := tokenPath(cfg)
	tok, err := tokenFromFile(path)
	if err != nil {
		tok, err = tokenFromWeb(ctx, config, out)
		if err != nil {
			return nil, fmt.Errorf("authorize calendar access: %w", err)
		}
		if err := saveToken(path, tok); err != nil {
			return nil, err
		}
	}
	return config.Client(ctx, tok), nil
}

// tokenFromWeb runs the authorization code flow against a loopback redirect.
func tokenFromWeb(ctx context.Context, config *oauth2.Config, out io.Writer) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("start redirect listener: %w", err)
	}
	defer func() { _ = listener.Close() }()
	config.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr().String())

	state, err := newState()
	if err != nil {
		return nil, err
	}
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	server := &http.Server{
		Handler:           callbackHandler(state, codeCh, errCh),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			trySend(errCh, fmt.Errorf("redirect server: %w", err))
		}
	}()
	defer func() { _ = server.Shutdown(context.Background()) }()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	_, _ = fmt.Fprintf(out, "Open the following URL in your browser to authorize calendar access:\n%s\n", authURL)

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	select {
	case code := <-codeCh:
		tok, err := config.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("exchange authorization code: %w", err)
		}
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, fmt.Errorf("authorization not completed: %w", ctx.Err())
	}
}

// newState returns an unguessable OAuth state value.
func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// callbackHandler receives the OAuth redirect. Only the first result is
// delivered; repeated redirects (a browser refresh) never block.
func callbackHandler(state string, codeCh chan<- string, errCh chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "authorization code not found", http.StatusBadRequest)
			trySend(errCh, errors.New("authorization code not found in redirect"))
			return
		}
		_, _ = fmt.Fprintln(w, "Authorization complete. You can close this window.")
		trySend(codeCh, code)
	})
}

func trySend[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}

// tokenFromFile reads an oauth2.Token from a JSON file.
func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decode token file %s: %w", path, err)
	}
	return tok, nil
}

// saveToken writes an oauth2.Token to path, readable by the owner only.
func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	content, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
