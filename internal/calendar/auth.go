package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

const (
	// CredentialsFile is the OAuth client downloaded from the Google console
	CredentialsFile = "credentials.json"
	// TokenFile holds the user's access and refresh token
	TokenFile = "token.json"

	// CallbackPort is where Login listens for the OAuth redirect
	CallbackPort = "6789"
	callbackPath = "/oauth2callback"

	loginTimeout = 5 * time.Minute
)

// Scopes requested for reminder events
var Scopes = []string{
	gcal.CalendarEventsScope,
	gcal.CalendarReadonlyScope,
}

// Auth manages the OAuth client and the cached token under one directory
type Auth struct {
	dir    string
	logger *zap.Logger
}

// NewAuth reads credentials and tokens from dir
func NewAuth(dir string, logger *zap.Logger) *Auth {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auth{dir: dir, logger: logger}
}

// TokenPath is where the token is cached
func (a *Auth) TokenPath() string {
	return filepath.Join(a.dir, TokenFile)
}

// CredentialsPath is where the OAuth client file is expected
func (a *Auth) CredentialsPath() string {
	return filepath.Join(a.dir, CredentialsFile)
}

// Config builds the OAuth config from the credentials file. Localhost and
// out-of-band redirects are rewritten to the local callback.
func (a *Auth) Config() (*oauth2.Config, error) {
	b, err := os.ReadFile(a.CredentialsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: no credentials at %s", ErrAccessDenied, a.CredentialsPath())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	config, err := google.ConfigFromJSON(b, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	config.RedirectURL = a.redirectURL(config.RedirectURL)
	return config, nil
}

func (a *Auth) redirectURL(configured string) string {
	callback := "http://localhost:" + CallbackPort + callbackPath

	if configured == "" || configured == "urn:ietf:wg:oauth:2.0:oob" {
		return callback
	}

	u, err := url.Parse(configured)
	if err != nil {
		a.logger.Warn("unparsable redirect url, using it as is", zap.String("url", configured), zap.Error(err))
		return configured
	}
	if u.Hostname() == "localhost" || u.Hostname() == "127.0.0.1" {
		u.Host = net.JoinHostPort(u.Hostname(), CallbackPort)
		if u.Path == "" || u.Path == "/" {
			u.Path = callbackPath
		}
		return u.String()
	}

	a.logger.Warn("redirect url is not a local callback", zap.String("url", configured))
	return configured
}

// Client returns an HTTP client authorized with the cached token. A
// missing token or credentials file yields ErrAccessDenied.
func (a *Auth) Client(ctx context.Context) (*http.Client, error) {
	config, err := a.Config()
	if err != nil {
		return nil, err
	}

	tok, err := tokenFromFile(a.TokenPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: run 'prodo calendar login' first", ErrAccessDenied)
	}
	if err != nil {
		return nil, err
	}

	src := &savingTokenSource{
		base:   config.TokenSource(ctx, tok),
		path:   a.TokenPath(),
		last:   tok,
		logger: a.logger,
	}
	return oauth2.NewClient(ctx, src), nil
}

// Login runs the browser authorization flow and caches the token. The
// authorization URL is written to out.
func (a *Auth) Login(ctx context.Context, out io.Writer) error {
	config, err := a.Config()
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", "127.0.0.1:"+CallbackPort)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", CallbackPort, err)
	}

	state := uuid.NewString()
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "authorization code not found", http.StatusBadRequest)
			select {
			case errCh <- errors.New("authorization code not found in redirect"):
			default:
			}
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this window.")
		select {
		case codeCh <- code:
		default:
		}
	})

	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errCh <- fmt.Errorf("callback server failed: %w", err):
			default:
			}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
		wg.Wait()
	}()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Fprintf(out, "Open this URL in your browser to authorize prodo:\n%s\n", authURL)

	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	select {
	case code := <-codeCh:
		tok, err := config.Exchange(ctx, code)
		if err != nil {
			return fmt.Errorf("failed to exchange authorization code: %w", err)
		}
		if err := saveToken(a.TokenPath(), tok); err != nil {
			return err
		}
		fmt.Fprintf(out, "Token saved to %s\n", a.TokenPath())
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return fmt.Errorf("authorization not completed: %w", ctx.Err())
	}
}

// savingTokenSource writes refreshed tokens back to the cache file
type savingTokenSource struct {
	base   oauth2.TokenSource
	path   string
	logger *zap.Logger

	mu   sync.Mutex
	last *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil || tok.AccessToken != s.last.AccessToken || tok.RefreshToken != s.last.RefreshToken {
		if err := saveToken(s.path, tok); err != nil {
			s.logger.Warn("failed to cache refreshed token", zap.Error(err))
		}
		s.last = tok
	}
	return tok, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to cache token at %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return nil
}
