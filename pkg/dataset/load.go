package dataset

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/boxorbit/pkg/errors"
	"github.com/matzehuels/boxorbit/pkg/observability"
)

// Dataset is a loaded film table together with the raw bytes it came from.
type Dataset struct {
	Source string
	Films  []FilmRecord
	Raw    []byte
}

// Len returns the number of films.
func (d *Dataset) Len() int { return len(d.Films) }

// Loader reads datasets from local files, stdin ("-") or http(s) URLs.
//
// A non-success HTTP status is fatal: the caller gets an error and no
// records, so no partial scene is ever built. There is no retry.
type Loader struct {
	Client *http.Client
	Stdin  io.Reader
}

// NewLoader returns a Loader with a 30s HTTP timeout reading stdin from os.Stdin.
func NewLoader() *Loader {
	return &Loader{
		Client: &http.Client{Timeout: 30 * time.Second},
		Stdin:  os.Stdin,
	}
}

// Load fetches src and parses it.
func (l *Loader) Load(ctx context.Context, src string) (*Dataset, error) {
	if err := errors.ValidateSource(src); err != nil {
		return nil, err
	}

	raw, err := l.read(ctx, src)
	if err != nil {
		return nil, err
	}

	films, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return &Dataset{Source: src, Films: films, Raw: raw}, nil
}

func (l *Loader) read(ctx context.Context, src string) ([]byte, error) {
	switch {
	case src == "-":
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read stdin")
		}
		return data, nil
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return l.fetch(ctx, src)
	}

	data, err := os.ReadFile(src)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "dataset not found: %s", src)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read %s", src)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	data, status, err := l.get(ctx, url)
	observability.Fetch().OnFetch(ctx, url, status, int64(len(data)), time.Since(start), err)
	return data, err
}

func (l *Loader) get(ctx context.Context, url string) ([]byte, int, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeInvalidSource, err, "build request for %s", url)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeFetchFailed, err, "GET %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, errors.Wrap(errors.ErrCodeFetchFailed, &errors.FetchError{URL: url, StatusCode: resp.StatusCode}, "GET %s", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(errors.ErrCodeFetchFailed, err, "read body of %s", url)
	}
	return data, resp.StatusCode, nil
}
