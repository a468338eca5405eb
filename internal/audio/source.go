package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/llehouerou/turntable/internal/tracklist"
)

const (
	userAgent = "turntable/1.0"

	// maxSongSize bounds the bytes buffered for one song.
	maxSongSize = 64 << 20
)

// Opener locates and opens the audio resource of a track.
type Opener interface {
	Open(ctx context.Context, track tracklist.Track) (io.ReadCloser, error)
}

// NewOpener returns an opener for the songs base location.
// An http(s) base is fetched with GET {base}/songs/{title}.mp3, anything else
// is treated as a directory containing songs/{title}.mp3.
func NewOpener(base string) Opener {
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return &httpOpener{
			base: strings.TrimSuffix(base, "/"),
			httpClient: &http.Client{
				Timeout: 60 * time.Second,
			},
		}
	}
	return dirOpener(base)
}

type httpOpener struct {
	base       string
	httpClient *http.Client
}

func (o *httpOpener) Open(ctx context.Context, track tracklist.Track) (io.ReadCloser, error) {
	reqURL := o.base + track.SourcePath()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, track.Title)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return resp.Body, nil
}

type dirOpener string

func (o dirOpener) Open(_ context.Context, track tracklist.Track) (io.ReadCloser, error) {
	if strings.ContainsAny(track.Title, `/\`) || track.Title == ".." {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, track.Title)
	}
	path := filepath.Join(string(o), "songs", track.Title+".mp3")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, track.Title)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// readAll buffers the song, refusing anything larger than maxSongSize.
func readAll(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, maxSongSize+1))
	if err != nil {
		return nil, fmt.Errorf("read song: %w", err)
	}
	if len(data) > maxSongSize {
		return nil, fmt.Errorf("song exceeds %d bytes", maxSongSize)
	}
	return data, nil
}
