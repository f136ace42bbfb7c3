package openapi

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/asaskevich/govalidator"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/projectdiscovery/retryablehttp-go"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Provider retrieves the raw bytes of a specification document from a
// source reference. It is the only asynchronous boundary around the
// overlap engine: a Fetch completes fully before any index is built,
// so the engine never observes a partial document.
type Provider interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// NewProvider picks a provider implementation from the shape of the
// source reference: URLs are fetched over HTTP, anything else is read
// from disk.
func NewProvider(source string) Provider {
	if govalidator.IsRequestURL(source) {
		return NewHTTPProvider()
	}
	return &FileProvider{}
}

// HTTPProvider fetches specification documents over HTTP(S).
type HTTPProvider struct {
	client *retryablehttp.Client
}

// NewHTTPProvider returns an HTTP provider with sane single-host
// retry defaults.
func NewHTTPProvider() *HTTPProvider {
	return &HTTPProvider{client: retryablehttp.NewClient(retryablehttp.DefaultOptionsSingle)}
}

// Fetch downloads the document at the given URL.
func (p *HTTPProvider) Fetch(ctx context.Context, source string) ([]byte, error) {
	request, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create request for %s", source)
	}
	response, err := p.client.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "could not fetch %s", source)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %s fetching %s", response.Status, source)
	}
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", source)
	}
	return data, nil
}

// FileProvider reads specification documents from the local filesystem.
type FileProvider struct{}

// Fetch reads the document at the given path.
func (p *FileProvider) Fetch(_ context.Context, source string) ([]byte, error) {
	if !fileutil.FileExists(source) {
		return nil, errors.Errorf("specification file %s does not exist", source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", source)
	}
	return data, nil
}

// CachedProvider wraps another provider with an LRU cache keyed by
// source, so library callers checking many candidates against the same
// remote specification fetch it once.
type CachedProvider struct {
	inner Provider
	cache *lru.Cache
}

// NewCachedProvider returns a caching wrapper around inner holding up
// to size fetched documents.
func NewCachedProvider(inner Provider, size int) (*CachedProvider, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedProvider{inner: inner, cache: cache}, nil
}

// Fetch returns the cached bytes for source or delegates to the
// wrapped provider. Failed fetches are not cached.
func (p *CachedProvider) Fetch(ctx context.Context, source string) ([]byte, error) {
	if data, ok := p.cache.Get(source); ok {
		return data.([]byte), nil
	}
	data, err := p.inner.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	p.cache.Add(source, data)
	return data, nil
}
