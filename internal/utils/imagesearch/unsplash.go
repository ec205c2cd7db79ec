package imagesearch

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultBaseURL = "https://api.unsplash.com"
	resultsPerPage = 5
)

var (
	ErrNotConfigured = errors.New("image search access key is not configured")
	ErrNoResults     = errors.New("image search returned no results")
)

type (
	ImageSearcher interface {
		// SearchImage returns the URL of one photo matching term.
		SearchImage(term string) (string, error)
	}

	unsplashClient struct {
		accessKey string
		baseURL   string
		timeout   time.Duration
		pick      func(n int) int
	}

	searchResponse struct {
		Results []struct {
			URLs struct {
				Small string `json:"small"`
			} `json:"urls"`
		} `json:"results"`
	}
)

func NewUnsplashClient(accessKey string, baseURL string) ImageSearcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &unsplashClient{
		accessKey: accessKey,
		baseURL:   baseURL,
		timeout:   10 * time.Second,
		pick:      rand.Intn,
	}
}

func (u *unsplashClient) SearchImage(term string) (string, error) {
	if u.accessKey == "" {
		return "", ErrNotConfigured
	}

	query := url.Values{}
	query.Set("query", term+" food photography")
	query.Set("per_page", fmt.Sprint(resultsPerPage))
	query.Set("client_id", u.accessKey)
	endpoint := u.baseURL + "/search/photos?" + query.Encode()

	var res searchResponse
	code, body, errs := fiber.Get(endpoint).Timeout(u.timeout).Struct(&res)
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("unsplash search: status %d: %s", code, body)
	}

	if len(res.Results) == 0 {
		return "", ErrNoResults
	}

	return res.Results[u.pick(len(res.Results))].URLs.Small, nil
}
