package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"miyako/models"
)

// remoteSource pulls the catalog from an upstream REST API instead of the
// local store. Both endpoints wrap their payload in {"data": [...]}.
type remoteSource struct {
	baseURL string
	client  *http.Client
}

// NewRemoteSource fetches from baseURL ("/categories/items" and
// "/categories").
func NewRemoteSource(baseURL string) Source {
	return &remoteSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *remoteSource) FetchAttractions(ctx context.Context) ([]models.Attraction, error) {
	var payload struct {
		Data []models.Attraction `json:"data"`
	}
	if err := s.getJSON(ctx, s.baseURL+"/categories/items", &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (s *remoteSource) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var payload struct {
		Data []models.Category `json:"data"`
	}
	if err := s.getJSON(ctx, s.baseURL+"/categories", &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (s *remoteSource) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog fetch %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
