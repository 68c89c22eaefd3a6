package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tripcheck/pkg/utils"
)

type MatrixPoint struct {
	ID  string
	Lat float64
	Lng float64
}

type MatrixEdge struct {
	DistanceMeters int
}

// DistanceMatrix is indexed [from.ID][to.ID].
type DistanceMatrix map[string]map[string]MatrixEdge

type pairKey struct {
	Mode string
	A    string
	B    string
}

type matrixPairCacheEntry struct {
	Edge      MatrixEdge
	ExpiresAt time.Time
}

type MatrixPairCache interface {
	Get(k pairKey) (MatrixEdge, bool)
	Set(k pairKey, v MatrixEdge, ttl time.Duration)
}

type inMemoryPairCache struct {
	mu    sync.RWMutex
	store map[pairKey]matrixPairCacheEntry
}

func NewInMemoryPairCache() MatrixPairCache {
	return &inMemoryPairCache{store: make(map[pairKey]matrixPairCacheEntry)}
}

func (c *inMemoryPairCache) Get(k pairKey) (MatrixEdge, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return MatrixEdge{}, false
	}
	return it.Edge, true
}

func (c *inMemoryPairCache) Set(k pairKey, v MatrixEdge, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = matrixPairCacheEntry{Edge: v, ExpiresAt: time.Now().Add(ttl)}
}

type DistanceMatrixService interface {
	ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error)
}

// MapboxMatrixClient asks the Mapbox Matrix API for driving distances only.
type MapboxMatrixClient struct {
	HTTP        *http.Client
	BaseURL     string
	AccessToken string
	Cache       MatrixPairCache
	DefaultTTL  time.Duration
	Profile     string
}

func NewMapboxMatrixClient(token string, cache MatrixPairCache) *MapboxMatrixClient {
	return &MapboxMatrixClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		BaseURL:     "https://api.mapbox.com",
		AccessToken: token,
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
		Profile:     "driving",
	}
}

func (c *MapboxMatrixClient) ComputeDistances(ctx context.Context, points []MatrixPoint) (DistanceMatrix, error) {
	n := len(points)
	if n == 0 {
		return DistanceMatrix{}, nil
	}

	mode := c.Profile
	mat := make(DistanceMatrix, n)
	for _, p := range points {
		mat[p.ID] = make(map[string]MatrixEdge, n)
	}

	needCall := false
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				mat[points[i].ID][points[j].ID] = MatrixEdge{}
				continue
			}
			if v, ok := c.Cache.Get(pairKey{Mode: mode, A: points[i].ID, B: points[j].ID}); ok {
				mat[points[i].ID][points[j].ID] = v
			} else {
				needCall = true
			}
		}
	}
	if !needCall {
		return mat, nil
	}

	coords := make([]string, 0, n)
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Lng, p.Lat))
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("mapbox base url: %w", err)
	}
	u.Path = fmt.Sprintf("/directions-matrix/v1/mapbox/%s/%s", mode, strings.Join(coords, ";"))
	q := url.Values{}
	q.Set("annotations", "distance")
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("mapbox matrix request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: mapbox matrix http error: %v", utils.ErrMatrixUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: mapbox matrix bad status: %s", utils.ErrMatrixUnavailable, resp.Status)
	}

	var payload struct {
		Code      string       `json:"code"`
		Distances [][]*float64 `json:"distances"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox decode: %w", err)
	}
	if payload.Code != "" && payload.Code != "Ok" {
		return nil, fmt.Errorf("%w: mapbox matrix code %q", utils.ErrMatrixUnavailable, payload.Code)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// unreachable pairs come back as null and are left out
			if i >= len(payload.Distances) || j >= len(payload.Distances[i]) || payload.Distances[i][j] == nil {
				delete(mat[points[i].ID], points[j].ID)
				continue
			}
			edge := MatrixEdge{DistanceMeters: int(*payload.Distances[i][j] + 0.5)}
			mat[points[i].ID][points[j].ID] = edge
			c.Cache.Set(pairKey{Mode: mode, A: points[i].ID, B: points[j].ID}, edge, c.DefaultTTL)
		}
	}

	return mat, nil
}
