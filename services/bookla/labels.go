package bookla

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"edgeapi/models"

	"go.uber.org/zap"
)

// LoadLabelMaps builds display-name maps for resources and services using
// the admin-scope key. Enrichment is strictly best-effort: without an admin
// key it is skipped silently, the two categories are fetched concurrently
// and fail independently, and no failure ever surfaces to the caller.
func (c *Client) LoadLabelMaps(ctx context.Context) models.LabelMaps {
	maps := models.NewLabelMaps()
	if c.AdminAPIKey == "" || c.CompanyID == "" {
		return maps
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		maps.Resources = c.fetchLabelMap(ctx, "resources")
	}()
	go func() {
		defer wg.Done()
		maps.Services = c.fetchLabelMap(ctx, "services")
	}()
	wg.Wait()

	return maps
}

type labelRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// fetchLabelMap pulls the first page of one label category. Entries beyond
// the page simply stay unlabeled. Any failure yields whatever was
// accumulated so far, typically an empty map.
func (c *Client) fetchLabelMap(ctx context.Context, category string) map[string]string {
	labels := make(map[string]string)

	url := fmt.Sprintf("%s/companies/%s/%s?limit=200&offset=0", c.BaseURL, c.CompanyID, category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return labels
	}
	req.Header.Set("X-Api-Key", c.AdminAPIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Warn("label lookup failed", zap.String("category", category), zap.Error(err))
		return labels
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.Logger.Warn("label lookup rejected", zap.String("category", category), zap.Int("status", resp.StatusCode))
		return labels
	}

	for _, row := range labelRows(raw, category) {
		if row.ID != "" && row.Name != "" {
			labels[row.ID] = row.Name
		}
	}
	return labels
}

// labelRows accepts either an array wrapped under the category name or a
// bare array; Bookla has shipped both shapes.
func labelRows(raw []byte, category string) []labelRow {
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		var rows []labelRow
		if inner, ok := wrapped[category]; ok && json.Unmarshal(inner, &rows) == nil {
			return rows
		}
		return nil
	}

	var rows []labelRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}
	return rows
}
