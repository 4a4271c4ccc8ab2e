package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/healthbridge/backend/internal/models"
)

const MedicineIndex = "medicines"

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch error: %s: %s", res.Status(), body)
	}

	return client, nil
}

// Medicines runs a fuzzy multi-field query over the medicine index.
func Medicines(ctx context.Context, es *elasticsearch.Client, query string, from, size int) (int64, []models.Medicine, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description", "category"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(MedicineIndex),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Medicine `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	meds := make([]models.Medicine, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		meds[i] = hit.Source
	}
	return r.Hits.Total.Value, meds, nil
}

// IndexMedicine upserts one catalog document. Indexing is best effort,
// the caller logs failures and moves on.
func IndexMedicine(ctx context.Context, es *elasticsearch.Client, med *models.Medicine) error {
	data, err := json.Marshal(med)
	if err != nil {
		return fmt.Errorf("marshal medicine: %w", err)
	}

	res, err := es.Index(
		MedicineIndex,
		bytes.NewReader(data),
		es.Index.WithDocumentID(strconv.FormatUint(uint64(med.ID), 10)),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index medicine: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index medicine: %s", res.Status())
	}
	return nil
}

func DeleteMedicine(ctx context.Context, es *elasticsearch.Client, id uint) error {
	res, err := es.Delete(
		MedicineIndex,
		strconv.FormatUint(uint64(id), 10),
		es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete medicine doc: %w", err)
	}
	defer res.Body.Close()
	// a 404 here just means the doc was never indexed
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete medicine doc: %s", res.Status())
	}
	return nil
}
