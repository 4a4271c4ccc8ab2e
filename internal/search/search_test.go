package search

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/require"
)

// cannedTransport feeds every request a fixed response body, so the
// decode path can be exercised without a cluster.
type cannedTransport struct {
	body string
}

func (t *cannedTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header: http.Header{
			"Content-Type":      []string{"application/json"},
			"X-Elastic-Product": []string{"Elasticsearch"},
		},
		Body: io.NopCloser(strings.NewReader(t.body)),
	}, nil
}

func newCannedClient(t *testing.T, body string) *elasticsearch.Client {
	t.Helper()
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://elasticsearch:9200"},
		Transport: &cannedTransport{body: body},
	})
	require.NoError(t, err)
	return client
}

func TestMedicinesDecodesHitSources(t *testing.T) {
	body := `{
		"hits": {
			"total": {"value": 2},
			"hits": [
				{"_source": {"id": 1, "name": "Paracetamol 500mg", "category": "Pain Relief", "price": 5990, "stock": 120}},
				{"_source": {"id": 2, "name": "Ibuprofen 200mg", "category": "Pain Relief", "price": 7490, "stock": 80}}
			]
		}
	}`
	es := newCannedClient(t, body)

	total, meds, err := Medicines(context.Background(), es, "pain", 0, 50)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, meds, 2)

	// documents live under the "_source" key; every field must survive
	require.Equal(t, uint(1), meds[0].ID)
	require.Equal(t, "Paracetamol 500mg", meds[0].Name)
	require.Equal(t, int64(5990), meds[0].Price)
	require.Equal(t, uint(2), meds[1].ID)
	require.Equal(t, "Ibuprofen 200mg", meds[1].Name)
	require.Equal(t, int64(7490), meds[1].Price)
}

func TestMedicinesEmptyResult(t *testing.T) {
	es := newCannedClient(t, `{"hits": {"total": {"value": 0}, "hits": []}}`)

	total, meds, err := Medicines(context.Background(), es, "nothing", 0, 50)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
	require.Empty(t, meds)
}
