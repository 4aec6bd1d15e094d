package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/api/metrics"
)

// pageSize is how many records each listing request asks for; the store
// caps pages at 100.
const pageSize = 100

// validate checks outbound write payloads against their schema tags. One
// instance for the whole package; validator caches struct metadata.
var validate = validator.New()

// listPayload is the store's cursor-paged listing body, as found inside
// the response envelope.
type listPayload struct {
	Cursor    int               `json:"cursor"`
	Results   []json.RawMessage `json:"results"`
	Count     int               `json:"count"`
	Remaining int               `json:"remaining"`
}

// createdPayload is the store's answer to a create: a bare id, no
// envelope.
type createdPayload struct {
	ID string `json:"id"`
}

// fetchAll drains every page of an object listing.
func (c *Client) fetchAll(ctx context.Context, base string, cons []Constraint) ([]json.RawMessage, error) {
	var all []json.RawMessage
	cursor := 0
	for {
		path, err := listPath(base, cursor, pageSize, cons)
		if err != nil {
			return nil, err
		}
		var page listPayload
		if err := c.Get(ctx, path, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		if page.Remaining <= 0 || len(page.Results) == 0 {
			return all, nil
		}
		cursor += len(page.Results)
	}
}

// decodeBatch converts one entity's raw records, dropping any that fail to
// decode or to satisfy their structural invariants. One corrupt row never
// fails the batch.
func decodeBatch[D, M any](raws []json.RawMessage, convert func(*D) *M) ([]*M, int) {
	models := make([]*M, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		var dto D
		if err := json.Unmarshal(raw, &dto); err != nil {
			skipped++
			continue
		}
		m := convert(&dto)
		if m == nil {
			skipped++
			continue
		}
		models = append(models, m)
	}
	return models, skipped
}

// reportSkips keeps dropped records visible without treating them as
// fatal.
func reportSkips(log zerolog.Logger, entity string, skipped int) {
	if skipped == 0 {
		return
	}
	metrics.RemoteRecordsSkippedTotal.WithLabelValues(entity).Add(float64(skipped))
	log.Warn().
		Str("entity", entity).
		Int("skipped", skipped).
		Msg("Dropped records failing conversion")
}

// checkPayload validates an outbound write payload before it is sent.
func checkPayload(p any) error {
	if err := validate.Struct(p); err != nil {
		return newValidationError(err)
	}
	return nil
}

// notFound translates a remote 404 into the entity's domain sentinel.
func notFound(err, sentinel error) error {
	if IsStatus(err, http.StatusNotFound) {
		return sentinel
	}
	return err
}

// Ping issues the cheapest read the store supports, a single-record task
// type listing. The readiness probe uses it to tell "process up" from
// "store reachable".
func (c *Client) Ping(ctx context.Context) error {
	path, err := listPath(objTaskType, 0, 1, nil)
	if err != nil {
		return err
	}
	var page listPayload
	return c.Get(ctx, path, &page)
}
