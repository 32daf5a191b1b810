package planlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreplanlog "github.com/kilianp07/powerplan/core/planlog"
)

func newStore(t *testing.T) *coreplanlog.JSONLStore {
	t.Helper()
	store, err := coreplanlog.NewJSONLStore(filepath.Join(t.TempDir(), "plans.jsonl"), 10, 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHandler_ListsRecords(t *testing.T) {
	store := newStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.Append(context.Background(), coreplanlog.Record{Timestamp: now, PlanID: "p1", Load: 480, Feasible: true}))
	require.NoError(t, store.Append(context.Background(), coreplanlog.Record{Timestamp: now, PlanID: "p2", Load: 9999, Feasible: false}))

	h := NewHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var records []coreplanlog.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestHandler_FeasibleFilter(t *testing.T) {
	store := newStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.Append(context.Background(), coreplanlog.Record{Timestamp: now, PlanID: "p1", Feasible: true}))
	require.NoError(t, store.Append(context.Background(), coreplanlog.Record{Timestamp: now, PlanID: "p2", Feasible: false}))

	h := NewHandler(store)
	tests := map[string]struct {
		query string
		want  []string
	}{
		"feasible only":   {query: "?feasible=true", want: []string{"p1"}},
		"infeasible only": {query: "?feasible=false", want: []string{"p2"}},
		"no filter":       {query: "", want: []string{"p1", "p2"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/plans"+tc.query, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var records []coreplanlog.Record
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
			require.Len(t, records, len(tc.want))
			for i, id := range tc.want {
				assert.Equal(t, id, records[i].PlanID)
			}
		})
	}
}

func TestHandler_BadFeasibleFilter(t *testing.T) {
	h := NewHandler(newStore(t))
	req := httptest.NewRequest(http.MethodGet, "/plans?feasible=maybe", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_EmptyStoreReturnsEmptyList(t *testing.T) {
	h := NewHandler(newStore(t))
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_BadTimeFilter(t *testing.T) {
	h := NewHandler(newStore(t))
	req := httptest.NewRequest(http.MethodGet, "/plans?since=yesterday", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(newStore(t))
	req := httptest.NewRequest(http.MethodPost, "/plans", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
