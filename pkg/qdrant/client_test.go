package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edubot/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Routing based on URL path and Method
		path := r.URL.Path

		if r.Method == http.MethodPut && strings.HasSuffix(path, "/points") {
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 {
				payload := req.Points[0].Payload
				if val, ok := payload["cause_500"]; ok && val == true {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		if r.Method == http.MethodPut && strings.Contains(path, "/collections/") {
			w.WriteHeader(http.StatusCreated)
			return
		}

		if r.Method == http.MethodDelete && strings.HasSuffix(path, "/missing_col") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if r.Method == http.MethodDelete && strings.Contains(path, "/collections/") {
			w.WriteHeader(http.StatusOK)
			return
		}

		if r.Method == http.MethodPost && strings.Contains(path, "/points/search") {
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"result": [
					{
						"id": "123",
						"version": 1,
						"score": 0.95,
						"payload": {"key": "value"}
					}
				],
				"status": "ok",
				"time": 0.05
			}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL)

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(context.Background(), qdrant.CreateCollectionRequest{
			Name: "test_col",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Success", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{
				{
					ID:      "123",
					Payload: map[string]interface{}{"key": "val"},
					Vector:  []float32{0.1, 0.2},
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Error", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{
				{
					ID:      "123",
					Payload: map[string]interface{}{"cause_500": true},
					Vector:  []float32{0.1, 0.2},
				},
			},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("SearchPoints Success", func(t *testing.T) {
		resp, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{
			Limit: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].ID != "123" {
			t.Errorf("unexpected search results: %v", resp)
		}
	})

	t.Run("SearchPoints Error", func(t *testing.T) {
		_, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{
			Limit: 999,
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("DeleteCollection Missing Is Not An Error", func(t *testing.T) {
		if err := client.DeleteCollection(context.Background(), "missing_col"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.DeleteCollection(context.Background(), "test_col"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // cancel immediately

		err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{Name: "test"})
		if err == nil {
			t.Errorf("expected error on canceled context")
		}

		_, err = client.SearchPoints(ctx, "test", qdrant.SearchRequest{})
		if err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}

func TestQdrantClientAPIKeyAndNumericIDs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result": [{"id": 7, "score": 0.5, "payload": {"tag": "admissions"}}]}`))
	}))
	defer ts.Close()

	t.Run("Missing Key Rejected", func(t *testing.T) {
		_, err := qdrant.NewClient(ts.URL).SearchPoints(context.Background(), "c", qdrant.SearchRequest{Limit: 1})
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Integer ID Decodes", func(t *testing.T) {
		resp, err := qdrant.NewClient(ts.URL).WithAPIKey("secret").SearchPoints(context.Background(), "c", qdrant.SearchRequest{Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 {
			t.Fatalf("expected one result, got %d", len(resp.Result))
		}
		if id, ok := resp.Result[0].ID.(float64); !ok || id != 7 {
			t.Errorf("expected numeric id 7, got %#v", resp.Result[0].ID)
		}
		if resp.Result[0].Payload["tag"] != "admissions" {
			t.Errorf("unexpected payload: %v", resp.Result[0].Payload)
		}
	})
}
