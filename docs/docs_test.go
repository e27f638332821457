package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"

	"edubot/docs"
)

func TestSwaggerDocRenders(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}

	var doc struct {
		Swagger     string                     `json:"swagger"`
		Host        string                     `json:"host"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.Host != docs.SwaggerInfo.Host {
		t.Errorf("unexpected header: swagger=%q host=%q", doc.Swagger, doc.Host)
	}

	for _, path := range []string{"/", "/chat", "/api/v1/chat", "/api/v1/intents", "/health", "/ready", "/live"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
	for _, def := range []string{"http.chatReq", "http.chatResp", "http.legacyErrorResp", "response.Resp"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("missing definition %s", def)
		}
	}
}
