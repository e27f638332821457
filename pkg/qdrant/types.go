package qdrant

// Distance metrics accepted by VectorConfig.
const (
	DistanceCosine = "Cosine"
	DistanceDot    = "Dot"
	DistanceEuclid = "Euclid"
)

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"`
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"`
}

// Point is a vector with payload. Qdrant only accepts a UUID string or an
// unsigned integer as ID.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for nearest-neighbour search.
type SearchRequest struct {
	Vector      []float32              `json:"vector"`
	Limit       int                    `json:"limit"`
	WithPayload bool                   `json:"with_payload"`
	Filter      map[string]interface{} `json:"filter,omitempty"`
}

// SearchResponse contains search results, best first.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result. ID is a string for UUID points and a
// float64 for integer points, as decoded by encoding/json.
type ScoredPoint struct {
	ID      interface{}            `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}
