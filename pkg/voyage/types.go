package voyage

// EmbedRequest is the POST /embeddings body.
type EmbedRequest struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

// EmbedResponse holds one vector per input. The API does not promise array
// order; Index points back into EmbedRequest.Input.
type EmbedResponse struct {
	Data  []Embedding `json:"data"`
	Model string      `json:"model"`
}

type Embedding struct {
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// apiError accepts both {"detail": "..."} and {"error": {"message": "..."}}.
type apiError struct {
	Detail string `json:"detail"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (e apiError) message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error.Message
}
