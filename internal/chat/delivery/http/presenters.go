package http

import (
	"math"

	"edubot/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" example:"What is the admission process?"`
}

func (r chatReq) toInput() chat.QueryInput {
	return chat.QueryInput{Query: r.Message}
}

// --- Response DTOs ---

type chatResp struct {
	Intent     string  `json:"intent"     example:"admissions"`
	Confidence float64 `json:"confidence" example:"0.812"`
	Reply      string  `json:"reply"      example:"Applications open in May. Apply online on the admissions portal."`
}

func (h *handler) newChatResp(o chat.QueryOutput) chatResp {
	return chatResp{
		Intent:     o.Label,
		Confidence: roundConfidence(o.Confidence),
		Reply:      o.Reply,
	}
}

type legacyErrorResp struct {
	Reply string `json:"reply" example:"Please type a question."`
}

type intentResp struct {
	Tag       string `json:"tag"`
	Patterns  int    `json:"patterns"`
	Responses int    `json:"responses"`
}

type listIntentsResp struct {
	Strategy string       `json:"strategy"`
	Total    int          `json:"total"`
	Intents  []intentResp `json:"intents"`
}

func (h *handler) newListIntentsResp(o chat.ListIntentsOutput) listIntentsResp {
	items := make([]intentResp, len(o.Intents))
	for i, it := range o.Intents {
		items[i] = intentResp{Tag: it.Tag, Patterns: it.Patterns, Responses: it.Responses}
	}
	return listIntentsResp{
		Strategy: string(o.Strategy),
		Total:    len(items),
		Intents:  items,
	}
}

func roundConfidence(v float64) float64 {
	return math.Round(v*1000) / 1000
}
