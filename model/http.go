package model

type BPMResponse struct {
	BPM uint32 `json:"bpm"`
}

type TransformResponse struct {
	File      string `json:"file"`
	NumEvents int    `json:"num_events"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
