package sentiment

// Result is the classification payload for one text. NumericLabel and
// OriginalMappedLabel are only populated in binary mode.
type Result struct {
	Label               string             `json:"label"`
	NumericLabel        *int               `json:"numeric_label,omitempty"`
	Confidence          float64            `json:"confidence"`
	OriginalLabel       string             `json:"original_label"`
	OriginalMappedLabel string             `json:"original_mapped_label,omitempty"`
	Scores              map[string]float64 `json:"scores"`
}

// BatchItem is one entry of a batch response. Exactly one of the embedded
// Result and Error is set; a nil Result keeps its fields out of the JSON.
type BatchItem struct {
	Index int `json:"index"`
	*Result
	Error string `json:"error,omitempty"`
}
