package adapter

import (
	"encoding/json"

	"github.com/squee72564/provider-runtime/llm"
)

// wireModelList is the common shape of an OpenAI-style {"data":[{"id":...}]} model
// list, which OpenAI and OpenRouter both return. Discovery maps incomplete endpoint
// data onto conservative ModelInfo defaults.
type wireModelList struct {
	Data []wireModelEntry `json:"data"`
}

type wireModelEntry struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ContextLength   int64  `json:"context_length"`
}

func decodeModelList(pid llm.ProviderId, body []byte) ([]llm.ModelInfo, error) {
	var list wireModelList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &llm.Serialization{Location: llm.SerializationDecode, Message: err.Error()}
	}

	out := make([]llm.ModelInfo, 0, len(list.Data))
	for _, m := range list.Data {
		out = append(out, llm.ModelInfo{
			Provider:     pid,
			ModelID:      m.ID,
			DisplayName:  m.Name,
			ContextLimit: m.ContextLength,
		})
	}

	return out, nil
}
