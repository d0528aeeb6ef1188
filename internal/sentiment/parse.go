package sentiment

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/pscheid92/moodchat/internal/domain"
)

var errUnrecognizedPayload = errors.New("unrecognized classifier payload")

// The classifier service answers in three known shapes depending on which
// endpoint and model revision served the request. Each shape is tried in
// order; anything else counts as an attempt failure, never a crash.
//
//	{"data":[{"label":"POSITIVE"}]}    object array with label field
//	{"data":["positive"]}              plain string array
//	{"data":[[{"label":"label_2"}]]}   nested array-of-arrays (router shape)
func parseLabel(raw []byte) (domain.Label, error) {
	var objShape struct {
		Data []struct {
			Label string `json:"label"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &objShape); err == nil && len(objShape.Data) > 0 && objShape.Data[0].Label != "" {
		return normalizeLabel(objShape.Data[0].Label), nil
	}

	var stringShape struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(raw, &stringShape); err == nil && len(stringShape.Data) > 0 && stringShape.Data[0] != "" {
		return normalizeLabel(stringShape.Data[0]), nil
	}

	var nestedShape struct {
		Data [][]struct {
			Label string `json:"label"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &nestedShape); err == nil && len(nestedShape.Data) > 0 &&
		len(nestedShape.Data[0]) > 0 && nestedShape.Data[0][0].Label != "" {
		return normalizeLabel(nestedShape.Data[0][0].Label), nil
	}

	return domain.LabelNeutral, errUnrecognizedPayload
}

// normalizeLabel maps upstream label strings onto the three-valued domain
// label. The substring rules encode real quirks of the upstream models:
// "POSITIVE"/"very negative tone" style labels from the predict endpoint and
// "label_2"/"label_0" class names from the fallback router.
func normalizeLabel(s string) domain.Label {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "pos"):
		return domain.LabelPositive
	case strings.Contains(lower, "neg"):
		return domain.LabelNegative
	case strings.Contains(lower, "label_2"):
		return domain.LabelPositive
	case strings.Contains(lower, "label_0"):
		return domain.LabelNegative
	default:
		return domain.LabelNeutral
	}
}
