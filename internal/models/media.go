package models

import (
	"encoding/json"
	"fmt"
)

// Media represents an expanded media document (image or file upload)
type Media struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// MediaRef is a relation field that may arrive either as a bare identifier
// (unpopulated) or as an expanded media object, depending on the expansion
// depth requested from the content store. Transformers branch on the tag
// instead of probing dynamic types.
type MediaRef struct {
	Ref   string `json:"ref,omitempty"`
	Media *Media `json:"media,omitempty"`
}

// RefMedia returns a reference-only MediaRef
func RefMedia(id string) MediaRef {
	return MediaRef{Ref: id}
}

// ExpandedMedia returns a populated MediaRef
func ExpandedMedia(m Media) MediaRef {
	return MediaRef{Media: &m}
}

// IsExpanded reports whether the relation resolved to a full media object
func (r MediaRef) IsExpanded() bool {
	return r.Media != nil
}

// IsZero reports whether the relation is absent entirely
func (r MediaRef) IsZero() bool {
	return r.Ref == "" && r.Media == nil
}

// UnmarshalJSON accepts either a bare identifier (string or number) or an
// expanded media object.
func (r *MediaRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*r = MediaRef{}
		return nil
	}

	switch data[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("failed to unmarshal media reference: %w", err)
		}
		*r = MediaRef{Ref: id}
		return nil
	case '{':
		var m Media
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failed to unmarshal media object: %w", err)
		}
		*r = MediaRef{Media: &m}
		return nil
	default:
		// Numeric identifiers from relational CMS backends
		var id json.Number
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("failed to unmarshal media reference: %w", err)
		}
		*r = MediaRef{Ref: id.String()}
		return nil
	}
}

// MarshalJSON emits the expanded object when populated, otherwise the bare
// identifier, otherwise null.
func (r MediaRef) MarshalJSON() ([]byte, error) {
	if r.Media != nil {
		return json.Marshal(r.Media)
	}
	if r.Ref != "" {
		return json.Marshal(r.Ref)
	}
	return []byte("null"), nil
}
