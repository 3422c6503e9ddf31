package models

import "encoding/json"

// Prompt is the canonical saved-prompt record.
type Prompt struct {
	ID          string
	Title       string
	Description string
	Tag         string
	Author      string
	CreatedAt   string

	Extra map[string]any
}

var knownPromptKeys = map[string]struct{}{
	"id": {}, "_id": {}, "title": {}, "description": {},
	"tag": {}, "author": {}, "createdAt": {}, "created": {},
}

// PromptFromMap builds a Prompt from a decoded JSON object. Returns nil
// when m is nil.
func PromptFromMap(m map[string]any) *Prompt {
	if m == nil {
		return nil
	}
	p := &Prompt{
		ID:          stringField(m, "id", "_id"),
		Title:       stringField(m, "title"),
		Description: stringField(m, "description"),
		Tag:         stringField(m, "tag"),
		Author:      stringField(m, "author"),
		CreatedAt:   stringField(m, "createdAt", "created"),
	}
	for k, v := range m {
		if _, ok := knownPromptKeys[k]; ok {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[k] = v
	}
	return p
}

func (p *Prompt) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if parsed := PromptFromMap(m); parsed != nil {
		*p = *parsed
	}
	return nil
}

func (p Prompt) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extra)+6)
	for k, v := range p.Extra {
		m[k] = v
	}
	if p.ID != "" {
		m["id"] = p.ID
	}
	if p.Title != "" {
		m["title"] = p.Title
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Tag != "" {
		m["tag"] = p.Tag
	}
	if p.Author != "" {
		m["author"] = p.Author
	}
	if p.CreatedAt != "" {
		m["createdAt"] = p.CreatedAt
	}
	return json.Marshal(m)
}
