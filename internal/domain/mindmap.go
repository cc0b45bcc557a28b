package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Mindmap is a free-form node/connection canvas that can be linked to a
// project for bi-directional navigation. The node and connection payloads
// are opaque to the data layer: they are stored and returned verbatim.
type Mindmap struct {
	// ID is the unique identifier for the mindmap (UUID string).
	ID string `json:"id"`

	// Title is the human-readable mindmap name.
	Title string `json:"title"`

	// Description is an optional longer summary.
	Description string `json:"description"`

	// Nodes is the opaque node payload (a JSON array).
	Nodes json.RawMessage `json:"nodes"`

	// Connections is the opaque connection payload (a JSON array).
	Connections json.RawMessage `json:"connections"`

	// ProjectID links this mindmap to a project. The link is bi-directional:
	// the project's mindmap_id must point back at this mindmap.
	ProjectID string `json:"project_id,omitempty"`

	// CreationDate is when the mindmap was created.
	CreationDate time.Time `json:"creation_date"`

	// ModifiedDate is when the mindmap was last saved.
	ModifiedDate time.Time `json:"modified_date"`
}

// emptyArray is the default payload for a mindmap with no content yet.
var emptyArray = json.RawMessage("[]")

// NewMindmap creates a mindmap with a fresh id and empty payloads.
func NewMindmap(title string, now time.Time) *Mindmap {
	return &Mindmap{
		ID:           uuid.NewString(),
		Title:        title,
		Nodes:        append(json.RawMessage(nil), emptyArray...),
		Connections:  append(json.RawMessage(nil), emptyArray...),
		CreationDate: now,
		ModifiedDate: now,
	}
}

// Clone returns a deep copy of the mindmap, including payload bytes.
func (m *Mindmap) Clone() *Mindmap {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Nodes = append(json.RawMessage(nil), m.Nodes...)
	cp.Connections = append(json.RawMessage(nil), m.Connections...)
	return &cp
}

// NodeCount returns the number of nodes in the payload, or 0 when the
// payload is empty or not a JSON array.
func (m *Mindmap) NodeCount() int {
	return countArray(m.Nodes)
}

// ConnectionCount returns the number of connections in the payload, or 0
// when the payload is empty or not a JSON array.
func (m *Mindmap) ConnectionCount() int {
	return countArray(m.Connections)
}

// countArray counts the elements of an opaque JSON array payload.
func countArray(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return 0
	}
	return len(elems)
}
