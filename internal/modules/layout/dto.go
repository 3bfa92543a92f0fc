package layout

import "taxiforms/internal/domain"

type CreateLayoutRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateLayoutRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Fields      []domain.Field `json:"fields"`
	Style       domain.Style   `json:"style"`
}

type DuplicateLayoutRequest struct {
	Name string `json:"name"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type OpenSessionRequest struct {
	LayoutID string `json:"layout_id"`
}

type AddFieldRequest struct {
	Type domain.FieldType `json:"type" binding:"required"`
}

type ReorderRequest struct {
	ActiveID string `json:"active_id" binding:"required"`
	OverID   string `json:"over_id" binding:"required"`
}

type UpdateMetaRequest struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Style       *domain.Style `json:"style,omitempty"`
}

type MoveSubmitRequest struct {
	// Position is an index into the visible field sequence; null resets the
	// submit control to the end.
	Position *int `json:"position"`
}

// AvailableField is one entry of the builder's field picker: a registry
// type not yet present in the working layout.
type AvailableField struct {
	Type  domain.FieldType `json:"type"`
	Label string           `json:"label"`
	Icon  string           `json:"icon"`
}

type SessionState struct {
	SessionID       string           `json:"session_id"`
	State           EditorState      `json:"state"`
	LayoutID        string           `json:"layout_id,omitempty"`
	Name            string           `json:"name,omitempty"`
	Description     string           `json:"description,omitempty"`
	Fields          []domain.Field   `json:"fields"`
	Style           domain.Style     `json:"style"`
	Selected        string           `json:"selected,omitempty"`
	CanUndo         bool             `json:"can_undo"`
	AvailableFields []AvailableField `json:"available_fields"`
}

func newSessionState(sess *Session) SessionState {
	working, state, selected, canUndo := sess.Snapshot()

	present := make(map[domain.FieldType]bool, len(working.Fields))
	for _, f := range working.Fields {
		present[f.Type] = true
	}

	available := make([]AvailableField, 0, len(AllFieldTypes))
	for _, t := range AllFieldTypes {
		if present[t] {
			continue
		}
		meta, _ := Lookup(t)
		available = append(available, AvailableField{
			Type:  t,
			Label: meta.Label,
			Icon:  meta.Icon,
		})
	}

	return SessionState{
		SessionID:       sess.ID,
		State:           state,
		LayoutID:        working.ID,
		Name:            working.Name,
		Description:     working.Description,
		Fields:          working.Fields,
		Style:           working.Style,
		Selected:        selected,
		CanUndo:         canUndo,
		AvailableFields: available,
	}
}
