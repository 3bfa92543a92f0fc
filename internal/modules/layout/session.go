package layout

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"taxiforms/internal/domain"
)

// draftBlob is the single JSON blob kept in the draft store: enough to put
// an interrupted edit session back together.
type draftBlob struct {
	LayoutID    string         `json:"layout_id,omitempty"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Fields      []domain.Field `json:"fields"`
	Style       domain.Style   `json:"style"`
}

// Session owns one editor working copy plus its autosave scheduler. All
// mutations run under the session mutex; the editor itself stays a plain
// state container.
type Session struct {
	ID       string
	TenantID string

	mu     sync.Mutex
	editor *Editor
	saver  *Autosaver
	svc    *Service
	drafts DraftStore
	closed bool
}

func (s *Session) draftKey() string {
	return "builder:" + s.TenantID
}

// mutate applies an editor operation, refreshes the recovery draft and
// (when the layout is already persisted and non-empty) re-arms autosave.
func (s *Session) mutate(op func(e *Editor) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if !op(s.editor) {
		return false
	}

	s.saveDraftLocked()
	if s.editor.CanAutosave() {
		s.saver.Touch()
	}
	return true
}

func (s *Session) AddField(t domain.FieldType) (domain.Field, bool) {
	var added domain.Field
	ok := s.mutate(func(e *Editor) bool {
		f, ok := e.AddField(t)
		added = f
		return ok
	})
	return added, ok
}

func (s *Session) RemoveField(id string) bool {
	return s.mutate(func(e *Editor) bool { return e.RemoveField(id) })
}

func (s *Session) ToggleField(id string) bool {
	return s.mutate(func(e *Editor) bool { return e.ToggleField(id) })
}

func (s *Session) UpdateField(id string, p FieldPatch) bool {
	return s.mutate(func(e *Editor) bool { return e.UpdateField(id, p) })
}

func (s *Session) Reorder(activeID, overID string) bool {
	return s.mutate(func(e *Editor) bool { return e.Reorder(activeID, overID) })
}

func (s *Session) Undo() bool {
	return s.mutate(func(e *Editor) bool { return e.Undo() })
}

func (s *Session) UpdateMeta(name, description *string, style *domain.Style) {
	s.mutate(func(e *Editor) bool {
		e.UpdateMeta(name, description, style)
		return true
	})
}

func (s *Session) MoveSubmit(position *int) {
	s.mutate(func(e *Editor) bool {
		e.MoveSubmit(position)
		return true
	})
}

// Snapshot returns a copy of the current builder state for rendering.
func (s *Session) Snapshot() (layout domain.Layout, state EditorState, selected string, canUndo bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editor.Working(), s.editor.State(), s.editor.Selected, s.editor.CanUndo()
}

// Save persists the working copy synchronously (the manual save button).
// A never-persisted layout is created first; afterwards the server's
// authoritative object replaces the working copy.
func (s *Session) Save(ctx context.Context) (*domain.Layout, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	if s.editor.LayoutID == "" {
		created, err := s.svc.Create(ctx, s.TenantID, s.editor.Name, s.editor.Description)
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		s.editor.LayoutID = created.ID
	}

	working := s.editor.BeginSave()
	s.mu.Unlock()

	saved, err := s.svc.Update(ctx, s.TenantID, working)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// Late response after teardown: discard.
		return saved, err
	}
	if err != nil {
		s.editor.FailSave()
		return nil, err
	}

	s.editor.CompleteSave(*saved)
	if derr := s.drafts.Delete(ctx, s.draftKey()); derr != nil {
		log.Printf("draft delete failed key=%s err=%v", s.draftKey(), derr)
	}
	return saved, nil
}

// autosaveNow is the debounced save path. Failures are swallowed: the user
// keeps editing and the draft store holds the recovery copy until the next
// successful save.
func (s *Session) autosaveNow() {
	s.mu.Lock()
	if s.closed || !s.editor.CanAutosave() {
		s.mu.Unlock()
		return
	}
	working := s.editor.BeginSave()
	tenantID := s.TenantID
	s.mu.Unlock()

	saved, err := s.svc.Update(context.Background(), tenantID, working)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err != nil {
		log.Printf("autosave failed tenant=%s layout=%s err=%v", tenantID, working.ID, err)
		s.editor.FailSave()
		return
	}

	s.editor.CompleteSave(*saved)
	if derr := s.drafts.Delete(context.Background(), s.draftKey()); derr != nil {
		log.Printf("draft delete failed key=%s err=%v", s.draftKey(), derr)
	}
}

func (s *Session) saveDraftLocked() {
	blob, err := json.Marshal(draftBlob{
		LayoutID:    s.editor.LayoutID,
		Name:        s.editor.Name,
		Description: s.editor.Description,
		Fields:      s.editor.Fields,
		Style:       s.editor.Style,
	})
	if err != nil {
		return
	}
	if err := s.drafts.Save(context.Background(), s.draftKey(), blob); err != nil {
		log.Printf("draft save failed key=%s err=%v", s.draftKey(), err)
	}
}

func (s *Session) close() {
	s.saver.Close()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Manager tracks open builder sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	svc      *Service
	drafts   DraftStore
	debounce time.Duration
}

func NewManager(svc *Service, drafts DraftStore, debounce time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		svc:      svc,
		drafts:   drafts,
		debounce: debounce,
	}
}

// Open starts an edit session. With a layout id the persisted layout is
// loaded and the recovery draft cleared; without one the most recent draft,
// if parseable, is restored so an autosave failure or accidental navigation
// does not lose work.
func (m *Manager) Open(ctx context.Context, tenantID, layoutID string) (*Session, error) {
	sess := &Session{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		editor:   NewEditor(),
		svc:      m.svc,
		drafts:   m.drafts,
	}
	sess.saver = NewAutosaver(m.debounce, sess.autosaveNow)

	if layoutID != "" {
		l, err := m.svc.Get(ctx, tenantID, layoutID)
		if err != nil {
			return nil, err
		}
		sess.editor.Load(*l)
		if derr := m.drafts.Delete(ctx, sess.draftKey()); derr != nil {
			log.Printf("draft delete failed key=%s err=%v", sess.draftKey(), derr)
		}
	} else {
		m.restoreDraft(ctx, sess)
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return sess, nil
}

func (m *Manager) restoreDraft(ctx context.Context, sess *Session) {
	blob, err := m.drafts.Load(ctx, sess.draftKey())
	if err != nil || len(blob) == 0 {
		return
	}

	var d draftBlob
	if err := json.Unmarshal(blob, &d); err != nil {
		// Corrupt cache is the same as no draft.
		return
	}
	sess.editor.Restore(d.LayoutID, d.Name, d.Description, d.Fields, d.Style)
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	return sess, ok
}

// Close tears a session down: the scheduler is cancelled and any save still
// in flight is ignored rather than applied to closed state.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	sess.close()
	return true
}
