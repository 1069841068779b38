// Package playground holds the playground configuration model, the store
// every control reads and writes through, and the control bindings.
package playground

import (
	"sync"

	"github.com/zhubert/tsplay/internal/logger"
)

// Setting names, as they appear in shared links and report payloads
const (
	SettingTS           = "ts"
	SettingFileType     = "fileType"
	SettingSourceType   = "sourceType"
	SettingScroll       = "scroll"
	SettingShowTokens   = "showTokens"
	SettingShowAST      = "showAST"
	SettingShowComments = "showComments"
	SettingCode         = "code"
	SettingESLintRC     = "eslintrc"
	SettingTSConfig     = "tsconfig"
)

// State is the playground configuration model
type State struct {
	TS           string `json:"ts"`
	FileType     string `json:"fileType"`
	SourceType   string `json:"sourceType,omitempty"` // empty means absent
	Scroll       bool   `json:"scroll"`
	ShowTokens   bool   `json:"showTokens"`
	ShowAST      string `json:"showAST,omitempty"`
	ShowComments bool   `json:"showComments,omitempty"`
	Code         string `json:"code"`
	ESLintRC     string `json:"eslintrc"`
	TSConfig     string `json:"tsconfig"`
}

// Partial is a merge request. Nil fields are left untouched.
type Partial struct {
	TS           *string
	FileType     *string
	SourceType   *string
	Scroll       *bool
	ShowTokens   *bool
	ShowAST      *string
	ShowComments *bool
	Code         *string
	ESLintRC     *string
	TSConfig     *string
}

// String returns a pointer to v for building partials
func String(v string) *string { return &v }

// Bool returns a pointer to v for building partials
func Bool(v bool) *bool { return &v }

// Apply returns s with every non-nil field of p written over it
func Apply(s State, p Partial) State {
	if p.TS != nil {
		s.TS = *p.TS
	}
	if p.FileType != nil {
		s.FileType = *p.FileType
	}
	if p.SourceType != nil {
		s.SourceType = *p.SourceType
	}
	if p.Scroll != nil {
		s.Scroll = *p.Scroll
	}
	if p.ShowTokens != nil {
		s.ShowTokens = *p.ShowTokens
	}
	if p.ShowAST != nil {
		s.ShowAST = *p.ShowAST
	}
	if p.ShowComments != nil {
		s.ShowComments = *p.ShowComments
	}
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.ESLintRC != nil {
		s.ESLintRC = *p.ESLintRC
	}
	if p.TSConfig != nil {
		s.TSConfig = *p.TSConfig
	}
	return s
}

// Fields returns the names of the settings p would change
func (p Partial) Fields() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(p.TS != nil, SettingTS)
	add(p.FileType != nil, SettingFileType)
	add(p.SourceType != nil, SettingSourceType)
	add(p.Scroll != nil, SettingScroll)
	add(p.ShowTokens != nil, SettingShowTokens)
	add(p.ShowAST != nil, SettingShowAST)
	add(p.ShowComments != nil, SettingShowComments)
	add(p.Code != nil, SettingCode)
	add(p.ESLintRC != nil, SettingESLintRC)
	add(p.TSConfig != nil, SettingTSConfig)
	return names
}

// Store is the single source of truth for the playground state.
// The owner creates it; controls only ever request merges through SetState.
type Store struct {
	// notifyMu is held across a merge and its notifications, so dependents
	// see merges in commit order from any goroutine. Listeners must not
	// call SetState.
	notifyMu sync.Mutex

	mu        sync.Mutex
	state     State
	listeners []func(State)
}

// NewStore creates a store holding initial
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState merges p into the current state and notifies dependents.
// No validation happens here.
func (s *Store) SetState(p Partial) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.state = Apply(s.state, p)
	next := s.state
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	logger.WithComponent("store").Debug("state merged", "fields", p.Fields())

	for _, fn := range listeners {
		fn(next)
	}
}

// Subscribe registers fn to run after every merge, in registration order
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
