package i18n

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultSessionEntries bounds how many remote translations a session keeps.
const DefaultSessionEntries = 512

// SharedCache is a cross-session store for remote translations, usually
// Redis with a TTL.
type SharedCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Session is a translation cache scoped to one batch run or one request.
// Prepare does the remote I/O; Translate and Emoji only read memory, so a
// prepared Session can be handed to the composer as a pure Dictionary.
type Session struct {
	remote     Remote
	shared     SharedCache
	scope      string
	maxEntries int

	mu      sync.RWMutex
	entries map[string]string

	group singleflight.Group
}

func NewSession(remote Remote, shared SharedCache, scope string) *Session {
	return &Session{
		remote:     remote,
		shared:     shared,
		scope:      scope,
		maxEntries: DefaultSessionEntries,
		entries:    make(map[string]string),
	}
}

func CacheKey(lang Language, scope, text string) string {
	return "tr:" + string(lang) + ":" + scope + ":" + Normalize(text)
}

func (s *Session) Translate(text string, lang Language) string {
	if Known(text) || lang == English {
		return Translate(text, lang)
	}
	s.mu.RLock()
	v, ok := s.entries[CacheKey(lang, s.scope, text)]
	s.mu.RUnlock()
	if ok {
		return v
	}
	return text
}

func (s *Session) Emoji(text string) string { return Emoji(text) }

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Prepare fetches translations for texts the static table does not know.
// Failures are logged and leave the texts untranslated.
func (s *Session) Prepare(ctx context.Context, lang Language, texts []string) {
	if lang == English || (s.remote == nil && s.shared == nil) {
		return
	}

	missing := s.missing(lang, texts)
	if len(missing) == 0 {
		return
	}

	if s.shared != nil {
		rest := missing[:0:0]
		for _, text := range missing {
			key := CacheKey(lang, s.scope, text)
			v, ok, err := s.shared.Get(ctx, key)
			if err != nil {
				slog.Debug("translation cache read failed", "err", err)
			}
			if ok {
				s.store(key, v)
				continue
			}
			rest = append(rest, text)
		}
		missing = rest
	}
	if len(missing) == 0 || s.remote == nil {
		return
	}

	flightKey := string(lang) + "|" + s.scope + "|" + strings.Join(missing, "\x00")
	v, err, _ := s.group.Do(flightKey, func() (any, error) {
		return s.remote.Translate(ctx, missing, lang, s.scope)
	})
	if err != nil {
		slog.Warn("remote translation failed, using original text", "language", lang, "count", len(missing), "err", err)
		return
	}

	translations, _ := v.([]string)
	if len(translations) != len(missing) {
		slog.Warn("remote translation count mismatch, using original text", "language", lang, "want", len(missing), "got", len(translations))
		return
	}
	for i, text := range missing {
		out := strings.TrimSpace(translations[i])
		if out == "" {
			continue
		}
		key := CacheKey(lang, s.scope, text)
		s.store(key, out)
		if s.shared != nil {
			if err := s.shared.Set(ctx, key, out); err != nil {
				slog.Debug("translation cache write failed", "err", err)
			}
		}
	}
}

func (s *Session) missing(lang Language, texts []string) []string {
	seen := make(map[string]bool, len(texts))
	var out []string

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, text := range texts {
		norm := Normalize(text)
		if norm == "" || seen[norm] || Known(text) {
			continue
		}
		seen[norm] = true
		if _, ok := s.entries[CacheKey(lang, s.scope, text)]; ok {
			continue
		}
		out = append(out, strings.TrimSpace(text))
	}
	return out
}

func (s *Session) store(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok && len(s.entries) >= s.maxEntries {
		return
	}
	s.entries[key] = value
}
