package content

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/windseal/windseal-cms/internal/uniuri"
)

var (
	// ErrBannerIndex is returned when a banner removal names an index that
	// does not exist.
	ErrBannerIndex = errors.New("content: no banner at that index")
)

// SettingsEditor stages edits to the site settings before they are saved.
// Banner and strength changes accumulate on a private draft; nothing is
// published until Commit. When the published settings change underneath the
// editor, the draft is discarded and re-initialized from the new value.
type SettingsEditor struct {
	mu        sync.Mutex
	singleton *Singleton[SiteSettings]
	draft     SiteSettings
}

// NewSettingsEditor creates an editor over the given settings singleton. The
// editor subscribes to the singleton so external replacements reset its
// draft.
func NewSettingsEditor(s *Singleton[SiteSettings]) *SettingsEditor {
	e := &SettingsEditor{singleton: s, draft: s.Get()}

	s.OnChange(func(v SiteSettings) {
		e.mu.Lock()
		defer e.mu.Unlock()

		e.draft = v.Clone()
	})

	return e
}

// Draft returns a copy of the staged settings.
func (e *SettingsEditor) Draft() SiteSettings {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.draft.Clone()
}

// SetScalars applies scalar field edits to the draft. The hook must not
// touch HeroBanners or Strengths, those are staged through their own
// methods.
func (e *SettingsEditor) SetScalars(apply func(*SiteSettings)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	apply(&e.draft)
}

// AddBanner appends a hero banner URL to the draft. Blank input is ignored.
func (e *SettingsEditor) AddBanner(url string) {
	if url = strings.TrimSpace(url); url == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft.HeroBanners = append(e.draft.HeroBanners, url)
}

// RemoveBanner deletes the banner at the given position, preserving the
// order of the rest.
func (e *SettingsEditor) RemoveBanner(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.draft.HeroBanners) {
		return errors.Wrapf(ErrBannerIndex, "remove banner %d of %d", index, len(e.draft.HeroBanners))
	}

	e.draft.HeroBanners = append(e.draft.HeroBanners[:index], e.draft.HeroBanners[index+1:]...)

	return nil
}

// AddStrength appends a strength item with a fresh ID. Unknown icon names
// are normalized to the default icon; blank text is ignored.
func (e *SettingsEditor) AddStrength(iconName, text string) StrengthItem {
	if text = strings.TrimSpace(text); text == "" {
		return StrengthItem{}
	}

	item := StrengthItem{
		ID:       uniuri.New(),
		IconName: NormalizeIcon(iconName),
		Text:     text,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft.Strengths = append(e.draft.Strengths, item)

	return item
}

// RemoveStrength deletes the strength item with the given ID.
func (e *SettingsEditor) RemoveStrength(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, item := range e.draft.Strengths {
		if item.ID == id {
			e.draft.Strengths = append(e.draft.Strengths[:i], e.draft.Strengths[i+1:]...)
			return nil
		}
	}

	return errors.Wrapf(ErrNotFound, "remove strength %q", id)
}

// Discard drops all staged edits and reloads the draft from the published
// settings.
func (e *SettingsEditor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft = e.singleton.Get()
}

// Commit publishes the draft wholesale. The singleton's change notification
// re-initializes the draft from the newly published value, so the lock is
// released before Replace runs.
func (e *SettingsEditor) Commit() {
	e.mu.Lock()
	next := e.draft.Clone()
	e.mu.Unlock()

	e.singleton.Replace(next)
}
