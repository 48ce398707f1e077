package core

import (
	"fmt"
	"sort"
	"sync"
)

// Profile declares one deployment's registration form: its logical fields
// and matching rules, which fields carry identity, the role projections,
// and the attachment categories. Near-duplicate deployments differ only in
// this declarative table, not in code.
type Profile struct {
	Name   string
	Fields []FieldSpec

	// Identity fields, by logical name. ID correlates a row with its
	// attachments; First/Last/Birthday drive matching and the schema check.
	IDField         string
	FirstNameField  string
	MiddleNameField string
	LastNameField   string
	BirthdayField   string
	RoleLabelField  string

	// Projections is the closed set of restricted role views. Roles not
	// present here fall back to the unrestricted view.
	Projections []Projection

	// Attachments lists the attachment categories this deployment serves.
	Attachments []AttachmentSpec
}

// Field returns the spec for a logical field name.
func (p Profile) Field(name string) (FieldSpec, bool) {
	for _, spec := range p.Fields {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// Attachment returns the spec for an attachment category.
func (p Profile) Attachment(category string) (AttachmentSpec, bool) {
	for _, a := range p.Attachments {
		if a.Category == category {
			return a, true
		}
	}
	return AttachmentSpec{}, false
}

// elaborationFor returns the logical name of the free-text field elaborating
// the given multi-select field, or empty when none is declared.
func (p Profile) elaborationFor(name string) string {
	for _, spec := range p.Fields {
		if spec.ElaborationOf == name {
			return spec.Name
		}
	}
	return ""
}

var (
	registry   = make(map[string]Profile)
	registryMu sync.RWMutex
)

// Register adds a profile to the registry.
// Panics if a profile with the same name is already registered.
func Register(p Profile) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[p.Name]; exists {
		panic(fmt.Sprintf("profile already registered: %s", p.Name))
	}
	registry[p.Name] = p
}

// GetProfile returns a profile by name.
// Returns false if not found.
func GetProfile(name string) (Profile, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[name]
	return p, ok
}

// ProfileNames returns all registered profile names, sorted.
func ProfileNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClearProfiles removes all registered profiles.
// Primarily useful for testing.
func ClearProfiles() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Profile)
}
