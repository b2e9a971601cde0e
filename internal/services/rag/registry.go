package rag

import (
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
)

// Registry holds the configured system profiles keyed by system type.
// Profiles without their own system prompt or override payload pick up the
// built-in defaults for their key.
type Registry struct {
	profiles map[string]models.SystemProfile
	order    []string
}

func NewRegistry(profiles []models.SystemProfile) *Registry {
	r := &Registry{
		profiles: make(map[string]models.SystemProfile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}

	for _, profile := range profiles {
		if profile.SystemPrompt == "" {
			profile.SystemPrompt = defaultPrompts[profile.Key]
		}
		if profile.Override != nil && profile.Override.Response == "" {
			profile.Override.Response = defaultOverrideResponses[profile.Key]
		}
		r.profiles[profile.Key] = profile
		r.order = append(r.order, profile.Key)
	}

	return r
}

// Resolve looks up a profile by system type.
func (r *Registry) Resolve(key string) (models.SystemProfile, error) {
	profile, ok := r.profiles[key]
	if !ok {
		return models.SystemProfile{}, models.UnknownSystemError(key)
	}
	return profile, nil
}

// List returns profile key and display name pairs in configuration order.
func (r *Registry) List() []interfaces.ProfileInfo {
	infos := make([]interfaces.ProfileInfo, 0, len(r.order))
	for _, key := range r.order {
		profile := r.profiles[key]
		infos = append(infos, interfaces.ProfileInfo{
			Key:         profile.Key,
			DisplayName: profile.DisplayName,
		})
	}
	return infos
}

// Keys returns the profile keys in configuration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.order...)
}
