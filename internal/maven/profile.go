package maven

import (
	"iter"
	"slices"
)

// ActivationOS activates a profile based on the operating system.
type ActivationOS struct {
	Name    string
	Family  string
	Arch    string
	Version string
}

// IsEmpty reports whether every field is unset.
func (o ActivationOS) IsEmpty() bool {
	return o == ActivationOS{}
}

// Activation holds the conditions under which a profile is active.
type Activation struct {
	ActiveByDefault *bool
	JDK             string
	OS              ActivationOS
}

// IsEmpty reports whether no condition is set.
func (a Activation) IsEmpty() bool {
	return a.ActiveByDefault == nil && a.JDK == "" && a.OS.IsEmpty()
}

// SetActiveByDefault sets the activeByDefault flag.
func (a *Activation) SetActiveByDefault(active bool) {
	a.ActiveByDefault = &active
}

// Profile is a conditionally activated overlay with its own nested build.
// A profile without an id is empty and never written.
type Profile struct {
	ID         string
	Activation Activation
	Build      *Build
}

// IsEmpty reports whether the profile has no id.
func (p Profile) IsEmpty() bool {
	return p.ID == ""
}

// ProfileOption customises a Profile created by NewProfile.
type ProfileOption func(*Profile)

// NewProfile returns a profile with an empty nested build and opts applied.
func NewProfile(id string, opts ...ProfileOption) Profile {
	p := Profile{ID: id, Build: NewBuild()}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// ProfileActivation customises the activation.
func ProfileActivation(fn func(*Activation)) ProfileOption {
	return func(p *Profile) { fn(&p.Activation) }
}

// ProfileBuild customises the nested build.
func ProfileBuild(fn func(*Build)) ProfileOption {
	return func(p *Profile) { fn(p.Build) }
}

// ProfileContainer holds profiles in declaration order.
type ProfileContainer struct {
	profiles []Profile
}

// Add appends p. A profile with the id of an existing profile replaces it in place.
func (c *ProfileContainer) Add(p Profile) {
	if p.ID != "" {
		for i := range c.profiles {
			if c.profiles[i].ID == p.ID {
				c.profiles[i] = p
				return
			}
		}
	}

	c.profiles = append(c.profiles, p)
}

// Get returns the profile with the given id.
func (c *ProfileContainer) Get(id string) (Profile, bool) {
	for _, p := range c.profiles {
		if p.ID == id {
			return p, true
		}
	}

	return Profile{}, false
}

// Items returns a restartable iterator over the profiles.
func (c *ProfileContainer) Items() iter.Seq[Profile] {
	return slices.Values(c.profiles)
}

// Values returns the profiles in declaration order.
func (c *ProfileContainer) Values() []Profile {
	return slices.Clone(c.profiles)
}

// IsEmpty reports whether no profile has been added.
func (c *ProfileContainer) IsEmpty() bool {
	return len(c.profiles) == 0
}
