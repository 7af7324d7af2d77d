package entity

import "strings"

// MaskedIdentity is the viewer-safe identity derived from a full name.
type MaskedIdentity struct {
	Name     string // First name plus abbreviated last name, e.g. "Ada L.".
	Initials string // Uppercase initials of the masked name, e.g. "AL".
}

// MaskName derives the display identity shown to recruiters and anonymous
// tracking-link viewers. The surname is reduced to a single initial; this is
// a privacy boundary, so the derivation happens once at ingestion and the
// full name flows nowhere else.
func MaskName(fullName string) MaskedIdentity {
	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return MaskedIdentity{}
	}

	name := tokens[0]
	if len(tokens) > 1 {
		last := tokens[len(tokens)-1]
		name = name + " " + string([]rune(last)[:1]) + "."
	}

	var initials strings.Builder
	for _, part := range strings.Fields(name) {
		initials.WriteString(strings.ToUpper(string([]rune(part)[:1])))
	}

	return MaskedIdentity{Name: name, Initials: initials.String()}
}
