package entities

// Identity is a membership-tier label used to select which unit price
// applies to a catalog item (e.g. "general", "vip", "staff").
//
// Domain notes:
//   - "general" is the fallback tier: it applies whenever a more specific
//     tier has no usable value.
//   - "all" is a filter-only pseudo identity accepted by listing endpoints;
//     it is never a valid pricing identity.
type Identity string

const (
	IdentityGeneral Identity = "general"
	IdentityAll     Identity = "all"
)

// IdentitySet is a set of identities, used for visibility derivation and for
// role-based restrictions threaded in from the caller.
type IdentitySet map[Identity]struct{}

func NewIdentitySet(ids ...Identity) IdentitySet {
	s := make(IdentitySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IdentitySet) Has(id Identity) bool {
	_, ok := s[id]
	return ok
}
