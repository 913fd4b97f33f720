package models

// LikeSet holds the user ids that currently like a post. It serializes as a
// key-presence map keyed by user id, which is the shape existing documents
// and clients already use; the boolean value carries no meaning beyond the
// key being present.
type LikeSet map[string]bool

// Has reports membership by key presence, ignoring the stored value.
func (s LikeSet) Has(userID string) bool {
	_, ok := s[userID]
	return ok
}

func (s LikeSet) Add(userID string) {
	s[userID] = true
}

func (s LikeSet) Remove(userID string) {
	delete(s, userID)
}

// Toggle flips the user's membership and reports whether the user likes the
// post afterwards.
func (s LikeSet) Toggle(userID string) bool {
	if s.Has(userID) {
		s.Remove(userID)
		return false
	}
	s.Add(userID)
	return true
}

func (s LikeSet) Count() int {
	return len(s)
}
