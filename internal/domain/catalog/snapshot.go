package catalog

import "errors"

var ErrRoomNotFound = errors.New("room has no rule set")

// Snapshot is an immutable, fully loaded catalog handed to one pricing
// run. The engine never fetches or caches rules itself; the store
// collaborator resolves a snapshot up front.
type Snapshot struct {
	roomRules map[string]RoomRuleSet
	resources map[string]Resource
}

func NewSnapshot(roomRules map[string]RoomRuleSet, resources map[string]Resource) *Snapshot {
	if roomRules == nil {
		roomRules = map[string]RoomRuleSet{}
	}
	if resources == nil {
		resources = map[string]Resource{}
	}
	return &Snapshot{roomRules: roomRules, resources: resources}
}

func (s *Snapshot) RulesFor(roomID string) (RoomRuleSet, error) {
	rs, ok := s.roomRules[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return rs, nil
}

// Resource looks up a catalog entry. A miss is not an error: requested
// ids absent from the catalog are skipped to stay permissive of catalog
// drift.
func (s *Snapshot) Resource(id string) (Resource, bool) {
	res, ok := s.resources[id]
	return res, ok
}

func (s *Snapshot) RoomIDs() []string {
	ids := make([]string, 0, len(s.roomRules))
	for id := range s.roomRules {
		ids = append(ids, id)
	}
	return ids
}
