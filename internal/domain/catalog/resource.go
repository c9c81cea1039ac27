package catalog

import (
	"errors"
	"strings"

	"venue-pricing/internal/domain/money"
)

var ErrInvalidResourceKind = errors.New("invalid resource kind")

// ResourceKind discriminates how a requested resource is billed.
//
//   - flat: catalog cost once per booking
//   - hourly: catalog cost times total booking hours
//   - base: catalog cost covers BaseHours, remainder billed at OvertimeRate
//   - custom: quoted outside the engine, emitted at zero and editable
type ResourceKind string

const (
	ResourceFlat   ResourceKind = "flat"
	ResourceHourly ResourceKind = "hourly"
	ResourceBase   ResourceKind = "base"
	ResourceCustom ResourceKind = "custom"
)

func (k ResourceKind) String() string {
	return string(k)
}

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceFlat, ResourceHourly, ResourceBase, ResourceCustom:
		return true
	default:
		return false
	}
}

func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidResourceKind
	}
	return k, nil
}

// RoomOverride replaces a resource's cost or description for one room.
// IncludesProjector marks the override as bundling the projector, which
// suppresses a separate projector line item for that room.
type RoomOverride struct {
	Cost              *money.Money
	Description       string
	IncludesProjector bool
}

// Resource is one entry of the add-on catalog.
type Resource struct {
	ID             string
	Kind           ResourceKind
	Cost           money.Money
	Description    string
	SubDescription string
	RoomOverrides  map[string]RoomOverride

	// Base-kind billing: Cost covers BaseHours, overtime beyond that is
	// billed per hour at OvertimeRate.
	BaseHours    int
	OvertimeRate money.Money
}

// OverrideFor returns the room-specific override, if any.
func (r Resource) OverrideFor(roomID string) (RoomOverride, bool) {
	ov, ok := r.RoomOverrides[roomID]
	return ov, ok
}
