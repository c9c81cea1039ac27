package pricing

import (
	"fmt"
	"math"
	"time"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/money"
	"venue-pricing/internal/pkg/idgen"
)

// SurchargeSet is the resolved add-on cost of one booking: slot items
// apply once per booking, room items are scoped to a single room, and
// custom items are quoted outside the engine.
type SurchargeSet struct {
	Slot   []LineItem
	Rooms  map[string][]LineItem
	Custom []LineItem
}

func (s SurchargeSet) RoomItems(roomID string) []LineItem {
	return s.Rooms[roomID]
}

// roomItem keeps the originating resource id alongside the emitted item
// so bundling suppression stays order-independent.
type roomItem struct {
	resource string
	item     LineItem
}

type surchargeContext struct {
	booking    Booking
	snap       *catalog.Snapshot
	policy     Policy
	ids        idgen.Generator
	start      time.Time
	totalHours int

	slot   []LineItem
	rooms  map[string][]roomItem
	custom []LineItem
}

// surchargeHandler prices one requested resource. Handlers are pure
// over the context; dispatch is a capability table so a new resource
// behavior is a table entry, not a branch threaded through the engine.
type surchargeHandler func(ctx *surchargeContext, res catalog.Resource)

var surchargeHandlers = map[string]surchargeHandler{
	ResourceFood:      handleFood,
	ResourceDoorStaff: handleDefault,
	ResourcePianoTune: handleDefault,
	ResourceBackline:  handleBackline,
	ResourceProjector: handleProjector,
	ResourceAudioTech: handleAudioTech,
	ResourceBartender: handleBartender,
}

// ResolveSurcharges walks the requested resource list against the
// catalog. Requested ids missing from the catalog are skipped. The
// result is independent of resource ordering apart from output order.
func ResolveSurcharges(b Booking, snap *catalog.Snapshot, pol Policy, ids idgen.Generator) SurchargeSet {
	start, _, err := b.Window()
	if err != nil {
		return SurchargeSet{Rooms: map[string][]LineItem{}}
	}

	ctx := &surchargeContext{
		booking:    b,
		snap:       snap,
		policy:     pol,
		ids:        ids,
		start:      start,
		totalHours: TotalHours(b),
		rooms:      map[string][]roomItem{},
	}

	ctx.earlyOpening()
	ctx.security()

	for _, id := range b.Resources {
		if id == ResourceSecurity {
			continue // handled above, independent of request order
		}
		res, ok := snap.Resource(id)
		if !ok {
			continue
		}
		handler, ok := surchargeHandlers[id]
		if !ok {
			handler = handleDefault
		}
		handler(ctx, res)
	}

	ctx.suppressBundled()

	return ctx.finalize()
}

// TotalHours is the truncated whole-hour length of the booking window;
// zero when the window does not parse.
func TotalHours(b Booking) int {
	start, end, err := b.Window()
	if err != nil {
		return 0
	}
	return wholeHours(start, end)
}

func (ctx *surchargeContext) item(desc, sub string, cost money.Money, required, editable bool) LineItem {
	return LineItem{
		ID:             ctx.ids.NewID(),
		Description:    desc,
		SubDescription: sub,
		Cost:           cost,
		Required:       required,
		Editable:       editable,
	}
}

// earlyOpening bills staff for every started hour the booking begins
// before the venue opens.
func (ctx *surchargeContext) earlyOpening() {
	opening := time.Date(ctx.start.Year(), ctx.start.Month(), ctx.start.Day(),
		ctx.policy.OpeningHour, 0, 0, 0, ctx.start.Location())
	if !ctx.start.Before(opening) {
		return
	}

	hoursBefore := int(math.Ceil(opening.Sub(ctx.start).Hours()))
	cost := ctx.policy.EarlyOpenRate.MulHours(hoursBefore)
	ctx.slot = append(ctx.slot, ctx.item(
		"Early opening staff",
		fmt.Sprintf("%d hour(s) before opening", hoursBefore),
		cost, true, false,
	))
}

// security emits the externally quoted security item when the parking
// lot is booked or security is explicitly requested. Only a booked
// parking lot makes it required.
func (ctx *surchargeContext) security() {
	lotBooked := ctx.booking.includesRoom(ctx.policy.ParkingLotRoomID)
	if !lotBooked && !ctx.booking.requests(ResourceSecurity) {
		return
	}

	ctx.custom = append(ctx.custom, ctx.item(
		"Security",
		"quoted separately",
		money.FromCents(0), lotBooked, true,
	))
}

func handleFood(ctx *surchargeContext, res catalog.Resource) {
	ctx.slot = append(ctx.slot, ctx.item(res.Description, res.SubDescription, res.Cost, true, false))
}

func handleBackline(ctx *surchargeContext, res catalog.Resource) {
	for _, roomID := range ctx.booking.RoomIDs {
		cost := res.Cost
		desc := res.Description
		if ov, ok := res.OverrideFor(roomID); ok {
			if ov.Cost != nil {
				cost = *ov.Cost
			}
			if ov.Description != "" {
				desc = ov.Description
			}
		}
		ctx.addRoomItem(roomID, ResourceBackline, ctx.item(desc, res.SubDescription, cost, false, false))
	}
}

func handleProjector(ctx *surchargeContext, res catalog.Resource) {
	for _, roomID := range ctx.booking.RoomIDs {
		cost := res.Cost
		if ov, ok := res.OverrideFor(roomID); ok && ov.Cost != nil {
			cost = *ov.Cost
		}
		ctx.addRoomItem(roomID, ResourceProjector, ctx.item(res.Description, res.SubDescription, cost, false, false))
	}
}

// handleAudioTech bills the base coverage plus a separate overtime item
// for any hours beyond it.
func handleAudioTech(ctx *surchargeContext, res catalog.Resource) {
	baseHours := res.BaseHours
	if baseHours <= 0 {
		baseHours = ctx.policy.AudioTechBaseHours
	}

	ctx.slot = append(ctx.slot, ctx.item(
		res.Description,
		fmt.Sprintf("covers up to %d hours", baseHours),
		res.Cost, false, false,
	))

	overtime := ctx.totalHours - baseHours
	if overtime > 0 {
		ctx.slot = append(ctx.slot, ctx.item(
			res.Description+" overtime",
			fmt.Sprintf("%d hour(s) beyond base coverage", overtime),
			res.OvertimeRate.MulHours(overtime), false, false,
		))
	}
}

// handleBartender comps the bartender for large private events.
func handleBartender(ctx *surchargeContext, res catalog.Resource) {
	if ctx.booking.Private && ctx.booking.ExpectedAttendance > ctx.policy.BartenderCompAttendance {
		ctx.slot = append(ctx.slot, ctx.item(
			res.Description,
			fmt.Sprintf("complimentary for private events over %d guests", ctx.policy.BartenderCompAttendance),
			money.FromCents(0), false, false,
		))
		return
	}
	ctx.slot = append(ctx.slot, ctx.item(res.Description, res.SubDescription, res.Cost.MulHours(ctx.totalHours), false, false))
}

// handleDefault dispatches on the catalog kind: flat once, hourly over
// total booking hours, base with overtime, custom quoted at zero.
func handleDefault(ctx *surchargeContext, res catalog.Resource) {
	switch res.Kind {
	case catalog.ResourceHourly:
		ctx.slot = append(ctx.slot, ctx.item(res.Description, res.SubDescription, res.Cost.MulHours(ctx.totalHours), false, false))
	case catalog.ResourceBase:
		handleAudioTech(ctx, res)
	case catalog.ResourceCustom:
		ctx.custom = append(ctx.custom, ctx.item(res.Description, "quoted separately", money.FromCents(0), false, true))
	default:
		ctx.slot = append(ctx.slot, ctx.item(res.Description, res.SubDescription, res.Cost, false, false))
	}
}

func (ctx *surchargeContext) addRoomItem(roomID, resource string, item LineItem) {
	ctx.rooms[roomID] = append(ctx.rooms[roomID], roomItem{resource: resource, item: item})
}

// suppressBundled drops a room's projector item when its backline
// override already includes one. Runs after all handlers so the result
// does not depend on request ordering.
func (ctx *surchargeContext) suppressBundled() {
	backline, ok := ctx.snap.Resource(ResourceBackline)
	if !ok || !ctx.booking.requests(ResourceBackline) {
		return
	}

	for roomID, items := range ctx.rooms {
		ov, ok := backline.OverrideFor(roomID)
		if !ok || !ov.IncludesProjector {
			continue
		}
		kept := items[:0]
		for _, ri := range items {
			if ri.resource == ResourceProjector {
				continue
			}
			kept = append(kept, ri)
		}
		ctx.rooms[roomID] = kept
	}
}

func (ctx *surchargeContext) finalize() SurchargeSet {
	rooms := make(map[string][]LineItem, len(ctx.rooms))
	for roomID, items := range ctx.rooms {
		out := make([]LineItem, 0, len(items))
		for _, ri := range items {
			out = append(out, ri.item)
		}
		rooms[roomID] = out
	}
	return SurchargeSet{Slot: ctx.slot, Rooms: rooms, Custom: ctx.custom}
}
