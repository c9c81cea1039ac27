package response

import (
	"venue-pricing/internal/usecase"
)

// The estimate surface returns the usecase read models directly; they
// are already JSON-shaped views decoupled from the domain types.

type BatchResponse = usecase.BatchView

type RoomRulesResponse struct {
	Rooms []usecase.RoomRulesView `json:"rooms"`
}

func FromBatchView(view *usecase.BatchView) *BatchResponse {
	return view
}

func FromRoomRulesViews(views []usecase.RoomRulesView) RoomRulesResponse {
	return RoomRulesResponse{Rooms: views}
}
