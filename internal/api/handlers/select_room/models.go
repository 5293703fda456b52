package select_room

type SelectRoomRequest struct {
	RoomID int64 `json:"roomId"`
}
