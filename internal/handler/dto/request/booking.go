package request

// SlotID stays a plain string here: identifiers are opaque on the wire, and
// an unparseable id is handled as "no such slot" rather than a format error.
type CreateBookingRequest struct {
	SlotID      string `json:"slotId" binding:"required"`
	ClientName  string `json:"clientName" binding:"required"`
	ClientEmail string `json:"clientEmail" binding:"required"`
	ClientPhone string `json:"clientPhone"`
}
