package dto

// Pointer fields distinguish "absent" from zero values so that missing body
// fields can be rejected with a MissingFieldError.
type UpsertHoldingReq struct {
	Symbol *string  `json:"symbol"`
	Units  *float64 `json:"units"`
}

type SetUnitsReq struct {
	Units *float64 `json:"units"`
}
