package request

// AddPlayerRequest is the request body for seating a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// SetImpostorCountRequest is the request body for choosing the impostor count
type SetImpostorCountRequest struct {
	Count *int `json:"count"`
}

// SelectSuspectRequest is the request body for selecting a suspect. An empty
// or absent player_id clears the selection.
type SelectSuspectRequest struct {
	PlayerID string `json:"player_id,omitempty"`
}
