package model

// Cafe represents a directory entry for one cafe.  This struct corresponds to
// a row in the `cafes` table.  The json tags match the wire payload of the
// public API exactly, so the struct serializes directly in responses.
//
// Only CoffeePrice is ever mutated after creation, via the dedicated
// price-update endpoint.
type Cafe struct {
	ID           int64  `json:"id"`             // cafes.id
	Name         string `json:"name"`           // cafes.name, unique
	MapURL       string `json:"map_url"`        // cafes.map_url
	ImgURL       string `json:"img_url"`        // cafes.img_url
	Location     string `json:"location"`       // cafes.location
	Seats        string `json:"seats"`          // cafes.seats, free-form count such as "20-30"
	HasToilet    bool   `json:"has_toilet"`     // cafes.has_toilet
	HasWifi      bool   `json:"has_wifi"`       // cafes.has_wifi
	HasSockets   bool   `json:"has_sockets"`    // cafes.has_sockets
	CanTakeCalls bool   `json:"can_take_calls"` // cafes.can_take_calls
	CoffeePrice  string `json:"coffee_price"`   // cafes.coffee_price
}
