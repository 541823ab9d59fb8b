package dtos

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PirepRequest is a manual flight report. Times are zulu "HH:MM".
type PirepRequest struct {
	FlightNumber  string `json:"flight_number"`
	Aircraft      string `json:"aircraft"`
	LandingRate   int    `json:"landing_rate"`
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time"`
	Remarks       string `json:"remarks,omitempty"`
}

type TourValidationRequest struct {
	Tour       string `json:"tour"`
	Leg        int    `json:"leg"`
	Aircraft   string `json:"aircraft"`
	Departure  string `json:"departure"`
	Arrival    string `json:"arrival"`
	FlightDate string `json:"flight_date"`
	BlockTime  string `json:"block_time"`
	Remarks    string `json:"remarks,omitempty"`
}

type ContactRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type RSVPRequest struct {
	Status string `json:"status"`
}
