package entities

// FlightRecord is one row of an fsHub flight listing. Pilot is free text as
// shown by fsHub and is only loosely related to PilotRecord.ID.
type FlightRecord struct {
	Pilot       string `json:"pilot"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Aircraft    string `json:"aircraft"`
	LandingRate string `json:"landing_rate,omitempty"`
	Date        string `json:"date,omitempty"`
}

// FlightLog is what the flight-log fetcher hands back. Success is false when
// the page could not be fetched or no table looked like a flight log; callers
// must branch on it rather than on emptiness.
type FlightLog struct {
	Records []FlightRecord `json:"records"`
	Success bool           `json:"success"`
}

// Limit returns a copy holding at most n records
func (l FlightLog) Limit(n int) FlightLog {
	if n < 0 || len(l.Records) <= n {
		return l
	}
	out := make([]FlightRecord, n)
	copy(out, l.Records[:n])
	return FlightLog{Records: out, Success: l.Success}
}

// VAStats are the airline-wide figures from the fsHub overview page
type VAStats struct {
	Flights      string `json:"flights"`
	Hours        string `json:"hours"`
	ActivePilots int    `json:"active_pilots"`
	RosterHours  string `json:"roster_hours"`
	AvgLanding   string `json:"avg_landing"`
	FromUpstream bool   `json:"from_upstream"`
}
