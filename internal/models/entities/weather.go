package entities

// MetarFields holds the three decoded slots of a METAR line. Any slot that
// couldn't be recognised is "N/A".
type MetarFields struct {
	Wind        string `json:"wind"`
	Temperature string `json:"temperature"`
	Pressure    string `json:"pressure"`
}

// WeatherReport is a METAR fetch result. Raw may be a sentinel string, in
// which case Available is false.
type WeatherReport struct {
	ICAO      string      `json:"icao"`
	Raw       string      `json:"raw"`
	Fields    MetarFields `json:"fields"`
	Available bool        `json:"available"`
}

// ForecastReport is a TAF fetch result
type ForecastReport struct {
	ICAO      string `json:"icao"`
	Raw       string `json:"raw"`
	Available bool   `json:"available"`
}
