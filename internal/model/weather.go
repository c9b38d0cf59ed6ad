package model

// WeatherKind selects the icon for a weather entry.
type WeatherKind string

const (
	Sunny  WeatherKind = "sunny"
	Partly WeatherKind = "partly"
	Cloudy WeatherKind = "cloudy"
	Rainy  WeatherKind = "rainy"
)

// Weather is placeholder data: April averages for Antwerp, not a forecast.
type Weather struct {
	Day    DayID
	High   int // °C
	Low    int // °C
	Kind   WeatherKind
	Desc   string
	Rain   int // % chance
	WindKm int // km/h
}

const WeatherCaption = "Vær i Antwerpen · historisk gjennomsnitt for april"

var weather = []Weather{
	{Day: Friday24, High: 15, Low: 8, Kind: Partly, Desc: "Delvis skyet", Rain: 20, WindKm: 14},
	{Day: Saturday25, High: 16, Low: 9, Kind: Sunny, Desc: "Mest sol", Rain: 10, WindKm: 11},
	{Day: Sunday26, High: 14, Low: 7, Kind: Cloudy, Desc: "Overskyet", Rain: 40, WindKm: 16},
	{Day: Monday27, High: 13, Low: 7, Kind: Rainy, Desc: "Lett regn", Rain: 65, WindKm: 18},
}

// WeatherTable returns the static table in day order.
func WeatherTable() []Weather {
	out := make([]Weather, len(weather))
	copy(out, weather)
	return out
}

// WeatherFor returns the entry for a day, if any.
func WeatherFor(id DayID) (Weather, bool) {
	for _, w := range weather {
		if w.Day == id {
			return w, true
		}
	}
	return Weather{}, false
}
