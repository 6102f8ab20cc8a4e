package entity

type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"region,omitempty"`
}

type Airport struct {
	IATA        string `json:"iata"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}
