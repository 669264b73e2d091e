package content

// Country is a stop on the journey. Countries are visited in ascending
// VisitOrder; Landmarks lists landmark IDs in play order.
type Country struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	FlagEmoji  string   `json:"flagEmoji"`
	Landmarks  []string `json:"landmarks"`
	VisitOrder int      `json:"visitOrder"`
}

// Landmark is a point of interest tied to a country, the unit of progression.
// CountryName and CountryFlagEmoji are denormalized for display.
type Landmark struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ImageName        string `json:"imageName"`
	CountryID        string `json:"countryId"`
	CountryName      string `json:"countryName"`
	CountryFlagEmoji string `json:"countryFlagEmoji"`
	FunFact          string `json:"funFact"`
}
