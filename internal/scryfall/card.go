package scryfall

// Card is the subset of a Scryfall card object rendered by Format.
// Pointer and slice fields are nil when the key is absent or null.
type Card struct {
	Name          string   `json:"name"`
	OracleText    *string  `json:"oracle_text"`
	ManaCost      *string  `json:"mana_cost"`
	Colors        []string `json:"colors"`
	ColorIdentity []string `json:"color_identity"`
	TypeLine      *string  `json:"type_line"`
	Power         *string  `json:"power"`
	Toughness     *string  `json:"toughness"`
	Rarity        *string  `json:"rarity"`
	SetName       *string  `json:"set_name"`
	Prices        *Prices  `json:"prices"`
}

// Prices holds market prices as decimal strings, as Scryfall reports them.
type Prices struct {
	USD     *string `json:"usd"`
	EUR     *string `json:"eur"`
	USDFoil *string `json:"usd_foil"`
	EURFoil *string `json:"eur_foil"`
}

// page is one response from a paginated list endpoint. When Object is
// "error" the remaining error fields are populated instead of Data.
type page struct {
	Object   string  `json:"object"`
	HasMore  bool    `json:"has_more"`
	NextPage string  `json:"next_page"`
	Data     *[]Card `json:"data"`

	Code    string `json:"code"`
	Status  int    `json:"status"`
	Details string `json:"details"`
}
