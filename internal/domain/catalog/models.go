package catalog

// EyeColor is a row of the Eye_Color table.
type EyeColor struct {
	Name  string `json:"name"`
	Color uint8  `json:"color"`
}

// HairColor is a row of the Hair_Color table.
type HairColor struct {
	Name  string `json:"name"`
	Color uint8  `json:"color"`
}

// Hair is a hairstyle available for a gender.
type Hair struct {
	ID   int64  `json:"id"`
	Addr string `json:"addr"`
	Name string `json:"name"`
}

// FacePaint is a row of the FacePaint table.
type FacePaint struct {
	ID           int64  `json:"id"`
	TextureAlias string `json:"texture_alias"`
}

// Extra is a cosmetic add-on (wings, beards) bound to a gender and species.
type Extra struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
	Addr    string `json:"addr"`
}
