package types

// Place is a named geographic point. Places come from geocoding results or
// from a map click; they are not persisted unless saved as a favorite.
type Place struct {
	Name string  `json:"name" example:"Kolhapur, Maharashtra, India"`
	Lat  float64 `json:"lat" example:"16.7049873"`
	Lon  float64 `json:"lon" example:"74.2432527"`
}
