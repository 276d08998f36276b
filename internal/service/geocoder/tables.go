package geocoder

import "github.com/Temutjin2k/delivery-pricing/internal/domain/models"

// Place is a named coordinate of a static lookup table.
type Place struct {
	Name  string
	Point models.GeoPoint
}

// Tables hold the static coordinates of a deployment region.
// Each table is scanned in order and the first match wins.
type Tables struct {
	Streets       []Place
	Neighborhoods []Place
	Cities        []Place

	// StateCentroid answers postal codes whose locality is not in Cities.
	StateCentroid models.GeoPoint
	// RegionalCentroid is the last resort of the static tier.
	RegionalCentroid models.GeoPoint
}

// Aliases are extra tokens recognized as already naming a locality.
type Aliases struct {
	Region  []string
	Country []string
}

func DefaultAliases() Aliases {
	return Aliases{
		Region:  []string{"bahia"},
		Country: []string{"brazil"},
	}
}

// DefaultTables covers Conde, BA and the surrounding Litoral Norte.
func DefaultTables() Tables {
	return Tables{
		Streets: []Place{
			{Name: "floriano peixoto", Point: models.GeoPoint{Latitude: -11.8139, Longitude: -37.6132}},
			{Name: "rua da vila", Point: models.GeoPoint{Latitude: -11.8135, Longitude: -37.6135}},
			{Name: "praça da matriz", Point: models.GeoPoint{Latitude: -11.8131, Longitude: -37.6127}},
			{Name: "rua do fogo", Point: models.GeoPoint{Latitude: -11.8147, Longitude: -37.6118}},
			{Name: "orla de sitio do conde", Point: models.GeoPoint{Latitude: -11.8560, Longitude: -37.5650}},
		},
		Neighborhoods: []Place{
			{Name: "sitio do conde", Point: models.GeoPoint{Latitude: -11.8547, Longitude: -37.5667}},
			{Name: "barra do itariri", Point: models.GeoPoint{Latitude: -11.9601, Longitude: -37.6150}},
			{Name: "siribinha", Point: models.GeoPoint{Latitude: -11.8113, Longitude: -37.5530}},
			{Name: "poças", Point: models.GeoPoint{Latitude: -11.8225, Longitude: -37.5400}},
			{Name: "cobó", Point: models.GeoPoint{Latitude: -11.7900, Longitude: -37.5300}},
			{Name: "centro", Point: models.GeoPoint{Latitude: -11.8136, Longitude: -37.6106}},
		},
		Cities: []Place{
			{Name: "conde", Point: models.GeoPoint{Latitude: -11.8136, Longitude: -37.6106}},
			{Name: "esplanada", Point: models.GeoPoint{Latitude: -11.7942, Longitude: -37.9450}},
			{Name: "jandaíra", Point: models.GeoPoint{Latitude: -11.5636, Longitude: -37.7856}},
			{Name: "entre rios", Point: models.GeoPoint{Latitude: -11.9419, Longitude: -38.0842}},
			{Name: "cardeal da silva", Point: models.GeoPoint{Latitude: -11.9475, Longitude: -37.9486}},
			{Name: "alagoinhas", Point: models.GeoPoint{Latitude: -12.1356, Longitude: -38.4192}},
			{Name: "mata de são joão", Point: models.GeoPoint{Latitude: -12.5307, Longitude: -38.2995}},
			{Name: "camaçari", Point: models.GeoPoint{Latitude: -12.6996, Longitude: -38.3263}},
			{Name: "lauro de freitas", Point: models.GeoPoint{Latitude: -12.8978, Longitude: -38.3271}},
			{Name: "feira de santana", Point: models.GeoPoint{Latitude: -12.2664, Longitude: -38.9663}},
			{Name: "salvador", Point: models.GeoPoint{Latitude: -12.9714, Longitude: -38.5014}},
		},
		StateCentroid:    models.GeoPoint{Latitude: -12.5797, Longitude: -41.7007},
		RegionalCentroid: models.GeoPoint{Latitude: -11.9500, Longitude: -37.8500},
	}
}

// match returns the first place whose name occurs in the folded text as whole words.
// A plain substring test is not used: "vila" must not match "vilanova" and
// "conde" must not match "visconde".
func match(places []Place, folded string) (Place, bool) {
	for _, p := range places {
		if containsWord(folded, fold(p.Name)) {
			return p, true
		}
	}
	return Place{}, false
}

// lookup returns the place named exactly name, ignoring case and accents.
func lookup(places []Place, name string) (Place, bool) {
	name = fold(name)
	for _, p := range places {
		if fold(p.Name) == name {
			return p, true
		}
	}
	return Place{}, false
}
