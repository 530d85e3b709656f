// Package data holds the compiled-in content catalog: the travelogue and
// daily-life tables the database is seeded from, and the travel-map trips
// and markers served read-only. Admin edits live in the database and win
// over these defaults.
package data

import "github.com/ivylu/wanderlog-api/internal/models"

type TransportMode string

const (
	TransportAirplane TransportMode = "airplane"
	TransportCar      TransportMode = "car"
	TransportWalking  TransportMode = "walking"
	TransportTrain    TransportMode = "train"
	TransportBus      TransportMode = "bus"
	TransportBoat     TransportMode = "boat"
)

type TripLocation struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Lat           float64       `json:"lat"`
	Lng           float64       `json:"lng"`
	Date          string        `json:"date,omitempty"`
	TransportMode TransportMode `json:"transport_mode,omitempty"`
	Link          string        `json:"link,omitempty"`
}

type Trip struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Year        string         `json:"year"`
	Color       string         `json:"color"`
	Distance    string         `json:"distance,omitempty"`
	Description string         `json:"description,omitempty"`
	Locations   []TripLocation `json:"locations"`
}

type MapMarker struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description"`
}

// FindTravelogue returns the catalog entry for id, if any.
func FindTravelogue(id string) (models.Travelogue, bool) {
	for _, t := range Travelogues {
		if t.ID == id {
			return t, true
		}
	}
	return models.Travelogue{}, false
}

// FindDailyLife returns the catalog entry for id, if any.
func FindDailyLife(id string) (models.DailyLife, bool) {
	for _, d := range DailyLife {
		if d.ID == id {
			return d, true
		}
	}
	return models.DailyLife{}, false
}

var Travelogues = []models.Travelogue{
	// 2025 July - Europe
	{ID: "milan-2025-07", Title: "Milan, Italy", Description: "Fashion capital and historic architecture in Milan.", CoverImage: "/images/milan.jpg", Date: "2025-07", Route: "/Travelogues/milan-2025-07"},
	{ID: "verona-2025-07", Title: "Verona, Italy", Description: "Romantic city of Romeo and Juliet in Verona.", CoverImage: "/images/verona.jpg", Date: "2025-07", Route: "/Travelogues/verona-2025-07"},
	{ID: "venice-2025-07", Title: "Venice, Italy", Description: "Canals and bridges in the floating city of Venice.", CoverImage: "/images/venice.jpg", Date: "2025-07", Route: "/Travelogues/venice-2025-07"},
	{ID: "vienna-2025-07", Title: "Vienna, Austria", Description: "Imperial streets and coffee houses in Vienna.", CoverImage: "/images/vienna.jpg", Date: "2025-07", Route: "/Travelogues/vienna-2025-07"},
	{ID: "budapest-2025-07", Title: "Budapest, Hungary", Description: "Thermal baths and Danube views in Budapest.", CoverImage: "/images/budapest.jpg", Date: "2025-07", Route: "/Travelogues/budapest-2025-07"},
	{ID: "warsaw-2025-07", Title: "Warsaw, Poland", Description: "Rebuilt old town and history in Warsaw.", CoverImage: "/images/warsaw.jpg", Date: "2025-07", Route: "/Travelogues/warsaw-2025-07"},
	{ID: "riga-2025-07", Title: "Riga, Latvia", Description: "Art Nouveau architecture in Riga.", CoverImage: "/images/riga.jpg", Date: "2025-07", Route: "/Travelogues/riga-2025-07"},
	{ID: "tallinn-2025-07", Title: "Tallinn, Estonia", Description: "Medieval old town in Tallinn.", CoverImage: "/images/tallinn.jpg", Date: "2025-07", Route: "/Travelogues/tallinn-2025-07"},
	{ID: "helsinki-2025-07", Title: "Helsinki, Finland", Description: "Design and seaside in Helsinki.", CoverImage: "/images/helsinki.jpg", Date: "2025-07", Route: "/Travelogues/helsinki-2025-07"},
	{ID: "vilnius-2025-07", Title: "Vilnius, Lithuania", Description: "Baroque architecture in Vilnius.", CoverImage: "/images/vilnius.jpg", Date: "2025-07", Route: "/Travelogues/vilnius-2025-07"},

	// 2025 February - Korea (Seoul)
	{ID: "seoul-2025-02", Title: "Seoul, South Korea", Description: "Exploring Seoul's food, culture, and cityscapes.", CoverImage: "/images/seoul.jpg", Date: "2025-02", Route: "/Travelogues/seoul-2025-02"},

	// 2025 January - Kyushu
	{ID: "fukuoka-2025-01", Title: "Fukuoka, Japan", Description: "Exploring Fukuoka's food and harbor vibes.", CoverImage: "/images/fukuoka.jpg", Date: "2025-01", Route: "/Travelogues/fukuoka-2025-01"},
	{ID: "dazaifu-2025-01", Title: "Dazaifu, Japan", Description: "Shrines and heritage streets in Dazaifu.", CoverImage: "/images/dazaifu.jpg", Date: "2025-01", Route: "/Travelogues/dazaifu-2025-01"},
	{ID: "yufuin-2025-01", Title: "Yufuin, Japan", Description: "Onsen town and countryside views in Yufuin.", CoverImage: "/images/yufuin.jpg", Date: "2025-01", Route: "/Travelogues/yufuin-2025-01"},

	// 2024 December - China
	{ID: "beijing-2024-12", Title: "Beijing, China", Description: "Exploring Beijing's history and culture.", CoverImage: "/images/beijing.jpg", Date: "2024-12", Route: "/Travelogues/beijing-2024-12"},
	{ID: "nanjing-2024-12", Title: "Nanjing, China", Description: "Visiting the historic capital of Nanjing.", CoverImage: "/images/nanjing.jpg", Date: "2024-12", Route: "/Travelogues/nanjing-2024-12"},
	{ID: "hangzhou-2024-12", Title: "Hangzhou, China", Description: "Discovering West Lake and Hangzhou's charm.", CoverImage: "/images/hangzhou.jpg", Date: "2024-12", Route: "/Travelogues/hangzhou-2024-12"},
	{ID: "suzhou-2024-12", Title: "Suzhou, China", Description: "Exploring Suzhou's gardens and canals.", CoverImage: "/images/suzhou.jpg", Date: "2024-12", Route: "/Travelogues/suzhou-2024-12"},
	{ID: "shanghai-2024-12", Title: "Shanghai, China", Description: "Modern skyline and Bund views in Shanghai.", CoverImage: "/images/shanghai.jpg", Date: "2024-12", Route: "/Travelogues/shanghai-2024-12"},

	// 2024 July - Japan (Osaka & Kyoto)
	{ID: "osaka-2024-07", Title: "Osaka, Japan", Description: "Osaka eats and city vibes in midsummer.", CoverImage: "/images/osaka.jpg", Date: "2024-07", Route: "/Travelogues/osaka-2024-07"},
	{ID: "kyoto-2024-07", Title: "Kyoto, Japan", Description: "Temples and lanes of Kyoto in July.", CoverImage: "/images/kyoto.jpg", Date: "2024-07", Route: "/Travelogues/kyoto-2024-07"},

	// 2024 June - Europe
	{ID: "copenhagen-2024-06", Title: "Copenhagen, Denmark", Description: "Bikes, canals, and hygge in Copenhagen.", CoverImage: "/images/copenhagen.jpg", Date: "2024-06", Route: "/Travelogues/copenhagen-2024-06"},
	{ID: "utrecht-2024-06", Title: "Utrecht, Netherlands", Description: "Charming canals and cafes in Utrecht.", CoverImage: "/images/utrecht.jpg", Date: "2024-06", Route: "/Travelogues/utrecht-2024-06"},
	{ID: "amsterdam-2024-06", Title: "Amsterdam, Netherlands", Description: "Canals and museums in Amsterdam.", CoverImage: "/images/amsterdam.jpg", Date: "2024-06", Route: "/Travelogues/amsterdam-2024-06"},
	{ID: "antwerp-2024-06", Title: "Antwerp, Belgium", Description: "Diamonds and art in Antwerp.", CoverImage: "/images/antwerp.jpg", Date: "2024-06", Route: "/Travelogues/antwerp-2024-06"},
	{ID: "brussels-2024-06", Title: "Brussels, Belgium", Description: "Chocolate, waffles, and the Grand Place.", CoverImage: "/images/brussels.jpg", Date: "2024-06", Route: "/Travelogues/brussels-2024-06"},
	{ID: "colmar-2024-06", Title: "Colmar, France", Description: "Fairytale canals and half-timbered houses.", CoverImage: "/images/colmar.jpg", Date: "2024-06", Route: "/Travelogues/colmar-2024-06"},
	{ID: "nice-2024-06", Title: "Nice, France", Description: "Azure coastlines and promenades in Nice.", CoverImage: "/images/nice.jpg", Date: "2024-06", Route: "/Travelogues/nice-2024-06"},
	{ID: "menton-2024-06", Title: "Menton, France", Description: "Lemon-scented shores of Menton.", CoverImage: "/images/menton.jpg", Date: "2024-06", Route: "/Travelogues/menton-2024-06"},
	{ID: "monaco-2024-06", Title: "Monaco", Description: "Glamour and harbor views in Monaco.", CoverImage: "/images/monaco.jpg", Date: "2024-06", Route: "/Travelogues/monaco-2024-06"},
	{ID: "marseille-2024-06", Title: "Marseille, France", Description: "Old port and seaside vibes in Marseille.", CoverImage: "/images/marseille.jpg", Date: "2024-06", Route: "/Travelogues/marseille-2024-06"},
	{ID: "sainte-croix-2024-06", Title: "Lac de Sainte-Croix, France", Description: "Turquoise waters and Verdon Gorge views at Sainte-Croix Lake.", CoverImage: "/images/sainte-croix.jpg", Date: "2024-06", Route: "/Travelogues/sainte-croix-2024-06"},
	{ID: "provence-2024-06", Title: "Provence, France", Description: "Lavender fields and villages in Provence.", CoverImage: "/images/provence.jpg", Date: "2024-06", Route: "/Travelogues/provence-2024-06"},
	{ID: "lyon-2024-06", Title: "Lyon, France", Description: "Bouchons and old town alleys in Lyon.", CoverImage: "/images/lyon.jpg", Date: "2024-06", Route: "/Travelogues/lyon-2024-06"},
	{ID: "geneva-2024-06", Title: "Geneva, Switzerland", Description: "Lakeside walks and international Geneva.", CoverImage: "/images/geneva.jpg", Date: "2024-06", Route: "/Travelogues/geneva-2024-06"},
	{ID: "zermatt-2024-06", Title: "Zermatt, Switzerland", Description: "Matterhorn views from Zermatt.", CoverImage: "/images/zermatt.jpg", Date: "2024-06", Route: "/Travelogues/zermatt-2024-06"},
	{ID: "grindelwald-2024-06", Title: "Grindelwald, Switzerland", Description: "Alpine scenery in Grindelwald.", CoverImage: "/images/grindelwald.jpg", Date: "2024-06", Route: "/Travelogues/grindelwald-2024-06"},
	{ID: "lungern-2024-06", Title: "Lungern, Switzerland", Description: "Exploring Lungern.", CoverImage: "/images/lungern.jpg", Date: "2024-06", Route: "/Travelogues/lungern-2024-06"},
	{ID: "prague-2024-06", Title: "Prague, Czech Republic", Description: "Crossing Charles Bridge in summer.", CoverImage: "/images/prague.jpg", Date: "2024-06", Route: "/Travelogues/prague-2024-06"},

	// 2024 January - SE Asia
	{ID: "singapore-2024-01", Title: "Singapore", Description: "Skylines and hawker fare in Singapore.", CoverImage: "/images/singapore.jpg", Date: "2024-01", Route: "/Travelogues/singapore-2024-01"},
	{ID: "malaysia-2024-01", Title: "Malaysia", Description: "Discovering culture and cuisine in Malaysia.", CoverImage: "/images/malaysia.jpg", Date: "2024-01", Route: "/Travelogues/malaysia-2024-01"},
	{ID: "phuket-2024-01", Title: "Phuket, Thailand", Description: "Beaches and sunsets in Phuket.", CoverImage: "/images/phuket.jpg", Date: "2024-01", Route: "/Travelogues/phuket-2024-01"},

	// 2023 January - Japan
	{ID: "takayama-2023", Title: "Takayama, Japan", Description: "Old town charm in Takayama.", CoverImage: "/images/takayama.jpg", Date: "2023-01", Route: "/Travelogues/takayama-2023-01"},
	{ID: "shirakawa-go-2023", Title: "Shirakawa-go, Japan", Description: "Thatched roofs under winter skies.", CoverImage: "/images/shirakawa-go.jpg", Date: "2023-01", Route: "/Travelogues/shirakawa-go-2023-01"},
	{ID: "kanazawa-2023", Title: "Kanazawa, Japan", Description: "Gardens and heritage in Kanazawa.", CoverImage: "/images/kanazawa.jpg", Date: "2023-01", Route: "/Travelogues/kanazawa-2023-01"},

	// 2022 July - Europe & Singapore
	{ID: "athens-2022-07", Title: "Athens, Greece", Description: "Ancient sites and sunny Athens.", CoverImage: "/images/athens.jpg", Date: "2022-07", Route: "/Travelogues/athens-2022-07"},
	{ID: "vienna-2022-07", Title: "Vienna, Austria", Description: "Imperial streets and coffee houses.", CoverImage: "/images/vienna.jpg", Date: "2022-07", Route: "/Travelogues/vienna-2022-07"},
	{ID: "prague-2022-07", Title: "Prague, Czech Republic", Description: "Castles and bridges in Prague.", CoverImage: "/images/prague.jpg", Date: "2022-07", Route: "/Travelogues/prague-2022-07"},
	{ID: "karlovy-vary-2022-07", Title: "Karlovy Vary, Czech Republic", Description: "Historic spa town and thermal springs in Karlovy Vary.", CoverImage: "/images/karlovy-vary.jpg", Date: "2022-07", Route: "/Travelogues/karlovy-vary-2022-07"},
	{ID: "poznan-2022-07", Title: "Poznań, Poland", Description: "Old town squares of Poznań.", CoverImage: "/images/poznan.jpg", Date: "2022-07", Route: "/Travelogues/poznan-2022-07"},
	{ID: "berlin-2022-07", Title: "Berlin, Germany", Description: "History and modernity in Berlin.", CoverImage: "/images/berlin.jpg", Date: "2022-07", Route: "/Travelogues/berlin-2022-07"},
	{ID: "singapore-2022-07", Title: "Singapore", Description: "Connecting through Singapore.", CoverImage: "/images/singapore.jpg", Date: "2022-07", Route: "/Travelogues/singapore-2022-07"},
}

var DailyLife = []models.DailyLife{
	{ID: "lego-date", Title: "Lego Date", Description: "A special day with LEGO.", CoverImage: "/images/lego-date.jpg", Date: "2025-12-24", Route: "/daily-life/lego-date"},
}

var MapMarkers = []MapMarker{
	{ID: "1", Name: "Pacific Crest Trail", Lat: 39.8283, Lng: -120.5795, Description: "Pacific Crest Trail - 4,265 km long hike"},
	{ID: "2", Name: "Yosemite National Park", Lat: 37.8651, Lng: -119.5383, Description: "One of the most beautiful national parks in the USA"},
	{ID: "3", Name: "Pyrenees", Lat: 42.6667, Lng: 1.0000, Description: "Mountain range between France and Spain"},
	{ID: "4", Name: "Dolomites", Lat: 46.4333, Lng: 11.8500, Description: "Alpine mountain range in Italy"},
	{ID: "5", Name: "Colombia", Lat: 4.5709, Lng: -74.2973, Description: "Adventure in South America"},
}
