package data

// Trips is the travel-map route table, newest year first.
var Trips = []Trip{
	{
		ID:          "trip-2025-july",
		Title:       "2025 July - Europe",
		Year:        "2025",
		Color:       "#F99386",
		Description: "From Taipei to Milan, Verona, Venice, Vienna, Budapest, Warsaw, Riga, Tallinn, Helsinki, Vilnius, and back to Taipei",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "July 2025", TransportMode: TransportAirplane},
			{ID: 2, Name: "Milan, Italy", Lat: 45.4642, Lng: 9.1900, Date: "July 2025", TransportMode: TransportAirplane, Link: "/Travelogues/milan-2025-07"},
			{ID: 3, Name: "Verona, Italy", Lat: 45.4384, Lng: 10.9916, Date: "July 2025", TransportMode: TransportTrain, Link: "/Travelogues/verona-2025-07"},
			{ID: 4, Name: "Venice, Italy", Lat: 45.4408, Lng: 12.3155, Date: "July 2025", TransportMode: TransportTrain, Link: "/Travelogues/venice-2025-07"},
			{ID: 5, Name: "Vienna, Austria", Lat: 48.2082, Lng: 16.3738, Date: "July 2025", TransportMode: TransportAirplane, Link: "/Travelogues/vienna-2025-07"},
			{ID: 6, Name: "Budapest, Hungary", Lat: 47.4979, Lng: 19.0402, Date: "July 2025", TransportMode: TransportTrain, Link: "/Travelogues/budapest-2025-07"},
			{ID: 7, Name: "Warsaw, Poland", Lat: 52.2297, Lng: 21.0122, Date: "July 2025", TransportMode: TransportAirplane, Link: "/Travelogues/warsaw-2025-07"},
			{ID: 8, Name: "Riga, Latvia", Lat: 56.9496, Lng: 24.1052, Date: "July 2025", TransportMode: TransportBus, Link: "/Travelogues/riga-2025-07"},
			{ID: 9, Name: "Tallinn, Estonia", Lat: 59.4370, Lng: 24.7536, Date: "July 2025", TransportMode: TransportTrain, Link: "/Travelogues/tallinn-2025-07"},
			{ID: 10, Name: "Helsinki, Finland", Lat: 60.1699, Lng: 24.9384, Date: "July 2025", TransportMode: TransportBoat, Link: "/Travelogues/helsinki-2025-07"},
			{ID: 11, Name: "Vilnius, Lithuania", Lat: 54.6872, Lng: 25.2797, Date: "July 2025", TransportMode: TransportBus, Link: "/Travelogues/vilnius-2025-07"},
			{ID: 12, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "July 2025", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2025-february",
		Title:       "2025 February - Korea",
		Year:        "2025",
		Color:       "#90A2D5",
		Description: "From Taipei to Seoul and back to Taipei",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "February 2025", TransportMode: TransportAirplane},
			{ID: 2, Name: "Seoul, South Korea", Lat: 37.5665, Lng: 126.9780, Date: "February 2025", TransportMode: TransportAirplane, Link: "/Travelogues/seoul-2025-02"},
			{ID: 3, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "February 2025", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2025-january",
		Title:       "2025 January - Japan",
		Year:        "2025",
		Color:       "#7DD7F5",
		Description: "From Taipei to Fukuoka, Dazaifu, Yufuin, and back to Taipei",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "January 2025", TransportMode: TransportAirplane},
			{ID: 2, Name: "Fukuoka, Japan", Lat: 33.5904, Lng: 130.4017, Date: "January 2025", TransportMode: TransportAirplane, Link: "/Travelogues/fukuoka-2025-01"},
			{ID: 3, Name: "Dazaifu, Japan", Lat: 33.5200, Lng: 130.5200, Date: "January 2025", TransportMode: TransportTrain, Link: "/Travelogues/dazaifu-2025-01"},
			{ID: 4, Name: "Yufuin, Japan", Lat: 33.2635, Lng: 131.3537, Date: "January 2025", TransportMode: TransportTrain, Link: "/Travelogues/yufuin-2025-01"},
			{ID: 5, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "January 2025", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2024-december",
		Title:       "2024 December - China",
		Year:        "2024",
		Color:       "#FF9797",
		Description: "From Taipei to Beijing, Nanjing, Hangzhou, Suzhou, Shanghai, and back to Taipei",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "December 2024", TransportMode: TransportAirplane},
			{ID: 2, Name: "Beijing, China", Lat: 39.9042, Lng: 116.4074, Date: "December 2024", TransportMode: TransportAirplane, Link: "/Travelogues/beijing-2024-12"},
			{ID: 3, Name: "Nanjing, China", Lat: 32.0603, Lng: 118.7969, Date: "December 2024", TransportMode: TransportTrain, Link: "/Travelogues/nanjing-2024-12"},
			{ID: 4, Name: "Hangzhou, China", Lat: 30.2741, Lng: 120.1551, Date: "December 2024", TransportMode: TransportTrain, Link: "/Travelogues/hangzhou-2024-12"},
			{ID: 5, Name: "Suzhou, China", Lat: 31.2983, Lng: 120.5832, Date: "December 2024", TransportMode: TransportTrain, Link: "/Travelogues/suzhou-2024-12"},
			{ID: 6, Name: "Shanghai, China", Lat: 31.2304, Lng: 121.4737, Date: "December 2024", TransportMode: TransportTrain, Link: "/Travelogues/shanghai-2024-12"},
			{ID: 7, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "December 2024", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2024-july",
		Title:       "2024 July - Japan (Osaka & Kyoto)",
		Year:        "2024",
		Color:       "#C2C287",
		Description: "From Taipei to Osaka, then Kyoto, and back to Taipei",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "July 2024", TransportMode: TransportAirplane},
			{ID: 2, Name: "Osaka, Japan", Lat: 34.6937, Lng: 135.5023, Date: "July 2024", TransportMode: TransportAirplane, Link: "/Travelogues/osaka-2024-07"},
			{ID: 3, Name: "Kyoto, Japan", Lat: 35.0116, Lng: 135.7681, Date: "July 2024", TransportMode: TransportTrain, Link: "/Travelogues/kyoto-2024-07"},
			{ID: 4, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "July 2024", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2024-june",
		Title:       "2024 June - Europe",
		Year:        "2024",
		Color:       "#ADADAD",
		Description: "From Copenhagen, through Netherlands, Belgium, France, Switzerland, to Prague",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "June 2024", TransportMode: TransportAirplane},
			{ID: 2, Name: "Copenhagen, Denmark", Lat: 55.6761, Lng: 12.5683, Date: "June 2024", TransportMode: TransportAirplane, Link: "/Travelogues/copenhagen-2024-06"},
			{ID: 3, Name: "Utrecht, Netherlands", Lat: 52.0907, Lng: 5.1214, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/utrecht-2024-06"},
			{ID: 4, Name: "Amsterdam, Netherlands", Lat: 52.3676, Lng: 4.9041, Date: "June 2024", TransportMode: TransportTrain, Link: "/Travelogues/amsterdam-2024-06"},
			{ID: 5, Name: "Antwerp, Belgium", Lat: 51.2194, Lng: 4.4025, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/antwerp-2024-06"},
			{ID: 6, Name: "Brussels, Belgium", Lat: 50.8503, Lng: 4.3517, Date: "June 2024", TransportMode: TransportCar, Link: "/Travelogues/brussels-2024-06"},
			{ID: 7, Name: "Colmar, France", Lat: 48.0794, Lng: 7.3586, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/colmar-2024-06"},
			{ID: 8, Name: "Nice, France", Lat: 43.7102, Lng: 7.2620, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/nice-2024-06"},
			{ID: 9, Name: "Menton, France", Lat: 43.7745, Lng: 7.5049, Date: "June 2024", TransportMode: TransportTrain, Link: "/Travelogues/menton-2024-06"},
			{ID: 10, Name: "Monaco", Lat: 43.7384, Lng: 7.4246, Date: "June 2024", TransportMode: TransportTrain, Link: "/Travelogues/monaco-2024-06"},
			{ID: 11, Name: "Marseille, France", Lat: 43.2965, Lng: 5.3698, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/marseille-2024-06"},
			{ID: 12, Name: "Lac de Sainte-Croix, France", Lat: 43.7700, Lng: 6.2000, Date: "June 2024", TransportMode: TransportCar, Link: "/Travelogues/sainte-croix-2024-06"},
			{ID: 13, Name: "Provence, France", Lat: 43.9500, Lng: 5.0500, Date: "June 2024", TransportMode: TransportCar, Link: "/Travelogues/provence-2024-06"},
			{ID: 14, Name: "Lyon, France", Lat: 45.7640, Lng: 4.8357, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/lyon-2024-06"},
			{ID: 15, Name: "Geneva, Switzerland", Lat: 46.2044, Lng: 6.1432, Date: "June 2024", TransportMode: TransportTrain, Link: "/Travelogues/geneva-2024-06"},
			{ID: 16, Name: "Zermatt, Switzerland", Lat: 46.0207, Lng: 7.7491, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/zermatt-2024-06"},
			{ID: 17, Name: "Grindelwald, Switzerland", Lat: 46.6242, Lng: 8.0340, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/grindelwald-2024-06"},
			{ID: 18, Name: "Lungern, Switzerland", Lat: 46.7861, Lng: 8.1600, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/lungern-2024-06"},
			{ID: 19, Name: "Prague, Czech Republic", Lat: 50.0755, Lng: 14.4378, Date: "June 2024", TransportMode: TransportBus, Link: "/Travelogues/prague-2024-06"},
			{ID: 20, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "June 2024", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2024-january",
		Title:       "2024 January - Singapore, Malaysia, Phuket",
		Year:        "2024",
		Color:       "#FFAD86",
		Description: "From Taipei to Singapore, Malaysia, Phuket, and back to Taipei",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "January 2024", TransportMode: TransportAirplane},
			{ID: 2, Name: "Singapore", Lat: 1.3521, Lng: 103.8198, Date: "January 2024", TransportMode: TransportAirplane, Link: "/Travelogues/singapore-2024-01"},
			{ID: 3, Name: "Malaysia", Lat: 3.1390, Lng: 101.6869, Date: "January 2024", TransportMode: TransportAirplane, Link: "/Travelogues/malaysia-2024-01"},
			{ID: 4, Name: "Phuket, Thailand", Lat: 7.9519, Lng: 98.3381, Date: "January 2024", TransportMode: TransportAirplane, Link: "/Travelogues/phuket-2024-01"},
			{ID: 5, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "January 2024", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2023-january",
		Title:       "2023 January - Japan",
		Year:        "2023",
		Color:       "#84C1FF",
		Description: "From Taiwan to Takayama, Shirakawa-go, and Kanazawa",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "January 2023", TransportMode: TransportAirplane},
			{ID: 2, Name: "Takayama, Japan", Lat: 36.1461, Lng: 137.2522, Date: "January 2023", TransportMode: TransportAirplane, Link: "/Travelogues/takayama-2023-01"},
			{ID: 3, Name: "Shirakawa-go, Japan", Lat: 36.2556, Lng: 136.9064, Date: "January 2023", TransportMode: TransportCar, Link: "/Travelogues/shirakawa-go-2023-01"},
			{ID: 4, Name: "Kanazawa, Japan", Lat: 36.5613, Lng: 136.6562, Date: "January 2023", TransportMode: TransportCar, Link: "/Travelogues/kanazawa-2023-01"},
			{ID: 5, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "January 2023", TransportMode: TransportAirplane},
		},
	},
	{
		ID:          "trip-2022-july",
		Title:       "2022 July - Europe and Singapore",
		Year:        "2022",
		Color:       "#FFE66F",
		Description: "From Greece, Vienna, Prague, Poznań, Berlin, to Singapore",
		Locations: []TripLocation{
			{ID: 1, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, Date: "13 May", TransportMode: TransportAirplane},
			{ID: 2, Name: "Athens, Greece", Lat: 37.9838, Lng: 23.7275, Date: "July 2022", TransportMode: TransportAirplane, Link: "/Travelogues/athens-2022-07"},
			{ID: 3, Name: "Vienna, Austria", Lat: 48.2082, Lng: 16.3738, Date: "15 Apr", TransportMode: TransportAirplane, Link: "/Travelogues/vienna-2022-07"},
			{ID: 4, Name: "Prague, Czech Republic", Lat: 50.0755, Lng: 14.4378, TransportMode: TransportBus, Link: "/Travelogues/prague-2022-07"},
			{ID: 5, Name: "Karlovy Vary, Czech Republic", Lat: 50.2306, Lng: 12.8711, Date: "July 2022", TransportMode: TransportCar, Link: "/Travelogues/karlovy-vary-2022-07"},
			{ID: 6, Name: "Poznań, Poland", Lat: 52.4064, Lng: 16.9252, TransportMode: TransportBus, Link: "/Travelogues/poznan-2022-07"},
			{ID: 7, Name: "Berlin, Germany", Lat: 52.5200, Lng: 13.4050, TransportMode: TransportBus, Link: "/Travelogues/berlin-2022-07"},
			{ID: 8, Name: "Singapore", Lat: 1.3521, Lng: 103.8198, TransportMode: TransportAirplane, Link: "/Travelogues/singapore-2022-07"},
			{ID: 9, Name: "Taipei, Taiwan", Lat: 25.0330, Lng: 121.5654, TransportMode: TransportAirplane},
		},
	},
}
