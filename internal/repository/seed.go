package repository

import "github.com/iliyamo/event-ticketing/internal/model"

// SeedEvents returns the demo catalog.  In a real deployment this would
// come from an API or database; the demo ships a fixed set of eight
// events covering every category.
func SeedEvents() []model.Event {
	return []model.Event{
		{
			ID:             "1",
			Title:          "Summer Music Festival",
			Category:       model.CategoryConcerts,
			Date:           "2025-07-15",
			Time:           "18:00",
			Venue:          "Central Park Amphitheater",
			Location:       "New York, NY",
			Image:          "https://images.pexels.com/photos/1105666/pexels-photo-1105666.jpeg",
			Description:    "Join us for the biggest music festival of the summer featuring top artists from around the world. Experience amazing performances across multiple stages in a beautiful outdoor setting.",
			PriceCents:     8999,
			Capacity:       200,
			AvailableSeats: 152,
			Featured:       true,
		},
		{
			ID:             "2",
			Title:          "NBA Finals 2025",
			Category:       model.CategorySports,
			Date:           "2025-06-10",
			Time:           "20:00",
			Venue:          "Madison Square Garden",
			Location:       "New York, NY",
			Image:          "https://images.pexels.com/photos/163452/basketball-dunk-scored-points-163452.jpeg",
			Description:    "Witness basketball history at the NBA Finals 2025. Experience the thrill and excitement as the top teams battle for the championship trophy.",
			PriceCents:     19999,
			Capacity:       300,
			AvailableSeats: 75,
			Featured:       true,
		},
		{
			ID:             "3",
			Title:          "Hamilton - Broadway Musical",
			Category:       model.CategoryTheater,
			Date:           "2025-08-25",
			Time:           "19:30",
			Venue:          "Richard Rodgers Theatre",
			Location:       "New York, NY",
			Image:          "https://images.pexels.com/photos/11323792/pexels-photo-11323792.jpeg",
			Description:    "Experience the Tony Award-winning musical that has taken the world by storm. Hamilton tells the story of America's founding father Alexander Hamilton through a blend of hip-hop, jazz, R&B, and Broadway.",
			PriceCents:     29999,
			Capacity:       150,
			AvailableSeats: 32,
			Featured:       true,
		},
		{
			ID:             "4",
			Title:          "Interstellar - IMAX Re-release",
			Category:       model.CategoryMovies,
			Date:           "2025-05-30",
			Time:           "21:00",
			Venue:          "AMC Empire 25",
			Location:       "New York, NY",
			Image:          "https://images.pexels.com/photos/269140/pexels-photo-269140.jpeg",
			Description:    "Experience Christopher Nolan's epic sci-fi masterpiece on the big IMAX screen once again. Join Cooper and his team as they travel through a wormhole in search of a new home for humanity.",
			PriceCents:     2499,
			Capacity:       120,
			AvailableSeats: 63,
			Featured:       false,
		},
		{
			ID:             "5",
			Title:          "Taylor Swift - The Eras Tour",
			Category:       model.CategoryConcerts,
			Date:           "2025-09-12",
			Time:           "19:00",
			Venue:          "SoFi Stadium",
			Location:       "Los Angeles, CA",
			Image:          "https://images.pexels.com/photos/1190297/pexels-photo-1190297.jpeg",
			Description:    "Taylor Swift brings her record-breaking Eras Tour back for another run! Experience a journey through all of Taylor's musical eras in this spectacular 3+ hour show.",
			PriceCents:     24999,
			Capacity:       400,
			AvailableSeats: 128,
			Featured:       true,
		},
		{
			ID:             "6",
			Title:          "World Cup Qualifier",
			Category:       model.CategorySports,
			Date:           "2025-10-05",
			Time:           "15:00",
			Venue:          "MetLife Stadium",
			Location:       "East Rutherford, NJ",
			Image:          "https://images.pexels.com/photos/46798/the-ball-stadion-football-the-pitch-46798.jpeg",
			Description:    "Watch as top national teams compete in this crucial World Cup qualifier match. The road to the World Cup starts here!",
			PriceCents:     7999,
			Capacity:       250,
			AvailableSeats: 183,
			Featured:       false,
		},
		{
			ID:             "7",
			Title:          "The Lion King",
			Category:       model.CategoryTheater,
			Date:           "2025-07-08",
			Time:           "19:30",
			Venue:          "Minskoff Theatre",
			Location:       "New York, NY",
			Image:          "https://images.pexels.com/photos/713149/pexels-photo-713149.jpeg",
			Description:    "Disney's award-winning musical has been captivating audiences for over 20 years. Experience the stunning visuals, music, and puppetry that bring the African savanna to life.",
			PriceCents:     14999,
			Capacity:       180,
			AvailableSeats: 42,
			Featured:       false,
		},
		{
			ID:             "8",
			Title:          "Avengers: Secret Wars - Premiere",
			Category:       model.CategoryMovies,
			Date:           "2025-06-25",
			Time:           "20:00",
			Venue:          "TCL Chinese Theatre",
			Location:       "Hollywood, CA",
			Image:          "https://images.pexels.com/photos/3945324/pexels-photo-3945324.jpeg",
			Description:    "Be among the first to see the most anticipated Marvel movie of the decade. The culmination of the Multiverse Saga brings together heroes from across dimensions.",
			PriceCents:     3999,
			Capacity:       200,
			AvailableSeats: 15,
			Featured:       true,
		},
	}
}
