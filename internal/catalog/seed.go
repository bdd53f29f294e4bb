package catalog

import "github.com/iliyamo/movie-ticket-booking/internal/model"

// seedMovies is the fixture catalog the memory store starts with.
// Upcoming titles carry a zero rating and zero total ratings and have
// no showtimes.
func seedMovies() []model.Movie {
    return []model.Movie{
        {
            ID: "1", Title: "Su from So", Genre: "Drama, Romance",
            DurationMin: 145, Rating: 4.2, TotalRatings: 1250,
            Language: "Tamil", ReleaseDate: "2024-11-15",
            Description: "A heartwarming tale of love and relationships set in contemporary Tamil Nadu.",
        },
        {
            ID: "2", Title: "The Conjuring: Last Rites", Genre: "Horror, Supernatural",
            DurationMin: 112, Rating: 4.5, TotalRatings: 2100,
            Language: "English", ReleaseDate: "2024-11-20",
            Description: "The final chapter in the Conjuring series brings the most terrifying supernatural encounters yet.",
        },
        {
            ID: "3", Title: "F1 The Movie", Genre: "Action, Sports",
            DurationMin: 135, Rating: 4.0, TotalRatings: 890,
            Language: "English", ReleaseDate: "2024-11-10",
            Description: "High-octane racing action featuring real Formula 1 circuits and drivers.",
        },
        {
            ID: "4", Title: "Paramsundari", Genre: "Comedy, Drama",
            DurationMin: 128, Rating: 3.8, TotalRatings: 670,
            Language: "Malayalam", ReleaseDate: "2024-11-18",
            Description: "A lighthearted comedy-drama about family values and modern relationships.",
        },
        {
            ID: "5", Title: "Coolie", Genre: "Action, Thriller",
            DurationMin: 152, Rating: 4.3, TotalRatings: 1890,
            Language: "Tamil", ReleaseDate: "2024-11-12",
            Description: "An action-packed thriller featuring spectacular stunts and an engaging storyline.",
        },
        {
            ID: "6", Title: "Lokah", Genre: "Drama, Fantasy",
            DurationMin: 140, Rating: 4.1, TotalRatings: 1120,
            Language: "Hindi", ReleaseDate: "2024-11-22",
            Description: "A mystical journey exploring the boundaries between reality and fantasy.",
        },
        {
            ID: "7", Title: "Demon Slayers: Infinity Castle", Genre: "Animation, Action",
            DurationMin: 125, Language: "Japanese", ReleaseDate: "2025-02-14",
            IsUpcoming:  true,
            Description: "The highly anticipated continuation of the Demon Slayer saga in the Infinity Castle.",
        },
        {
            ID: "8", Title: "Kantara Chapter 1", Genre: "Action, Mythology",
            DurationMin: 148, Language: "Kannada", ReleaseDate: "2025-01-25",
            IsUpcoming:  true,
            Description: "The prequel to the blockbuster Kantara, exploring ancient folklore and traditions.",
        },
        {
            ID: "9", Title: "Avatar: The Fire and Ash", Genre: "Sci-Fi, Adventure",
            DurationMin: 190, Language: "English", ReleaseDate: "2025-12-20",
            IsUpcoming:  true,
            Description: "The third installment in the Avatar saga, exploring new realms of Pandora.",
        },
    }
}

// seedShowTimes are the fixture screenings.  All share the same price
// table; availability varies per show.
func seedShowTimes() []model.ShowTime {
    pricing := model.Pricing{Regular: 200, Premium: 250}
    return []model.ShowTime{
        {ID: "st1", MovieID: "1", Date: "2024-12-10", Time: "10:00", ScreenID: "screen1", ScreenName: "Screen 1", AvailableSeats: 85, TotalSeats: 100, Pricing: pricing},
        {ID: "st2", MovieID: "1", Date: "2024-12-10", Time: "14:30", ScreenID: "screen2", ScreenName: "Screen 2", AvailableSeats: 92, TotalSeats: 100, Pricing: pricing},
        {ID: "st3", MovieID: "2", Date: "2024-12-10", Time: "11:15", ScreenID: "screen1", ScreenName: "Screen 1", AvailableSeats: 78, TotalSeats: 100, Pricing: pricing},
        {ID: "st4", MovieID: "2", Date: "2024-12-10", Time: "19:00", ScreenID: "screen3", ScreenName: "Screen 3", AvailableSeats: 65, TotalSeats: 100, Pricing: pricing},
        {ID: "st5", MovieID: "3", Date: "2024-12-11", Time: "09:30", ScreenID: "screen1", ScreenName: "Screen 1", AvailableSeats: 95, TotalSeats: 100, Pricing: pricing},
        {ID: "st6", MovieID: "3", Date: "2024-12-11", Time: "16:45", ScreenID: "screen2", ScreenName: "Screen 2", AvailableSeats: 88, TotalSeats: 100, Pricing: pricing},
    }
}
