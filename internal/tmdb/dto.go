package tmdb

// PagedResults is the envelope of every list, search and discover response
type PagedResults struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Result is one entry of a list response. Movies carry title and
// release_date, shows carry name and first_air_date.
type Result struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	MediaType    string  `json:"media_type,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Popularity   float64 `json:"popularity"`
	Overview     string  `json:"overview,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// Details is the movie or show details response with appended credits
type Details struct {
	Result
	Genres           []GenreDTO  `json:"genres"`
	Runtime          int         `json:"runtime,omitempty"`
	NumberOfSeasons  int         `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int         `json:"number_of_episodes,omitempty"`
	Seasons          []SeasonDTO `json:"seasons,omitempty"`
	Credits          *Credits    `json:"credits,omitempty"`
}

// GenreDTO is a genre entry
type GenreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the /genre/{type}/list response
type GenreList struct {
	Genres []GenreDTO `json:"genres"`
}

// SeasonDTO is a season summary on show details
type SeasonDTO struct {
	ID           int    `json:"id"`
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date,omitempty"`
	PosterPath   string `json:"poster_path,omitempty"`
}

// SeasonDetails is the /tv/{id}/season/{n} response
type SeasonDetails struct {
	ID           int          `json:"id"`
	SeasonNumber int          `json:"season_number"`
	Name         string       `json:"name"`
	Episodes     []EpisodeDTO `json:"episodes"`
}

// EpisodeDTO is one episode of a season
type EpisodeDTO struct {
	ID            int    `json:"id"`
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	StillPath     string `json:"still_path,omitempty"`
	AirDate       string `json:"air_date,omitempty"`
}

// Credits holds appended cast credits
type Credits struct {
	Cast []CastDTO `json:"cast"`
}

// CastDTO is a credited cast member
type CastDTO struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// ReleaseDates is the /movie/{id}/release_dates response
type ReleaseDates struct {
	Results []struct {
		ISO31661     string `json:"iso_3166_1"`
		ReleaseDates []struct {
			Certification string `json:"certification"`
			Type          int    `json:"type"`
		} `json:"release_dates"`
	} `json:"results"`
}

// ContentRatings is the /tv/{id}/content_ratings response
type ContentRatings struct {
	Results []struct {
		ISO31661 string `json:"iso_3166_1"`
		Rating   string `json:"rating"`
	} `json:"results"`
}

// ErrorResponse is the body TMDB sends with non-2xx statuses
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
