package entity

// VideoRef is a ranked recommendation together with the signals that placed it.
type VideoRef struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ChannelID       string `json:"channel_id"`
	ChannelAffinity int64  `json:"channel_affinity"`
	IsSubscribed    bool   `json:"is_subscribed"`
	Popularity      int64  `json:"popularity"`
}

type VideoStats struct {
	VideoID  string `json:"video_id"`
	Title    string `json:"title"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
	Comments int64  `json:"comments"`
}

type VideoViews struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	Views   int64  `json:"views"`
}
