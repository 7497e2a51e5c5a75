package entity

type YearlyViews struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Views  int64  `json:"views"`
}

// ChannelViews is how many views one user spent on a channel.
type ChannelViews struct {
	ChannelID   string
	ChannelName string
	Views       int64
}

type FavoriteCreator struct {
	UserID      string  `json:"user_id"`
	Year        int     `json:"year"`
	ChannelID   *string `json:"channel_id"`
	ChannelName string  `json:"channel_name,omitempty"`
	Views       int64   `json:"views"`
	Message     string  `json:"message,omitempty"`
}

type YearlyReactions struct {
	UserID    string `json:"user_id"`
	Year      int    `json:"year"`
	Comments  int64  `json:"comments"`
	Reactions int64  `json:"reactions"`
	Total     int64  `json:"total"`
}

type AverageWatch struct {
	UserID            string  `json:"user_id"`
	Views             int64   `json:"views"`
	AveragePercentage float64 `json:"average_watch_percentage"`
}

type ChannelInfo struct {
	ChannelID     string        `json:"channel_id"`
	Name          string        `json:"name"`
	OwnerID       string        `json:"owner_id"`
	Subscribers   int64         `json:"subscribers"`
	TotalViews    int64         `json:"total_views"`
	ActiveStrikes int64         `json:"active_strikes"`
	Videos        []*VideoViews `json:"videos"`
}
