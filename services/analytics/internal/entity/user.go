package entity

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	IsModerator bool   `json:"is_moderator"`
	IsBanned    bool   `json:"is_banned"`
	IsDeleted   bool   `json:"is_deleted"`
}

type Channel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}
