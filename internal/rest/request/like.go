package request

type LikeToggle struct {
	BlogID string `json:"blogId"`
}
