package response

import "github.com/gouthampai05/the-final-empathway-sub001/domain"

type LikeStatus struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

func NewLikeStatusFromDomain(s domain.LikeStatus) LikeStatus {
	return LikeStatus{
		Liked: s.Liked,
		Likes: s.Likes,
	}
}
