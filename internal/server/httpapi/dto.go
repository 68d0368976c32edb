package httpapi

import "github.com/dmitrijs2005/interviewprep/internal/server/models"

// profileResponse never carries credentials.
type profileResponse struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

func toProfile(u *models.User) profileResponse {
	return profileResponse{
		Name:            u.Name,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
	}
}

type updateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func (r updateProfileRequest) toModel() models.ProfileUpdate {
	return models.ProfileUpdate{
		Name:            r.Name,
		Email:           r.Email,
		ProfileImageURL: r.ProfileImageURL,
	}
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type errorResponse struct {
	Message string `json:"message"`
}
