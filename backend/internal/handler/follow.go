package handler

import (
	"net/http"

	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/utils"
)

// GetFollows lists the session user's followings, or followers with ?type=followers.
func (h *Handler) GetFollows(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	followType := domain.FollowType(r.URL.Query().Get("type"))
	entries, err := h.follow.Find(r.Context(), user.Id, followType)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) CreateFollow(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateFollowRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	follow, err := h.follow.Create(r.Context(), user.Id, body.FollowedUserId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, follow)
}

func (h *Handler) DeleteFollow(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	followedId, err := urlParamID(r, "followed_user_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	follow, err := h.follow.Delete(r.Context(), user.Id, followedId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, follow)
}
