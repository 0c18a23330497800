package handler

import (
	"net/http"

	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/utils"
)

func (h *Handler) CreateLike(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateLikeRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	like, err := h.like.Create(r.Context(), user.Id, body.ThreadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, like)
}

func (h *Handler) DeleteLike(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	threadId, err := urlParamID(r, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	like, err := h.like.Delete(r.Context(), user.Id, threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, like)
}
