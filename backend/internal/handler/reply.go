package handler

import (
	"net/http"

	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/utils"
)

func (h *Handler) GetReplies(w http.ResponseWriter, r *http.Request) {
	threadId, err := queryParamID(r, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	replies, err := h.reply.Find(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, replies)
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.reply.Create(r.Context(), domain.ReplyCreationData{
		Content:  body.Content,
		Image:    body.Image,
		ThreadId: body.ThreadId,
		UserId:   user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reply)
}
