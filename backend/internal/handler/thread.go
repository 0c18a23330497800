package handler

import (
	"net/http"

	backendmw "github.com/threads-be/threads/backend/internal/middleware"
	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/utils"
)

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.Find(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, threads)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.FindOne(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, thread)
}

// CreateThread expects the upload middleware to have stored the "image" field.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(r.Context(), domain.ThreadCreationData{
		Content: r.FormValue("content"),
		Image:   backendmw.UploadedFile(r),
		UserId:  user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, thread)
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	id, err := urlParamID(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Update(r.Context(), domain.ThreadUpdateData{
		Id:      id,
		Content: body.Content,
		Image:   body.Image,
		UserId:  user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, thread)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	id, err := urlParamID(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Delete(r.Context(), id, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, thread)
}
