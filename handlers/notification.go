package handlers

import (
	"net/http"

	"fitnessapi/middleware"
	"fitnessapi/services"
)

// NotificationService is the part of the notification service the handler
// depends on.
type NotificationService interface {
	UpdateNotification(id uint, isActive bool) services.ActionResult
	DeleteNotification(notificationID uint, userID string) services.ActionResult
	GetNotifications(userID string) services.ActionResult
	HasNotification(userID string) services.ActionResult
	GetJoinTeamNotificationDetails(notificationID uint) services.ActionResult
}

type NotificationHandler struct {
	notifications NotificationService
}

func NewNotificationHandler(notifications NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationReviewRequest struct {
	ID       uint `json:"id"`
	IsActive bool `json:"is_active"`
}

type notificationIDRequest struct {
	ID uint `json:"id"`
}

func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.notifications.GetNotifications(middleware.GetUserID(r.Context())))
}

// Review flips the active flag, marking the notification as consumed or not.
func (h *NotificationHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req notificationReviewRequest
	if !decodeBody(r, &req) || req.ID == 0 {
		badRequestResponse(w, services.MsgNotificationNotFound)
		return
	}

	writeResult(w, h.notifications.UpdateNotification(req.ID, req.IsActive))
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req notificationIDRequest
	if !decodeBody(r, &req) || req.ID == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	writeResult(w, h.notifications.DeleteNotification(req.ID, middleware.GetUserID(r.Context())))
}

func (h *NotificationHandler) HasNew(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.notifications.HasNotification(middleware.GetUserID(r.Context())))
}

func (h *NotificationHandler) JoinTeamDetails(w http.ResponseWriter, r *http.Request) {
	id := queryUint(r, "id")
	if id == 0 {
		badRequestResponse(w, services.MsgObjectIDNotProvided)
		return
	}

	writeResult(w, h.notifications.GetJoinTeamNotificationDetails(id))
}
