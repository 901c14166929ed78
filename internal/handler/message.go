package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tuitionhub/internal/model"
	"tuitionhub/internal/service"
)

type MessageHandler struct {
	svc *service.MessagingService
}

func NewMessageHandler(svc *service.MessagingService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Use(authMiddleware)
	r.Get("/", h.ListConversations)
	r.Post("/{postId}/start", h.StartConversation)
	r.Get("/{conversationId}/messages", h.GetMessages)
	r.Post("/{conversationId}/messages", h.SendMessage)
	r.Patch("/{conversationId}/read", h.MarkMessagesRead)
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

type conversationView struct {
	Id        uuid.UUID `json:"id"`
	StudentId uuid.UUID `json:"student_id"`
	TeacherId uuid.UUID `json:"teacher_id"`
	PostId    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

type conversationListingView struct {
	conversationView
	OtherUserName   string     `json:"other_user_name"`
	OtherUserEmail  string     `json:"other_user_email"`
	PostSubject     string     `json:"post_subject"`
	LastMessage     *string    `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
	UnreadCount     int64      `json:"unread_count"`
}

type messageView struct {
	Id             uuid.UUID `json:"id"`
	ConversationId uuid.UUID `json:"conversation_id"`
	SenderId       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	IsRead         bool      `json:"is_read"`
	SentAt         time.Time `json:"sent_at"`
}

type messageListingView struct {
	messageView
	SenderName string `json:"sender_name"`
	SenderRole string `json:"sender_role"`
}

func toConversationView(c *model.Conversation) conversationView {
	return conversationView{
		Id:        c.Id,
		StudentId: c.StudentId,
		TeacherId: c.TeacherId,
		PostId:    c.PostId,
		CreatedAt: c.CreatedAt,
	}
}

func toMessageView(m *model.Message) messageView {
	return messageView{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		SenderId:       m.SenderId,
		Body:           m.Body,
		IsRead:         m.IsRead,
		SentAt:         m.SentAt,
	}
}

func (h *MessageHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUIDParam(r, "postId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	conversation, err := h.svc.StartConversation(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversationView(conversation))
}

func (h *MessageHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.ListConversations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	views := make([]conversationListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, conversationListingView{
			conversationView: toConversationView(&l.Conversation),
			OtherUserName:    l.OtherUserName,
			OtherUserEmail:   l.OtherUserEmail,
			PostSubject:      l.PostSubject,
			LastMessage:      l.LastMessage,
			LastMessageTime:  l.LastMessageTime,
			UnreadCount:      l.UnreadCount,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, err := parseUUIDParam(r, "conversationId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	listings, err := h.svc.GetMessages(r.Context(), conversationID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	views := make([]messageListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, messageListingView{
			messageView: toMessageView(&l.Message),
			SenderName:  l.SenderName,
			SenderRole:  l.SenderRole.String(),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	conversationID, err := parseUUIDParam(r, "conversationId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	message, err := h.svc.SendMessage(r.Context(), &model.SendMessageInput{
		ConversationId: conversationID,
		Body:           req.Body,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageView(message))
}

func (h *MessageHandler) MarkMessagesRead(w http.ResponseWriter, r *http.Request) {
	conversationID, err := parseUUIDParam(r, "conversationId")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.MarkMessagesRead(r.Context(), conversationID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"marked_read": true})
}
