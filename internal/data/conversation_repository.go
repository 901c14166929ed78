package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tuitionhub/internal/model"
)

type ConversationRepository struct {
	db *pgxpool.Pool
}

func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// CreateOrGetConversation upserts on the (student, teacher, post) triple.
// The DO UPDATE arm is a no-op write that lets RETURNING hand back the
// existing row, so two concurrent starts resolve to the same conversation.
func (r *ConversationRepository) CreateOrGetConversation(ctx context.Context, input *model.RepositoryCreateConversationInput) (*model.Conversation, error) {
	query := `
INSERT INTO conversations (id, student_id, teacher_id, post_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (student_id, teacher_id, post_id)
DO UPDATE SET post_id = EXCLUDED.post_id
RETURNING id, student_id, teacher_id, post_id, created_at
`
	var conversation model.Conversation
	err := pgxscan.Get(ctx, r.db, &conversation, query,
		input.Id,
		input.StudentId,
		input.TeacherId,
		input.PostId,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &conversation, nil
}

func (r *ConversationRepository) GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	query := `
SELECT id, student_id, teacher_id, post_id, created_at
FROM conversations
WHERE id = $1
`
	var conversation model.Conversation
	err := pgxscan.Get(ctx, r.db, &conversation, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &conversation, nil
}

// ListConversationsByUser builds the inbox view. Conversations with no
// messages sort after everything with traffic, newest first within the tie.
func (r *ConversationRepository) ListConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*model.ConversationListing, error) {
	query := `
SELECT c.id, c.student_id, c.teacher_id, c.post_id, c.created_at,
	COALESCE(sp.full_name, tp.full_name, u.email) AS other_user_name,
	u.email AS other_user_email,
	p.subject AS post_subject,
	m.body AS last_message,
	m.sent_at AS last_message_time,
	COALESCE(unread.count, 0) AS unread_count
FROM conversations c
JOIN tuition_posts p ON p.id = c.post_id
JOIN users u ON u.id = CASE WHEN c.student_id = $1 THEN c.teacher_id ELSE c.student_id END
LEFT JOIN student_profiles sp ON sp.user_id = u.id
LEFT JOIN teacher_profiles tp ON tp.user_id = u.id
LEFT JOIN LATERAL (
	SELECT body, sent_at
	FROM messages
	WHERE conversation_id = c.id
	ORDER BY sent_at DESC
	LIMIT 1
) m ON true
LEFT JOIN LATERAL (
	SELECT COUNT(*) AS count
	FROM messages
	WHERE conversation_id = c.id AND sender_id <> $1 AND is_read = FALSE
) unread ON true
WHERE c.student_id = $1 OR c.teacher_id = $1
ORDER BY m.sent_at DESC NULLS LAST, c.created_at DESC
`
	var conversations []*model.ConversationListing
	err := pgxscan.Select(ctx, r.db, &conversations, query, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return conversations, nil
}

func (r *ConversationRepository) CreateMessage(ctx context.Context, input *model.RepositoryCreateMessageInput) (*model.Message, error) {
	query := `
INSERT INTO messages (id, conversation_id, sender_id, body)
VALUES ($1, $2, $3, $4)
RETURNING id, conversation_id, sender_id, body, is_read, sent_at
`
	var message model.Message
	err := pgxscan.Get(ctx, r.db, &message, query,
		input.Id,
		input.ConversationId,
		input.SenderId,
		input.Body,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &message, nil
}

func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.MessageListing, error) {
	query := `
SELECT m.id, m.conversation_id, m.sender_id, m.body, m.is_read, m.sent_at,
	COALESCE(sp.full_name, tp.full_name, u.email) AS sender_name,
	u.role AS sender_role
FROM messages m
JOIN users u ON u.id = m.sender_id
LEFT JOIN student_profiles sp ON sp.user_id = u.id
LEFT JOIN teacher_profiles tp ON tp.user_id = u.id
WHERE m.conversation_id = $1
ORDER BY m.sent_at ASC
`
	var messages []*model.MessageListing
	err := pgxscan.Select(ctx, r.db, &messages, query, conversationID)
	if err != nil {
		return nil, handleError(err)
	}
	return messages, nil
}

// MarkMessagesRead flips the read flag on the other participant's unread
// messages. Re-running it matches zero rows, which keeps it idempotent.
func (r *ConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	query := `
UPDATE messages
SET is_read = TRUE
WHERE conversation_id = $1 AND sender_id <> $2 AND is_read = FALSE
`
	_, err := r.db.Exec(ctx, query, conversationID, readerID)
	if err != nil {
		return handleError(err)
	}
	return nil
}
