package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher
}

type PostStatus string

const (
	PostStatusOpen   PostStatus = "OPEN"
	PostStatusClosed PostStatus = "CLOSED"
)

func (p PostStatus) String() string {
	return string(p)
}

func (p PostStatus) IsValid() bool {
	return p == PostStatusOpen || p == PostStatusClosed
}

type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "PENDING"
	ResponseStatusAccepted ResponseStatus = "ACCEPTED"
	ResponseStatusRejected ResponseStatus = "REJECTED"
)

func (r ResponseStatus) String() string {
	return string(r)
}

func (r ResponseStatus) IsValid() bool {
	return r == ResponseStatusPending || r == ResponseStatusAccepted || r == ResponseStatusRejected
}

type User struct {
	Id           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	IsVerified   bool      `db:"is_verified"`
	AvatarKey    *string   `db:"avatar_key"`
	CreatedAt    time.Time `db:"created_at"`
}

type StudentProfile struct {
	Id           uuid.UUID `db:"id"`
	UserId       uuid.UUID `db:"user_id"`
	FullName     string    `db:"full_name"`
	Phone        *string   `db:"phone"`
	Institution  *string   `db:"institution"`
	ClassLevel   *string   `db:"class_level"`
	Medium       *string   `db:"medium"`
	Location     *string   `db:"location"`
	GuardianName *string   `db:"guardian_name"`
	CreatedAt    time.Time `db:"created_at"`
	EditedAt     time.Time `db:"edited_at"`
}

type TeacherProfile struct {
	Id                uuid.UUID `db:"id"`
	UserId            uuid.UUID `db:"user_id"`
	FullName          string    `db:"full_name"`
	Phone             *string   `db:"phone"`
	Qualification     *string   `db:"qualification"`
	Institution       *string   `db:"institution"`
	ExperienceYears   *int32    `db:"experience_years"`
	PreferredClasses  *string   `db:"preferred_classes"`
	PreferredSubjects *string   `db:"preferred_subjects"`
	Location          *string   `db:"location"`
	Bio               *string   `db:"bio"`
	IsVerified        bool      `db:"is_verified"`
	CreatedAt         time.Time `db:"created_at"`
	EditedAt          time.Time `db:"edited_at"`
}

type TuitionPost struct {
	Id          uuid.UUID  `db:"id"`
	StudentId   uuid.UUID  `db:"student_id"`
	Subject     string     `db:"subject"`
	ClassLevel  string     `db:"class_level"`
	DaysPerWeek int32      `db:"days_per_week"`
	Salary      int32      `db:"salary"`
	Location    string     `db:"location"`
	Description string     `db:"description"`
	Status      PostStatus `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
}

// PostListing is a read-side projection of a post annotated with the owning
// student's display data and the number of responses it has collected.
type PostListing struct {
	TuitionPost
	StudentName   *string `db:"student_name"`
	StudentEmail  *string `db:"student_email"`
	ResponseCount int64   `db:"response_count"`
}

type Response struct {
	Id             uuid.UUID      `db:"id"`
	PostId         uuid.UUID      `db:"post_id"`
	TeacherId      uuid.UUID      `db:"teacher_id"`
	ProposedSalary *int32         `db:"proposed_salary"`
	Message        string         `db:"message"`
	Status         ResponseStatus `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
}

// ResponseListing annotates a response with the responding teacher's
// display data for the post owner's view.
type ResponseListing struct {
	Response
	TeacherName  *string `db:"teacher_name"`
	TeacherEmail string  `db:"teacher_email"`
	AvatarKey    *string `db:"avatar_key"`
}

type Conversation struct {
	Id        uuid.UUID `db:"id"`
	StudentId uuid.UUID `db:"student_id"`
	TeacherId uuid.UUID `db:"teacher_id"`
	PostId    uuid.UUID `db:"post_id"`
	CreatedAt time.Time `db:"created_at"`
}

// ConversationListing is the inbox row: the other participant's display
// name (profile name falling back to email), the related post's subject,
// the latest message and the caller's unread count.
type ConversationListing struct {
	Conversation
	OtherUserName   string     `db:"other_user_name"`
	OtherUserEmail  string     `db:"other_user_email"`
	PostSubject     string     `db:"post_subject"`
	LastMessage     *string    `db:"last_message"`
	LastMessageTime *time.Time `db:"last_message_time"`
	UnreadCount     int64      `db:"unread_count"`
}

type Message struct {
	Id             uuid.UUID `db:"id"`
	ConversationId uuid.UUID `db:"conversation_id"`
	SenderId       uuid.UUID `db:"sender_id"`
	Body           string    `db:"body"`
	IsRead         bool      `db:"is_read"`
	SentAt         time.Time `db:"sent_at"`
}

type MessageListing struct {
	Message
	SenderName string `db:"sender_name"`
	SenderRole Role   `db:"sender_role"`
}
