package model

import (
	"github.com/google/uuid"
)

type RepositoryCreateUserInput struct {
	Id           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
}

type RepositoryUpsertStudentProfileInput struct {
	Id           uuid.UUID `db:"id"`
	UserId       uuid.UUID `db:"user_id"`
	FullName     string    `db:"full_name"`
	Phone        *string   `db:"phone"`
	Institution  *string   `db:"institution"`
	ClassLevel   *string   `db:"class_level"`
	Medium       *string   `db:"medium"`
	Location     *string   `db:"location"`
	GuardianName *string   `db:"guardian_name"`
}

type RepositoryUpsertTeacherProfileInput struct {
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
}

type RepositoryCreatePostInput struct {
	Id          uuid.UUID  `db:"id"`
	StudentId   uuid.UUID  `db:"student_id"`
	Subject     string     `db:"subject"`
	ClassLevel  string     `db:"class_level"`
	DaysPerWeek int32      `db:"days_per_week"`
	Salary      int32      `db:"salary"`
	Location    string     `db:"location"`
	Description string     `db:"description"`
	Status      PostStatus `db:"status"`
}

type RepositoryUpdatePostInput struct {
	Subject     string `db:"subject"`
	ClassLevel  string `db:"class_level"`
	DaysPerWeek int32  `db:"days_per_week"`
	Salary      int32  `db:"salary"`
	Location    string `db:"location"`
	Description string `db:"description"`
}

type RepositoryCreateResponseInput struct {
	Id             uuid.UUID      `db:"id"`
	PostId         uuid.UUID      `db:"post_id"`
	TeacherId      uuid.UUID      `db:"teacher_id"`
	ProposedSalary *int32         `db:"proposed_salary"`
	Message        string         `db:"message"`
	Status         ResponseStatus `db:"status"`
}

type RepositoryCreateConversationInput struct {
	Id        uuid.UUID `db:"id"`
	StudentId uuid.UUID `db:"student_id"`
	TeacherId uuid.UUID `db:"teacher_id"`
	PostId    uuid.UUID `db:"post_id"`
}

type RepositoryCreateMessageInput struct {
	Id             uuid.UUID `db:"id"`
	ConversationId uuid.UUID `db:"conversation_id"`
	SenderId       uuid.UUID `db:"sender_id"`
	Body           string    `db:"body"`
}
