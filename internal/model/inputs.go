package model

import "github.com/google/uuid"

type RegisterInput struct {
	Email    string
	Password string
	Role     Role
}

type LoginInput struct {
	Email    string
	Password string
}

type UpsertStudentProfileInput struct {
	FullName     string
	Phone        *string
	Institution  *string
	ClassLevel   *string
	Medium       *string
	Location     *string
	GuardianName *string
}

type UpsertTeacherProfileInput struct {
	FullName          string
	Phone             *string
	Qualification     *string
	Institution       *string
	ExperienceYears   *int32
	PreferredClasses  *string
	PreferredSubjects *string
	Location          *string
	Bio               *string
}

type CreatePostInput struct {
	Subject     string
	ClassLevel  string
	DaysPerWeek int32
	Salary      int32
	Location    string
	Description string
}

type RespondToPostInput struct {
	PostId         uuid.UUID
	ProposedSalary *int32
	Message        string
}

type SendMessageInput struct {
	ConversationId uuid.UUID
	Body           string
}
