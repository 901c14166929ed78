package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tuitionhub/internal/model"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// UpsertStudentProfile overwrites every profile field. Last write wins,
// there is no field-level merge.
func (r *ProfileRepository) UpsertStudentProfile(ctx context.Context, input *model.RepositoryUpsertStudentProfileInput) (*model.StudentProfile, error) {
	query := `
INSERT INTO student_profiles (
	id, user_id, full_name, phone, institution,
	class_level, medium, location, guardian_name
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id) DO UPDATE SET
	full_name = EXCLUDED.full_name,
	phone = EXCLUDED.phone,
	institution = EXCLUDED.institution,
	class_level = EXCLUDED.class_level,
	medium = EXCLUDED.medium,
	location = EXCLUDED.location,
	guardian_name = EXCLUDED.guardian_name,
	edited_at = now()
RETURNING id, user_id, full_name, phone, institution,
	class_level, medium, location, guardian_name, created_at, edited_at
`
	var profile model.StudentProfile
	err := pgxscan.Get(ctx, r.db, &profile, query,
		input.Id,
		input.UserId,
		input.FullName,
		input.Phone,
		input.Institution,
		input.ClassLevel,
		input.Medium,
		input.Location,
		input.GuardianName,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &profile, nil
}

func (r *ProfileRepository) GetStudentProfile(ctx context.Context, userID uuid.UUID) (*model.StudentProfile, error) {
	query := `
SELECT id, user_id, full_name, phone, institution,
	class_level, medium, location, guardian_name, created_at, edited_at
FROM student_profiles
WHERE user_id = $1
`
	var profile model.StudentProfile
	err := pgxscan.Get(ctx, r.db, &profile, query, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return &profile, nil
}

func (r *ProfileRepository) UpsertTeacherProfile(ctx context.Context, input *model.RepositoryUpsertTeacherProfileInput) (*model.TeacherProfile, error) {
	query := `
INSERT INTO teacher_profiles (
	id, user_id, full_name, phone, qualification, institution,
	experience_years, preferred_classes, preferred_subjects, location, bio
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (user_id) DO UPDATE SET
	full_name = EXCLUDED.full_name,
	phone = EXCLUDED.phone,
	qualification = EXCLUDED.qualification,
	institution = EXCLUDED.institution,
	experience_years = EXCLUDED.experience_years,
	preferred_classes = EXCLUDED.preferred_classes,
	preferred_subjects = EXCLUDED.preferred_subjects,
	location = EXCLUDED.location,
	bio = EXCLUDED.bio,
	edited_at = now()
RETURNING id, user_id, full_name, phone, qualification, institution,
	experience_years, preferred_classes, preferred_subjects, location, bio,
	is_verified, created_at, edited_at
`
	var profile model.TeacherProfile
	err := pgxscan.Get(ctx, r.db, &profile, query,
		input.Id,
		input.UserId,
		input.FullName,
		input.Phone,
		input.Qualification,
		input.Institution,
		input.ExperienceYears,
		input.PreferredClasses,
		input.PreferredSubjects,
		input.Location,
		input.Bio,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &profile, nil
}

func (r *ProfileRepository) GetTeacherProfile(ctx context.Context, userID uuid.UUID) (*model.TeacherProfile, error) {
	query := `
SELECT id, user_id, full_name, phone, qualification, institution,
	experience_years, preferred_classes, preferred_subjects, location, bio,
	is_verified, created_at, edited_at
FROM teacher_profiles
WHERE user_id = $1
`
	var profile model.TeacherProfile
	err := pgxscan.Get(ctx, r.db, &profile, query, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return &profile, nil
}
