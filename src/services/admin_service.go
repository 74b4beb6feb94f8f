package services

import (
	"context"
	"fmt"
	"time"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services/scoring"
	"Backend-SecAssess/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminService งานฝั่งผู้ดูแลระบบ: จัดการผู้ใช้และสถิติภาพรวม
type AdminService struct {
	db *database.Mongo
}

func NewAdminService(db *database.Mongo) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.db.Collection(database.ColUsers).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user on behalf of an admin, optionally with the
// admin role. Duplicate emails are rejected before the write.
func (s *AdminService) CreateUser(ctx context.Context, req *models.AdminCreateUserRequest) (*models.User, error) {
	users := s.db.Collection(database.ColUsers)

	err := users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		ID:               uuid.NewString(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		CorporateEmail:   req.CorporateEmail,
		Designation:      req.Designation,
		ContactNumber:    req.ContactNumber,
		PasswordHash:     hash,
		Role:             role,
		Status:           models.StatusActive,
		CreatedAt:        time.Now().UTC(),
	}

	if _, err := users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser merges the non-nil fields. A new password is hashed
// before it reaches the store.
func (s *AdminService) UpdateUser(ctx context.Context, id string, update *models.UserUpdate) error {
	set := bson.M{}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.OrganizationName != nil {
		set["organization_name"] = *update.OrganizationName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.CorporateEmail != nil {
		set["corporate_email"] = *update.CorporateEmail
	}
	if update.Designation != nil {
		set["designation"] = *update.Designation
	}
	if update.ContactNumber != nil {
		set["contact_number"] = *update.ContactNumber
	}
	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password)
		if err != nil {
			return err
		}
		set["password_hash"] = hash
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if len(set) == 0 {
		return ensureExists(ctx, s.db.Collection(database.ColUsers), id)
	}

	res, err := s.db.Collection(database.ColUsers).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	res, err := s.db.Collection(database.ColUsers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PlatformStats assembles the admin dashboard: user totals by role,
// assessment volume, the ten most recent assessments annotated with
// their owners, and a per-user activity table.
func (s *AdminService) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	users := s.db.Collection(database.ColUsers)
	assessments := s.db.Collection(database.ColAssessments)
	responses := s.db.Collection(database.ColResponses)

	totalUsers, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	adminUsers, err := users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, err
	}
	regularUsers, err := users.CountDocuments(ctx, bson.M{"role": models.RoleUser})
	if err != nil {
		return nil, err
	}

	totalAssessments, err := assessments.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalResponses, err := responses.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	avgResponses := 0.0
	if totalAssessments > 0 {
		avgResponses = scoring.Round2(float64(totalResponses) / float64(totalAssessments))
	}

	recent, err := s.recentAssessments(ctx, 10)
	if err != nil {
		return nil, err
	}

	activities, err := s.userActivities(ctx)
	if err != nil {
		return nil, err
	}

	return &models.PlatformStats{
		UserStats: models.UserStats{
			TotalUsers:   totalUsers,
			AdminUsers:   adminUsers,
			RegularUsers: regularUsers,
		},
		AssessmentStats: models.AssessmentTotals{
			TotalAssessments:              totalAssessments,
			TotalResponses:                totalResponses,
			AverageResponsesPerAssessment: avgResponses,
		},
		RecentAssessments: recent,
		UserActivities:    activities,
	}, nil
}

func (s *AdminService) recentAssessments(ctx context.Context, limit int64) ([]models.RecentAssessment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "submission_date", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.db.Collection(database.ColAssessments).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Assessment
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	recent := []models.RecentAssessment{}
	for _, a := range list {
		entry := models.RecentAssessment{Assessment: a, UserName: "Unknown", UserEmail: "Unknown"}

		var user models.User
		err := s.db.Collection(database.ColUsers).
			FindOne(ctx, bson.M{"_id": a.UserID}).
			Decode(&user)
		if err == nil {
			entry.UserName = fmt.Sprintf("%s %s", user.FirstName, user.LastName)
			entry.UserEmail = user.Email
		}
		recent = append(recent, entry)
	}
	return recent, nil
}

func (s *AdminService) userActivities(ctx context.Context) ([]models.UserActivity, error) {
	cursor, err := s.db.Collection(database.ColUsers).Find(ctx, bson.M{"role": models.RoleUser})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	assessments := s.db.Collection(database.ColAssessments)
	activities := []models.UserActivity{}
	for _, user := range users {
		count, err := assessments.CountDocuments(ctx, bson.M{"user_id": user.ID})
		if err != nil {
			return nil, err
		}

		activity := models.UserActivity{
			UserID:          user.ID,
			Name:            fmt.Sprintf("%s %s", user.FirstName, user.LastName),
			Email:           user.Email,
			Organization:    user.OrganizationName,
			AssessmentCount: count,
			Status:          user.Status,
		}

		var latest models.Assessment
		err = assessments.FindOne(ctx, bson.M{"user_id": user.ID},
			options.FindOne().SetSort(bson.D{{Key: "submission_date", Value: -1}})).
			Decode(&latest)
		if err == nil {
			activity.LatestAssessment = &latest.SubmissionDate
		}

		activities = append(activities, activity)
	}
	return activities, nil
}

// ContentStats counts every catalog collection.
func (s *AdminService) ContentStats(ctx context.Context) (*models.ContentStats, error) {
	stats := &models.ContentStats{}
	var err error

	if stats.Domains, err = s.db.Collection(database.ColDomains).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.SubDomains, err = s.db.Collection(database.ColSubDomains).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Controls, err = s.db.Collection(database.ColControls).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Metrics, err = s.db.Collection(database.ColMetrics).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Questions, err = s.db.Collection(database.ColQuestions).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	return stats, nil
}

// ClearAllData wipes every collection. Admin-only bulk reset; this is
// the sole path that deletes recorded responses.
func (s *AdminService) ClearAllData(ctx context.Context) error {
	collections := []string{
		database.ColDomains,
		database.ColSubDomains,
		database.ColControls,
		database.ColMetrics,
		database.ColQuestions,
		database.ColUsers,
		database.ColAssessments,
		database.ColResponses,
		database.ColLoginAttempts,
	}

	for _, name := range collections {
		if _, err := s.db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	return nil
}
