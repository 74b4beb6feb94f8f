package seeder

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Default credentials created by SeedSampleData.
const (
	DefaultAdminEmail    = "admin@secassess.com"
	DefaultAdminPassword = "admin123"
	DefaultUserEmail     = "testuser@example.com"
	DefaultUserPassword  = "user123"
)

// SeedResult reports what was created.
type SeedResult struct {
	Domains   int
	Questions int
	Users     int
}

type domainSeed struct {
	name        string
	description string
	icon        string
	subdomains  []string
	questions   []string
}

var sampleDomains = []domainSeed{
	{
		name:        "Information Security Governance",
		description: "Overall security governance and management",
		icon:        "🏛️",
		subdomains:  []string{"Security Policies", "Risk Management"},
		questions: []string{
			"How comprehensive is your organization's information security policy framework?",
			"How frequently does your organization conduct risk assessments?",
		},
	},
	{
		name:        "Access Control",
		description: "User access and authentication controls",
		icon:        "🔐",
		subdomains:  []string{"User Authentication", "Authorization Management"},
		questions: []string{
			"How robust is your multi-factor authentication implementation?",
			"How effectively does your organization manage user access permissions?",
		},
	},
	{
		name:        "Data Protection",
		description: "Data security and privacy measures",
		icon:        "🛡️",
		subdomains:  []string{"Data Classification", "Data Encryption"},
		questions: []string{
			"How comprehensive is your data classification scheme?",
			"How extensive is your data encryption coverage?",
		},
	},
	{
		name:        "Network Security",
		description: "Network infrastructure security",
		icon:        "🌐",
		subdomains:  []string{"Firewall Management", "Network Monitoring"},
		questions: []string{
			"How effective is your firewall configuration and management?",
			"How comprehensive is your network monitoring and detection capability?",
		},
	},
	{
		name:        "Incident Response",
		description: "Security incident handling procedures",
		icon:        "🚨",
		subdomains:  []string{"Incident Detection", "Response Procedures"},
		questions: []string{
			"How effective is your incident detection and alerting system?",
			"How well-defined are your incident response procedures?",
		},
	},
}

// Standard maturity ladder attached to every sample question.
var answerLadder = []string{
	"Not implemented or very poor",
	"Basic implementation with significant gaps",
	"Partially implemented covering key areas",
	"Well implemented but needs improvement",
	"Comprehensive implementation with regular reviews",
	"Excellent implementation with continuous improvement",
}

// SeedSampleData populates the catalog and default accounts. Returns
// (nil, nil) when domains already exist so repeated calls are no-ops.
func SeedSampleData(ctx context.Context, db *database.Mongo) (*SeedResult, error) {
	existing, err := db.Collection(database.ColDomains).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, nil
	}

	result := &SeedResult{}

	for order, seed := range sampleDomains {
		domain := models.Domain{
			ID:          uuid.NewString(),
			Name:        seed.name,
			Description: seed.description,
			Icon:        seed.icon,
			Order:       order + 1,
		}
		if _, err := db.Collection(database.ColDomains).InsertOne(ctx, domain); err != nil {
			return nil, err
		}
		result.Domains++

		for i, subName := range seed.subdomains {
			subdomain := models.SubDomain{
				ID:       uuid.NewString(),
				Name:     subName,
				DomainID: domain.ID,
			}
			if _, err := db.Collection(database.ColSubDomains).InsertOne(ctx, subdomain); err != nil {
				return nil, err
			}

			control := models.Control{
				ID:          uuid.NewString(),
				Name:        fmt.Sprintf("%s Framework", subName),
				Definition:  fmt.Sprintf("Established %s framework and procedures", strings.ToLower(subName)),
				SubDomainID: subdomain.ID,
			}
			if _, err := db.Collection(database.ColControls).InsertOne(ctx, control); err != nil {
				return nil, err
			}

			metric := models.Metric{
				ID:        uuid.NewString(),
				Name:      fmt.Sprintf("%s Effectiveness", control.Name),
				ControlID: control.ID,
			}
			if _, err := db.Collection(database.ColMetrics).InsertOne(ctx, metric); err != nil {
				return nil, err
			}

			question := models.Question{
				ID:           uuid.NewString(),
				QuestionText: seed.questions[i],
				DomainID:     domain.ID,
				SubDomainID:  subdomain.ID,
				ControlID:    control.ID,
				MetricID:     metric.ID,
				Answers:      buildAnswerLadder(),
			}
			if _, err := db.Collection(database.ColQuestions).InsertOne(ctx, question); err != nil {
				return nil, err
			}
			result.Questions++
		}
	}

	users, err := defaultUsers()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if _, err := db.Collection(database.ColUsers).InsertOne(ctx, user); err != nil {
			return nil, err
		}
		result.Users++
	}

	log.Printf("🌱 Sample data seeded: %d domains, %d questions, %d users", result.Domains, result.Questions, result.Users)
	return result, nil
}

func buildAnswerLadder() []models.Answer {
	answers := make([]models.Answer, 0, len(answerLadder))
	for score, text := range answerLadder {
		answers = append(answers, models.Answer{
			ID:         uuid.NewString(),
			AnswerText: text,
			ScoreValue: score,
		})
	}
	return answers
}

func defaultUsers() ([]models.User, error) {
	adminHash, err := utils.HashPassword(DefaultAdminPassword)
	if err != nil {
		return nil, err
	}
	userHash, err := utils.HashPassword(DefaultUserPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return []models.User{
		{
			ID:               uuid.NewString(),
			FirstName:        "Admin",
			LastName:         "User",
			OrganizationName: "System",
			Email:            DefaultAdminEmail,
			Designation:      "System Administrator",
			PasswordHash:     adminHash,
			Role:             models.RoleAdmin,
			Status:           models.StatusActive,
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			FirstName:        "Test",
			LastName:         "User",
			OrganizationName: "Test Organization",
			Email:            DefaultUserEmail,
			Designation:      "Security Analyst",
			PasswordHash:     userHash,
			Role:             models.RoleUser,
			Status:           models.StatusActive,
			CreatedAt:        now,
		},
	}, nil
}
