package http

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Request bodies follow the wire format the dashboard already speaks:
// camelCase fields, dates as "2006-01-02" (RFC3339 also accepted), and an
// optional "_id" selecting an existing record to overwrite.

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type upsertProfileRequest struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Website  string `json:"website"`
}

type upsertSkillRequest struct {
	ID    string `json:"_id"`
	Skill string `json:"skill"`
	Level string `json:"level"`
}

type upsertExperienceRequest struct {
	ID          string `json:"_id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type upsertEducationRequest struct {
	ID           string `json:"_id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Grade        string `json:"grade"`
}

type upsertProjectRequest struct {
	ID           string   `json:"_id"`
	Project      string   `json:"project"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubLink   string   `json:"githubLink"`
	LiveDemo     string   `json:"liveDemo"`
}

type upsertCertificateRequest struct {
	ID              string `json:"_id"`
	Title           string `json:"title"`
	Issuer          string `json:"issuer"`
	IssueDate       string `json:"issueDate"`
	Description     string `json:"description"`
	CertificateLink string `json:"certificateLink"`
}

type portfolioRequest struct {
	Username string `json:"username"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts the empty string and returns the zero time for it, so
// required-date validation stays in the domain layer.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseRecordID maps an absent "_id" to uuid.Nil, the create marker.
func parseRecordID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}
