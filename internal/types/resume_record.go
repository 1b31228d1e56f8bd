// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the persisted representation of one candidate's resume,
// as produced by the structured extractor.
type ResumeRecord struct {
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Skills         []string         `json:"skills"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`

	// RawText is the full extracted PDF text, kept for audit and debugging.
	// It is never shown in the structured view.
	RawText string `json:"raw_text,omitempty"`

	// SourceFilename is set after load to the name of the file the record
	// came from. It is never persisted.
	SourceFilename string `json:"__filename,omitempty"`
}

// WorkExperience represents a single work history entry
type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

// Education represents a formal academic degree
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	GraduationDate string `json:"graduation_date"`
	Details        string `json:"details,omitempty"`
}

// Certification represents a professional certification, online course, or
// other non-degree learning achievement
type Certification struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization"`
	DateObtained        string `json:"date_obtained"`
	Details             string `json:"details,omitempty"`
}

// ContactInfo holds the minimal contact fields used by the first pipeline gate
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Complete reports whether the contact info clears the first gate: a
// non-empty name and a well-formed email address.
func (c *ContactInfo) Complete() bool {
	if c == nil {
		return false
	}
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return false
	}
	return validate.Var(c.Email, "email") == nil
}

// HasSkill reports whether the record lists the given skill verbatim
func (r *ResumeRecord) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// HasAllSkills reports whether the record lists every one of the given skills
func (r *ResumeRecord) HasAllSkills(skills []string) bool {
	for _, skill := range skills {
		if !r.HasSkill(skill) {
			return false
		}
	}
	return true
}
