package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxCaseTitleLength is the longest case title the intake accepts
const MaxCaseTitleLength = 100

// SupportCaseStatus represents the lifecycle state of a support case
type SupportCaseStatus string

const (
	SupportCaseStatusOpen     SupportCaseStatus = "open"
	SupportCaseStatusAssigned SupportCaseStatus = "assigned"
)

// SupportCase is a customer support case opened from the portal
type SupportCase struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title        string            `gorm:"type:varchar(100);not null" json:"title"`
	DomainID     string            `gorm:"type:varchar(255)" json:"domain_id"`
	TemplateID   string            `gorm:"type:varchar(255)" json:"template_id"`
	CustomerRef  string            `gorm:"type:varchar(255)" json:"customer_ref"`
	AssignedUser string            `gorm:"type:varchar(255)" json:"assigned_user"`
	Status       SupportCaseStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`
	AssignedAt   *time.Time        `json:"assigned_at"`
}
