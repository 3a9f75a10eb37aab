package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint status enum constants
const (
	StatusPending  = "pending"
	StatusAssigned = "assigned"
	StatusResolved = "resolved"
)

// statusTransitions lists the legal moves of the complaint lifecycle:
// pending -> assigned -> resolved, plus the manual reopen resolved -> assigned.
// The legacy UI gated these with buttons only; the server now enforces them.
var statusTransitions = map[string][]string{
	StatusPending:  {StatusAssigned},
	StatusAssigned: {StatusResolved},
	StatusResolved: {StatusAssigned},
}

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether moving a complaint from current to next is a
// legal lifecycle move. A same-state "transition" is treated as a no-op and
// allowed, which keeps repeated reopen calls idempotent.
func CanTransition(current, next string) bool {
	if current == next {
		return true
	}
	for _, allowed := range statusTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Complaint is a client-filed issue record tracked through the
// pending/assigned/resolved lifecycle. Field names follow the column names of
// the original complaints table, including the extended claim-form fields.
type Complaint struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"client_id"`
	Client        *User      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	FournisseurID *uuid.UUID `gorm:"type:uuid;index" json:"fournisseur_id"`
	Fournisseur   *User      `gorm:"foreignKey:FournisseurID" json:"fournisseur,omitempty"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Extended claim-form fields
	ClaimNumber        string   `gorm:"type:varchar(100)" json:"claimnumber,omitempty"`
	ArticleNumber      string   `gorm:"type:varchar(100)" json:"articlenumber,omitempty"`
	ArticleDescription string   `gorm:"type:text" json:"articledescription,omitempty"`
	DeliveryNoteNumber string   `gorm:"type:varchar(100)" json:"deliverynotenumber,omitempty"`
	Supplier           string   `gorm:"type:varchar(255)" json:"supplier,omitempty"`
	TotalQuantity      int      `json:"totalquantity,omitempty"`
	DefectiveQuantity  int      `json:"defectivequantity,omitempty"`
	ContactPerson      string   `gorm:"type:varchar(255)" json:"contactperson,omitempty"`
	ContactName        string   `gorm:"type:varchar(255)" json:"contactname,omitempty"`
	ContactEmail       string   `gorm:"type:varchar(255)" json:"contactemail,omitempty"`
	ContactPhone       string   `gorm:"type:varchar(50)" json:"contactphone,omitempty"`
	ErrorDescription   string   `gorm:"type:text" json:"errordescription,omitempty"`
	StatementResponse  string   `gorm:"type:varchar(10)" json:"statementresponse,omitempty"`
	ReportDeadline     string   `gorm:"type:varchar(10)" json:"reportdeadline,omitempty"` // "3D", "5D" or "8D"
	Replacement        bool     `json:"replacement"`
	CreditNote         bool     `json:"creditnote"`
	Remarks            string   `gorm:"type:text" json:"remarks,omitempty"`
	ErrorPictures      []string `gorm:"serializer:json;type:text" json:"errorpictures,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
