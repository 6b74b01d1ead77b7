package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS
// =========================================================

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Relation string

const (
	RelationSelf     Relation = "Self"
	RelationFather   Relation = "Father"
	RelationMother   Relation = "Mother"
	RelationGuardian Relation = "Guardian"
)

// =========================================================
// MODEL students
// =========================================================

type Student struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	GrNo          int        `gorm:"column:gr_no;not null;uniqueIndex;autoIncrement" json:"gr_no"`
	FirstName     string     `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	MiddleName    *string    `gorm:"column:middle_name;type:varchar(100)" json:"middle_name,omitempty"`
	LastName      string     `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Gender        Gender     `gorm:"column:gender;type:gender;not null" json:"gender"`
	DateOfBirth   time.Time  `gorm:"column:date_of_birth;type:date;not null" json:"date_of_birth"`
	AdmissionDate time.Time  `gorm:"column:admission_date;type:date;not null;default:now()" json:"admission_date"`
	AvatarURL     *string    `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`
	FormURL       *string    `gorm:"column:form_url;type:text" json:"form_url,omitempty"`
	AddressID     *uuid.UUID `gorm:"column:address_id;type:uuid;index" json:"address_id,omitempty"`
	CreatedAt     *time.Time `gorm:"column:created_at;default:now()" json:"created_at,omitempty"`

	Address  *Address         `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Contacts []StudentContact `gorm:"foreignKey:StudentID" json:"contacts,omitempty"`
}

func (Student) TableName() string { return "students" }

// FullName joins the name parts, skipping an empty middle name.
func (m Student) FullName() string {
	parts := []string{m.FirstName}
	if m.MiddleName != nil && *m.MiddleName != "" {
		parts = append(parts, *m.MiddleName)
	}
	parts = append(parts, m.LastName)
	return strings.Join(parts, " ")
}

// =========================================================
// MODEL addresses
// =========================================================

type Address struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Line1     string     `gorm:"column:line_1;type:text;not null" json:"line_1"`
	Line2     *string    `gorm:"column:line_2;type:text" json:"line_2,omitempty"`
	Unit      *string    `gorm:"column:unit;type:varchar(50)" json:"unit,omitempty"`
	City      string     `gorm:"column:city;type:varchar(100);not null" json:"city"`
	State     string     `gorm:"column:state;type:varchar(100);not null" json:"state"`
	Country   string     `gorm:"column:country;type:varchar(100);not null" json:"country"`
	Zipcode   string     `gorm:"column:zipcode;type:varchar(20);not null" json:"zipcode"`
	CreatedAt *time.Time `gorm:"column:created_at;default:now()" json:"created_at,omitempty"`
}

func (Address) TableName() string { return "addresses" }

// =========================================================
// MODEL contacts + students_contacts join
// =========================================================

type Contact struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContactName string     `gorm:"column:contact_name;type:varchar(100);not null" json:"contact_name"`
	Phone       string     `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	WhatsappNum *string    `gorm:"column:whatsapp_num;type:varchar(20)" json:"whatsapp_num,omitempty"`
	Email       *string    `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	CreatedAt   *time.Time `gorm:"column:created_at;default:now()" json:"created_at,omitempty"`
}

func (Contact) TableName() string { return "contacts" }

type StudentContact struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID  `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	ContactID    uuid.UUID  `gorm:"column:contact_id;type:uuid;not null;index" json:"contact_id"`
	Relationship *Relation  `gorm:"column:relationship;type:relation" json:"relationship,omitempty"`
	Occupation   *string    `gorm:"column:occupation;type:varchar(100)" json:"occupation,omitempty"`
	CreatedAt    *time.Time `gorm:"column:created_at;default:now()" json:"created_at,omitempty"`

	Contact *Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
}

func (StudentContact) TableName() string { return "students_contacts" }

// hook kept tiny: only ensure created_at on fresh rows
func (m *StudentContact) BeforeCreate(tx *gorm.DB) (err error) {
	if m.CreatedAt == nil {
		now := time.Now()
		m.CreatedAt = &now
	}
	return nil
}
