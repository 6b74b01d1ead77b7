package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"

	studentmodel "swaram_backend/internals/features/academics/students/model"
	feemodel "swaram_backend/internals/features/finance/fees/model"
	helper "swaram_backend/internals/helpers"
)

// Academy letterhead. Shared by the admission form and printed receipts.
const (
	AcademyName    = "Swaram Music Academy"
	AcademyAddress = "A-408, Raj Corner, Opp. Vasupujya Residency, Pal, Surat - 395 009"
	AcademyEmail   = "swaram.music.academy@gmail.com"
	AcademyMobile  = "+91 75730 34123, +91 98980 94123"
)

// admissionRules are printed on the second page of every admission form.
var admissionRules = []string{
	"Our academy is affiliated with Mahagujarat Gandharv Sangeet Samiti, Surat and all courses taught by our institute are government recognized.",
	"Registration fees will be charged only once at the time of admission.",
	"The first installment of fees should be paid at the time of registration. Fees once paid will not be refunded.",
	"Examination fees will be charged separately.",
	"In case of irregularity and non-payment of fees, a PENALTY will be charged and the student will not be allowed to appear for the examination.",
	"Students should maintain discipline and uphold the decorum of the music academy.",
	"Regular riyaz must be done by the student without fail.",
	"Parents are not allowed to enter the academy during an ongoing session.",
	"Parents of children below age 10 should personally drop and pick their child from the academy.",
	"Students must attend classes regularly and should not remain absent without prior notice.",
	"It is compulsory for all students to attend the practice sessions and appear for the examination.",
	"Students enrolled in the academy are informed to use the lift at their own risk, as only 4 persons are allowed at a time.",
}

const admissionNotice = "The Academy does not take responsibility for students who do not follow the above-mentioned rules."

// =========================
// Document payload
// The console's PDF layer renders this as-is.
// =========================

type FormHeader struct {
	AcademyName string `json:"academy_name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Date        string `json:"date"`
	GRNo        int    `json:"gr_no"`
}

type FormPersonal struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type FormContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Mobile       string `json:"mobile"`
	Whatsapp     string `json:"whatsapp,omitempty"`
	Email        string `json:"email,omitempty"`
}

type FormEnrollment struct {
	Course     string `json:"course"`
	YearNumber int    `json:"year_number"`
}

type FormFee struct {
	Course        string `json:"course"`
	YearNumber    int    `json:"year_number"`
	TotalAmount   int    `json:"total_amount"`
	AmountInWords string `json:"amount_in_words"`
}

type AdmissionForm struct {
	Header      FormHeader       `json:"header"`
	Personal    FormPersonal     `json:"personal"`
	Contacts    []FormContact    `json:"contacts"`
	Enrollments []FormEnrollment `json:"enrollments"`
	Fees        []FormFee        `json:"fees"`
	Rules       []string         `json:"rules"`
	Notice      string           `json:"notice"`
}

type AdmissionFormService struct {
	DB *gorm.DB
}

func NewAdmissionFormService(db *gorm.DB) *AdmissionFormService {
	return &AdmissionFormService{DB: db}
}

// BuildAdmissionForm assembles the printable admission form for a student.
func (s *AdmissionFormService) BuildAdmissionForm(ctx context.Context, studentID uuid.UUID) (AdmissionForm, error) {
	var form AdmissionForm

	var st studentmodel.Student
	if err := s.DB.WithContext(ctx).
		Preload("Address").
		Preload("Contacts").
		Preload("Contacts.Contact").
		Where("id = ?", studentID).
		First(&st).Error; err != nil {
		return form, err
	}

	now := time.Now()
	form.Header = FormHeader{
		AcademyName: AcademyName,
		Address:     AcademyAddress,
		Email:       AcademyEmail,
		Mobile:      AcademyMobile,
		Date:        now.Format("2/1/2006"),
		GRNo:        st.GrNo,
	}
	form.Personal = buildPersonal(st, now)
	form.Contacts = buildContacts(st.Contacts)
	form.Rules = admissionRules
	form.Notice = admissionNotice

	var summaries []feemodel.FeeSummary
	if err := s.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&summaries).Error; err != nil {
		return form, err
	}

	form.Enrollments = make([]FormEnrollment, 0, len(summaries))
	form.Fees = make([]FormFee, 0, len(summaries))
	for _, sum := range summaries {
		courseName := s.courseName(ctx, sum.CourseID)
		form.Enrollments = append(form.Enrollments, FormEnrollment{
			Course:     courseName,
			YearNumber: sum.YearNumber,
		})
		form.Fees = append(form.Fees, FormFee{
			Course:        courseName,
			YearNumber:    sum.YearNumber,
			TotalAmount:   sum.TotalAmount,
			AmountInWords: helper.NumberToWords(sum.TotalAmount),
		})
	}

	return form, nil
}

func (s *AdmissionFormService) courseName(ctx context.Context, courseID *uuid.UUID) string {
	if courseID == nil {
		return ""
	}
	var name string
	s.DB.WithContext(ctx).
		Table("courses").
		Select("name").
		Where("id = ?", *courseID).
		Scan(&name)
	return name
}

func buildPersonal(st studentmodel.Student, now time.Time) FormPersonal {
	p := FormPersonal{
		Name:   st.FullName(),
		Gender: string(st.Gender),
	}
	if st.AvatarURL != nil {
		p.AvatarURL = *st.AvatarURL
	}
	if !st.DateOfBirth.IsZero() {
		p.Age = ageAt(st.DateOfBirth, now)
	}
	if st.Address != nil {
		p.Address = joinAddressLines(st.Address)
		p.City = st.Address.City
		p.State = st.Address.State
		p.Pincode = st.Address.Zipcode
	}
	return p
}

func joinAddressLines(a *studentmodel.Address) string {
	out := a.Line1
	if a.Line2 != nil && *a.Line2 != "" {
		out = fmt.Sprintf("%s, %s", out, *a.Line2)
	}
	if a.Unit != nil && *a.Unit != "" {
		out = fmt.Sprintf("%s, %s", out, *a.Unit)
	}
	return out
}

func buildContacts(links []studentmodel.StudentContact) []FormContact {
	out := make([]FormContact, 0, len(links))
	for _, link := range links {
		if link.Contact == nil {
			continue
		}
		fc := FormContact{
			Name:   link.Contact.ContactName,
			Mobile: link.Contact.Phone,
		}
		if link.Relationship != nil {
			fc.Relationship = string(*link.Relationship)
		}
		if link.Contact.WhatsappNum != nil {
			fc.Whatsapp = *link.Contact.WhatsappNum
		}
		if link.Contact.Email != nil {
			fc.Email = *link.Contact.Email
		}
		out = append(out, fc)
	}
	return out
}

// ageAt is the completed-years age on the given date.
func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
