package service

import (
	"testing"
	"time"

	studentmodel "swaram_backend/internals/features/academics/students/model"
)

func strp(s string) *string { return &s }

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday passed this year", time.Date(2002, time.March, 10, 0, 0, 0, 0, time.UTC), 24},
		{"birthday later this year", time.Date(2002, time.December, 10, 0, 0, 0, 0, time.UTC), 23},
		{"birthday today", time.Date(2002, time.September, 1, 0, 0, 0, 0, time.UTC), 24},
		{"newborn", time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC), 0},
		{"dob in the future", time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ageAt(tt.dob, now); got != tt.want {
				t.Errorf("ageAt(%v) = %d, want %d", tt.dob.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestJoinAddressLines(t *testing.T) {
	tests := []struct {
		name string
		addr studentmodel.Address
		want string
	}{
		{"line 1 only", studentmodel.Address{Line1: "45/A, MG Road"}, "45/A, MG Road"},
		{"with line 2", studentmodel.Address{Line1: "45/A, MG Road", Line2: strp("Sector 21")}, "45/A, MG Road, Sector 21"},
		{"with unit", studentmodel.Address{Line1: "Raj Corner", Line2: strp("Pal"), Unit: strp("A-408")}, "Raj Corner, Pal, A-408"},
		{"empty line 2 skipped", studentmodel.Address{Line1: "Raj Corner", Line2: strp("")}, "Raj Corner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinAddressLines(&tt.addr); got != tt.want {
				t.Errorf("joinAddressLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildContacts(t *testing.T) {
	father := studentmodel.RelationFather
	links := []studentmodel.StudentContact{
		{
			Relationship: &father,
			Contact: &studentmodel.Contact{
				ContactName: "Rakesh Sharma",
				Phone:       "+91 98798 79879",
				WhatsappNum: strp("+91 98797 98798"),
				Email:       strp("email12345@gmail.com"),
			},
		},
		{Contact: nil}, // dangling link rows are skipped
	}

	out := buildContacts(links)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	got := out[0]
	if got.Name != "Rakesh Sharma" || got.Relationship != "Father" {
		t.Errorf("contact = %+v, want Rakesh Sharma / Father", got)
	}
	if got.Whatsapp != "+91 98797 98798" || got.Email != "email12345@gmail.com" {
		t.Errorf("optional fields = %q / %q, want carried through", got.Whatsapp, got.Email)
	}
}

func TestBuildPersonal(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	st := studentmodel.Student{
		FirstName:   "Rahul",
		LastName:    "Sharma",
		Gender:      studentmodel.GenderMale,
		DateOfBirth: time.Date(2002, time.March, 10, 0, 0, 0, 0, time.UTC),
		Address: &studentmodel.Address{
			Line1:   "45/A, MG Road",
			Line2:   strp("Sector 21"),
			City:    "Pune",
			State:   "Maharashtra",
			Zipcode: "411001",
		},
	}

	p := buildPersonal(st, now)
	if p.Name != "Rahul Sharma" {
		t.Errorf("Name = %q, want Rahul Sharma", p.Name)
	}
	if p.Age != 24 {
		t.Errorf("Age = %d, want 24", p.Age)
	}
	if p.Address != "45/A, MG Road, Sector 21" || p.City != "Pune" || p.Pincode != "411001" {
		t.Errorf("address block = %+v", p)
	}
}
