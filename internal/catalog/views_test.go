package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-portal/internal/models"
)

func TestSearchHospitals(t *testing.T) {
	t.Run("empty query returns all", func(t *testing.T) {
		assert.Len(t, SearchHospitals("  "), 4)
	})

	t.Run("matches name ignoring case", func(t *testing.T) {
		got := SearchHospitals("medicare")
		require.Len(t, got, 1)
		assert.Equal(t, "Medicare Center", got[0].Name)
	})

	t.Run("matches location", func(t *testing.T) {
		got := SearchHospitals("west end")
		require.Len(t, got, 1)
		assert.Equal(t, "4", got[0].ID)
	})

	t.Run("matches full address", func(t *testing.T) {
		got := SearchHospitals("12347")
		require.Len(t, got, 1)
		assert.Equal(t, "Healthcare Plus", got[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		got := SearchHospitals("nowhere")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSearchHospitalsReturnsCopies(t *testing.T) {
	got := SearchHospitals("City General")
	require.Len(t, got, 1)
	got[0].Departments[0] = "Changed"

	h, ok := HospitalByID("1")
	require.True(t, ok)
	assert.Equal(t, "Cardiology", h.Departments[0])
}

func TestDoctorsFor(t *testing.T) {
	tests := []struct {
		name       string
		hospitalID string
		department string
		wantIDs    []string
	}{
		{"no filters", "", "", []string{"1", "2", "3", "4", "5", "6"}},
		{"hospital only", "1", "", []string{"1", "2", "6"}},
		{"hospital and department", "1", "Cardiology", []string{"1", "2"}},
		{"department only", "", "Neurology", []string{"4"}},
		{"department not staffed at hospital", "3", "Cardiology", []string{}},
		{"unknown hospital", "99", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DoctorsFor(tt.hospitalID, tt.department)
			ids := make([]string, 0, len(got))
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestAvailabilityOn(t *testing.T) {
	doc, ok := DoctorByID("2")
	require.True(t, ok)

	// 2026-10-12 is a Monday; Dr. Wilson works Tuesdays and Thursdays.
	monday := time.Date(2026, time.October, 12, 10, 0, 0, 0, time.UTC)
	got := AvailabilityOn(doc.Availability, monday)
	assert.False(t, got.Available)
	assert.Equal(t, NotAvailableMessage, got.Message)
	assert.Nil(t, got.Slots)
	assert.Equal(t, "Monday", got.Day)

	tuesday := monday.AddDate(0, 0, 1)
	got = AvailabilityOn(doc.Availability, tuesday)
	assert.True(t, got.Available)
	assert.Empty(t, got.Message)
	assert.Equal(t, []string{"10:00 AM - 01:00 PM", "03:00 PM - 06:00 PM"}, got.Slots)
}

func TestAvailabilityOnEmptySchedule(t *testing.T) {
	got := AvailabilityOn(nil, time.Now())
	assert.False(t, got.Available)
	assert.Equal(t, "Not available today", got.Message)
}

func TestSlotsOn(t *testing.T) {
	sched := []models.Availability{{Day: "Friday", Slots: []string{"09:00 AM - 12:00 PM"}}}
	assert.Equal(t, []string{"09:00 AM - 12:00 PM"}, SlotsOn(sched, "Friday"))
	assert.Nil(t, SlotsOn(sched, "Saturday"))
}

func TestIsDepartment(t *testing.T) {
	assert.True(t, IsDepartment("ENT"))
	assert.False(t, IsDepartment("ent"))
	assert.Len(t, Departments(), 8)
}

func TestMatchDemoPatient(t *testing.T) {
	c, ok := MatchDemoPatient("PATIENT1@example.com", "Patient@123")
	require.True(t, ok)
	assert.Equal(t, "patient1", c.Username)

	_, ok = MatchDemoPatient("john.doe", "John@2024")
	assert.True(t, ok)

	_, ok = MatchDemoPatient("john.doe", "john@2024")
	assert.False(t, ok)
}

func TestDemoRecords(t *testing.T) {
	p := DemoPatient(DemoPatients()[0])
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, models.BloodOPositive, p.BloodGroup)
	assert.NotNil(t, p.Documents)

	assert.Equal(t, "Jane Smith", DemoPatient(DemoPatients()[1]).Name)
	assert.Len(t, DemoDoctor(DemoDoctors()[0]).TreatmentHistory, 3)
	assert.Len(t, DefaultDoctor("x").TreatmentHistory, 5)
	assert.Empty(t, DemoAdmin(DemoAdmins()[0]).Departments)
}

func TestHospitalMapsLinks(t *testing.T) {
	want := map[string]string{
		"1": "https://www.google.com/maps/search/?api=1&query=City+General+Hospital+Downtown",
		"2": "https://www.google.com/maps/search/?api=1&query=Medicare+Center+North+Avenue",
		"3": "https://www.google.com/maps/search/?api=1&query=Healthcare+Plus+East+Side",
		"4": "https://www.google.com/maps/search/?api=1&query=Royal+Medical+Institute+West+End",
	}
	for id, link := range want {
		h, ok := HospitalByID(id)
		require.True(t, ok, id)
		assert.Equal(t, link, h.GoogleMapsLink)
	}
}
