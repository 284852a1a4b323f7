package web

import (
	"bytes"
	"strings"
	"testing"

	domain "github.com/BruksfildServices01/barber-frontend/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/models"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, name := range []string{"index.html", "login_user.html", "login_admin.html", "admin_manager.html", "barber.html", "productos.html", "venta.html", "booking.html"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("expected template %s", name)
		}
	}
}

func TestBookingTemplateRendersSlots(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	form := domain.NewBookingForm("2025-01-01")
	form.Values = domain.AppointmentRequest{Date: "2025-01-10", BarberID: "2", Time: "11:00"}
	form.Slots = []string{"10:00", "11:00"}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "booking.html", map[string]any{
		"Title":    "Reservar",
		"User":     (*models.User)(nil),
		"Error":    "",
		"Form":     form,
		"Barberos": []models.Barber{{ID: 2, Name: "Juan"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{domain.SlotPlaceholder, `value="11:00" selected`, `value="2" selected`, `min="2025-01-01"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
}
