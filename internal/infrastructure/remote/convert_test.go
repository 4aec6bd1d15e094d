package remote

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Project
// ---------------------------------------------------------------------------

func TestProjectDTO_ToModel(t *testing.T) {
	raw := `{
		"_id": "p-100",
		"name": "Harbor deck rebuild",
		"address": "12 Pier Rd",
		"client": {"unique_id": "c-7", "label": "Harbor Homes"},
		"client_name": "Harbor Homes",
		"company": "co-1",
		"status": "InProgress",
		"startDate": 1700000000,
		"completion": 75.4,
		"tasks": ["t-1", "t-2"],
		"images": null,
		"all_day": true,
		"duration": 5,
		"deletedAt": null
	}`

	var dto ProjectDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := dto.ToModel()
	if p == nil {
		t.Fatal("expected a model, got nil")
	}

	if p.ID != "p-100" {
		t.Errorf("ID: got %q", p.ID)
	}
	if p.ClientID != "c-7" {
		t.Errorf("expanded client ref must collapse to its id, got %q", p.ClientID)
	}
	if p.CompanyID != "co-1" {
		t.Errorf("bare company ref: got %q", p.CompanyID)
	}
	if p.Status != domain.ProjectStatusInProgress {
		t.Errorf("status: got %q", p.Status)
	}
	want := time.Unix(1700000000, 0).UTC()
	if p.StartDate == nil || !p.StartDate.Equal(want) {
		t.Errorf("startDate: want %v, got %v", want, p.StartDate)
	}
	if p.Completion != 75 {
		t.Errorf("completion: want 75, got %d", p.Completion)
	}
	if len(p.TaskIDs) != 2 {
		t.Errorf("task ids: want 2, got %d", len(p.TaskIDs))
	}
	if p.CalendarEventIDs == nil || p.ImageURLs == nil {
		t.Error("list fields must never be nil")
	}
	if !p.AllDay || p.Duration != 5 {
		t.Errorf("all_day/duration: got %v/%d", p.AllDay, p.Duration)
	}
	if p.DeletedAt != nil {
		t.Errorf("deletedAt: want nil, got %v", p.DeletedAt)
	}
}

func TestProjectDTO_ToModel_MissingID(t *testing.T) {
	var dto ProjectDTO
	if err := json.Unmarshal([]byte(`{"name": "orphan"}`), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.ToModel() != nil {
		t.Error("record without id must convert to nil")
	}
}

func TestProjectDTO_ToModel_ClampsCompletion(t *testing.T) {
	var dto ProjectDTO
	if err := json.Unmarshal([]byte(`{"_id": "p1", "completion": 130}`), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := dto.ToModel().Completion; got != 100 {
		t.Errorf("completion: want 100, got %d", got)
	}
}

// ---------------------------------------------------------------------------
// Task
// ---------------------------------------------------------------------------

func TestTaskDTO_ToModel(t *testing.T) {
	raw := `{
		"_id": "t-9",
		"project": "p-100",
		"company": {"_id": "co-1"},
		"status": "Scheduled",
		"color": "4caf50",
		"taskIndex": 2,
		"notes": "north side first",
		"task_type": {"unique_id": "tt-3", "label": "Framing"},
		"deletedAt": 1700000000
	}`

	var dto TaskDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	task := dto.ToModel()
	if task == nil {
		t.Fatal("expected a model, got nil")
	}

	if task.Status != domain.TaskStatusBooked {
		t.Errorf("legacy Scheduled must map to Booked, got %q", task.Status)
	}
	if task.Color != "#4caf50" {
		t.Errorf("bare hex must gain a prefix, got %q", task.Color)
	}
	if task.TaskIndex != 2 {
		t.Errorf("taskIndex: want 2, got %d", task.TaskIndex)
	}
	if task.TaskTypeID != "tt-3" {
		t.Errorf("task type ref: got %q", task.TaskTypeID)
	}
	if task.TeamMemberIDs == nil {
		t.Error("team member ids must never be nil")
	}
	if task.DeletedAt == nil {
		t.Error("numeric deletedAt must parse to a timestamp")
	}
}

// ---------------------------------------------------------------------------
// Calendar event
// ---------------------------------------------------------------------------

func TestCalendarEventDTO_ToModel(t *testing.T) {
	raw := `{
		"_id": "e-1",
		"title": "Site survey",
		"color": "",
		"company": "co-1",
		"Start Date": "2024-03-01T08:00:00Z",
		"End Date": "2024-03-01T12:00:00Z",
		"team_members": ["u-1"]
	}`

	var dto CalendarEventDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	ev := dto.ToModel()
	if ev == nil {
		t.Fatal("expected a model, got nil")
	}
	if ev.Title != "Site survey" {
		t.Errorf("title: got %q", ev.Title)
	}
	if ev.Color != defaultAccentColor {
		t.Errorf("empty colour must become the accent default, got %q", ev.Color)
	}
	if !ev.StartDate.Before(ev.EndDate) {
		t.Errorf("expected start < end, got %v / %v", ev.StartDate, ev.EndDate)
	}
	if len(ev.TeamMemberIDs) != 1 {
		t.Errorf("team members: want 1, got %d", len(ev.TeamMemberIDs))
	}
}

func TestCalendarEventDTO_ToModel_SwapsInvertedRange(t *testing.T) {
	raw := `{
		"_id": "e-2",
		"Start Date": "2024-03-05T08:00:00Z",
		"End Date": "2024-03-01T08:00:00Z"
	}`

	var dto CalendarEventDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	ev := dto.ToModel()
	if ev == nil {
		t.Fatal("inverted range must swap, not drop")
	}
	if ev.EndDate.Before(ev.StartDate) {
		t.Errorf("range still inverted: %v / %v", ev.StartDate, ev.EndDate)
	}
	if ev.StartDate.Day() != 1 || ev.EndDate.Day() != 5 {
		t.Errorf("swap wrong: start %v, end %v", ev.StartDate, ev.EndDate)
	}
}

func TestCalendarEventDTO_ToModel_DropsUnplaceable(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no id", `{"Start Date": "2024-03-01", "End Date": "2024-03-02"}`},
		{"no start", `{"_id": "e-3", "End Date": "2024-03-02"}`},
		{"no end", `{"_id": "e-4", "Start Date": "2024-03-01"}`},
		{"garbage start", `{"_id": "e-5", "Start Date": "whenever", "End Date": "2024-03-02"}`},
	}
	for _, tc := range cases {
		var dto CalendarEventDTO
		if err := json.Unmarshal([]byte(tc.raw), &dto); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if dto.ToModel() != nil {
			t.Errorf("%s: must convert to nil", tc.name)
		}
	}
}

func TestCalendarEventDTO_ToModel_DefaultTitle(t *testing.T) {
	raw := `{"_id": "e-6", "Start Date": "2024-03-01", "End Date": "2024-03-02"}`
	var dto CalendarEventDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	ev := dto.ToModel()
	if ev == nil {
		t.Fatal("expected a model, got nil")
	}
	if ev.Title != domain.DefaultEventTitle {
		t.Errorf("title: want %q, got %q", domain.DefaultEventTitle, ev.Title)
	}
}

// ---------------------------------------------------------------------------
// Clients
// ---------------------------------------------------------------------------

func TestClientDTO_ToModel_PhoneForms(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"string phone", `{"_id": "c-1", "name": "Acme", "phone": "512-555-0198"}`, "512-555-0198"},
		{"numeric phone", `{"_id": "c-2", "name": "Acme", "phone": 5125550198}`, "5125550198"},
		{"zero phone", `{"_id": "c-3", "name": "Acme", "phone": 0}`, "0"},
		{"absent phone", `{"_id": "c-4", "name": "Acme"}`, ""},
	}
	for _, tc := range cases {
		var dto ClientDTO
		if err := json.Unmarshal([]byte(tc.raw), &dto); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		cl := dto.ToModel()
		if cl == nil {
			t.Fatalf("%s: expected a model", tc.name)
		}
		if cl.Phone != tc.want {
			t.Errorf("%s: phone want %q, got %q", tc.name, tc.want, cl.Phone)
		}
	}
}

func TestSubClientDTO_ToModel(t *testing.T) {
	raw := `{"_id": "sc-1", "name": "Building B", "client": {"unique_id": "c-7"}, "phone": 0}`
	var dto SubClientDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	sc := dto.ToModel()
	if sc == nil {
		t.Fatal("expected a model, got nil")
	}
	if sc.ClientID != "c-7" {
		t.Errorf("client ref: got %q", sc.ClientID)
	}
	if sc.Phone != "0" {
		t.Errorf("numeric zero phone must survive as %q, got %q", "0", sc.Phone)
	}
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestDeriveRole(t *testing.T) {
	admins := []string{"u-1", "u-2"}

	cases := []struct {
		name         string
		userID       string
		employeeType string
		want         domain.Role
	}{
		{"admin list wins over employee type", "u-1", "Field Crew", domain.RoleAdmin},
		{"admin employee type", "u-9", "Admin", domain.RoleAdmin},
		{"office crew", "u-9", "Office Crew", domain.RoleOfficeCrew},
		{"field crew", "u-9", "Field Crew", domain.RoleFieldCrew},
		{"empty employee type", "u-9", "", domain.RoleFieldCrew},
		{"unknown employee type", "u-9", "Manager", domain.RoleFieldCrew},
	}
	for _, tc := range cases {
		if got := deriveRole(tc.userID, tc.employeeType, admins); got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestUserDTO_ToModel(t *testing.T) {
	raw := `{
		"_id": "u-1",
		"first_name": "Dana",
		"last_name": "Reyes",
		"phone": 5125550198,
		"company": {"unique_id": "co-1"},
		"employee_type": "Field Crew",
		"avatar": "https://cdn.example.com/u-1.png"
	}`

	var dto UserDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// u-1 is in the admin list, so the employee type must lose.
	u := dto.ToModel([]string{"u-1"})
	if u == nil {
		t.Fatal("expected a model, got nil")
	}
	if u.Role != domain.RoleAdmin || !u.IsAdmin {
		t.Errorf("admin list membership must set admin role, got %q (is_admin=%v)", u.Role, u.IsAdmin)
	}
	if u.CompanyID != "co-1" {
		t.Errorf("company ref: got %q", u.CompanyID)
	}
	if u.Phone != "5125550198" {
		t.Errorf("phone: got %q", u.Phone)
	}
	if u.FullName() != "Dana Reyes" {
		t.Errorf("full name: got %q", u.FullName())
	}

	// Without that membership the employee type decides.
	u = dto.ToModel(nil)
	if u.Role != domain.RoleFieldCrew || u.IsAdmin {
		t.Errorf("without admin membership: got %q (is_admin=%v)", u.Role, u.IsAdmin)
	}
}

// ---------------------------------------------------------------------------
// Company
// ---------------------------------------------------------------------------

func TestCompanyDTO_ToModel(t *testing.T) {
	raw := `{
		"_id": "co-1",
		"name": "Crewbase Builders",
		"external_id": 88001,
		"default_project_color": "546e7a",
		"admins": ["u-1"],
		"subscription_status": "Active",
		"subscription_plan": "PRO"
	}`

	var dto CompanyDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	co := dto.ToModel()
	if co == nil {
		t.Fatal("expected a model, got nil")
	}
	if co.ExternalID != "88001" {
		t.Errorf("numeric external id: got %q", co.ExternalID)
	}
	if co.DefaultProjectColor != "#546e7a" {
		t.Errorf("colour: got %q", co.DefaultProjectColor)
	}
	if co.SubscriptionStatus != "active" || co.SubscriptionPlan != "pro" {
		t.Errorf("subscription fields must be lower-cased, got %q / %q", co.SubscriptionStatus, co.SubscriptionPlan)
	}
	if !co.IsAdminUser("u-1") || co.IsAdminUser("u-2") {
		t.Error("admin membership check wrong")
	}
}

func TestCompanyDTO_ToModel_StockColour(t *testing.T) {
	var dto CompanyDTO
	if err := json.Unmarshal([]byte(`{"_id": "co-2"}`), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	co := dto.ToModel()
	if co.DefaultProjectColor != domain.DefaultProjectColor {
		t.Errorf("unset colour must fall back to %q, got %q", domain.DefaultProjectColor, co.DefaultProjectColor)
	}
	if co.AdminIDs == nil {
		t.Error("admin ids must never be nil")
	}
}

// ---------------------------------------------------------------------------
// Task type
// ---------------------------------------------------------------------------

func TestTaskTypeDTO_ToModel(t *testing.T) {
	raw := `{"_id": "tt-3", "company": "co-1", "label": "Framing", "color": "ff9800", "is_default": true}`
	var dto TaskTypeDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	tt := dto.ToModel()
	if tt == nil {
		t.Fatal("expected a model, got nil")
	}
	if tt.Color != "#ff9800" {
		t.Errorf("colour: got %q", tt.Color)
	}
	if !tt.IsDefault {
		t.Error("is_default must carry over")
	}
	if tt.CompanyID != "co-1" {
		t.Errorf("company ref: got %q", tt.CompanyID)
	}
}
